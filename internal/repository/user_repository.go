package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/tilequote/internal/db"
	"github.com/nikolayk812/tilequote/internal/domain"
	"github.com/nikolayk812/tilequote/internal/port"
)

type userRepository struct {
	q *db.Queries
}

func NewUser(pool *pgxpool.Pool) port.UserRepository {
	return &userRepository{q: db.New(pool)}
}

func (r *userRepository) GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	if userID == uuid.Nil {
		return domain.User{}, fmt.Errorf("userID is empty")
	}

	row, err := r.q.GetUser(ctx, userID)
	if err != nil {
		return domain.User{}, mapError("q.GetUser", err)
	}

	return mapUserToDomain(row), nil
}

func (r *userRepository) ListUsers(ctx context.Context, companyID uuid.UUID) ([]domain.User, error) {
	if companyID == uuid.Nil {
		return nil, fmt.Errorf("companyID is empty")
	}

	rows, err := r.q.ListUsers(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("q.ListUsers: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserToDomain(row))
	}

	return users, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	if user.ID == uuid.Nil {
		return domain.User{}, fmt.Errorf("userID is empty")
	}
	if user.CompanyID == uuid.Nil {
		return domain.User{}, fmt.Errorf("companyID is empty")
	}
	if !user.Role.Valid() {
		return domain.User{}, fmt.Errorf("role[%s] is not valid", user.Role)
	}

	row, err := r.q.CreateUser(ctx, db.CreateUserParams{
		ID:        user.ID,
		Email:     user.Email,
		CompanyID: user.CompanyID,
		Role:      string(user.Role),
	})
	if err != nil {
		return domain.User{}, mapError("q.CreateUser", err)
	}

	return mapUserToDomain(row), nil
}

func (r *userRepository) DeleteUser(ctx context.Context, companyID, userID uuid.UUID) (bool, error) {
	if companyID == uuid.Nil {
		return false, fmt.Errorf("companyID is empty")
	}

	rowsAffected, err := r.q.DeleteUser(ctx, db.DeleteUserParams{CompanyID: companyID, ID: userID})
	if err != nil {
		return false, fmt.Errorf("q.DeleteUser: %w", err)
	}

	return rowsAffected > 0, nil
}

func mapUserToDomain(row db.User) domain.User {
	return domain.User{
		ID:        row.ID,
		Email:     row.Email,
		CompanyID: row.CompanyID,
		Role:      domain.Role(row.Role),
		CreatedAt: row.CreatedAt,
	}
}
