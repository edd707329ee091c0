package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/nikolayk812/tilequote/internal/domain"
	"github.com/nikolayk812/tilequote/internal/port"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

type StaffService struct {
	companies port.CompanyRepository
	users     port.UserRepository
	logger    *zap.Logger
}

func NewStaffService(companies port.CompanyRepository, users port.UserRepository, logger *zap.Logger) *StaffService {
	return &StaffService{
		companies: companies,
		users:     users,
		logger:    logger,
	}
}

type SignUpInput struct {
	CompanyName string
	Email       string
	Currency    string
}

// SignUp creates a company together with its first admin.
func (s *StaffService) SignUp(ctx context.Context, in SignUpInput) (domain.Company, domain.User, error) {
	name := strings.TrimSpace(in.CompanyName)
	if name == "" {
		return domain.Company{}, domain.User{}, domain.NewValidationError("company_name", "is required")
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return domain.Company{}, domain.User{}, err
	}

	unit := currency.USD
	if code := strings.TrimSpace(in.Currency); code != "" {
		unit, err = currency.ParseISO(strings.ToUpper(code))
		if err != nil {
			return domain.Company{}, domain.User{}, domain.NewValidationError("currency", "must be an ISO 4217 code")
		}
	}

	company, admin, err := s.companies.CreateCompanyWithAdmin(ctx,
		domain.Company{Name: name, Currency: unit},
		domain.User{ID: uuid.New(), Email: email, Role: domain.RoleAdmin},
	)
	if err != nil {
		return domain.Company{}, domain.User{}, fmt.Errorf("companies.CreateCompanyWithAdmin: %w", err)
	}

	s.logger.Info("company signed up",
		zap.Stringer("company_id", company.ID),
		zap.Stringer("admin_id", admin.ID))

	return company, admin, nil
}

func (s *StaffService) ListWorkers(ctx context.Context, companyID uuid.UUID) ([]domain.User, error) {
	users, err := s.users.ListUsers(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("users.ListUsers: %w", err)
	}

	return users, nil
}

// AddWorker creates a user in the admin's company. An empty role means worker.
func (s *StaffService) AddWorker(ctx context.Context, admin domain.User, email string, role domain.Role) (domain.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return domain.User{}, err
	}

	if role == "" {
		role = domain.RoleWorker
	}
	if !role.Valid() {
		return domain.User{}, domain.NewValidationError("role", "must be admin or worker")
	}

	user, err := s.users.CreateUser(ctx, domain.User{
		ID:        uuid.New(),
		Email:     email,
		CompanyID: admin.CompanyID,
		Role:      role,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("users.CreateUser: %w", err)
	}

	s.logger.Info("worker added",
		zap.Stringer("company_id", user.CompanyID),
		zap.Stringer("user_id", user.ID),
		zap.String("role", string(user.Role)))

	return user, nil
}

func (s *StaffService) RemoveWorker(ctx context.Context, admin domain.User, userID uuid.UUID) error {
	if userID == admin.ID {
		return ErrSelfRemoval
	}

	deleted, err := s.users.DeleteUser(ctx, admin.CompanyID, userID)
	if err != nil {
		return fmt.Errorf("users.DeleteUser: %w", err)
	}
	if !deleted {
		return fmt.Errorf("user[%s]: %w", userID, domain.ErrNotFound)
	}

	s.logger.Info("worker removed", zap.Stringer("company_id", admin.CompanyID), zap.Stringer("user_id", userID))

	return nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", domain.NewValidationError("email", "is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", domain.NewValidationError("email", "is not a valid address")
	}
	return email, nil
}
