package db

import (
	"context"

	"github.com/google/uuid"
)

const createUser = `
INSERT INTO users (id, email, company_id, role)
VALUES ($1, $2, $3, $4)
RETURNING id, email, company_id, role, created_at
`

type CreateUserParams struct {
	ID        uuid.UUID
	Email     string
	CompanyID uuid.UUID
	Role      string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, createUser, arg.ID, arg.Email, arg.CompanyID, arg.Role)
	var i User
	err := row.Scan(&i.ID, &i.Email, &i.CompanyID, &i.Role, &i.CreatedAt)
	return i, err
}

const getUser = `
SELECT id, email, company_id, role, created_at
FROM users
WHERE id = $1
`

func (q *Queries) GetUser(ctx context.Context, id uuid.UUID) (User, error) {
	row := q.db.QueryRow(ctx, getUser, id)
	var i User
	err := row.Scan(&i.ID, &i.Email, &i.CompanyID, &i.Role, &i.CreatedAt)
	return i, err
}

const listUsers = `
SELECT id, email, company_id, role, created_at
FROM users
WHERE company_id = $1
ORDER BY created_at DESC, email
`

func (q *Queries) ListUsers(ctx context.Context, companyID uuid.UUID) ([]User, error) {
	rows, err := q.db.Query(ctx, listUsers, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []User
	for rows.Next() {
		var i User
		if err := rows.Scan(&i.ID, &i.Email, &i.CompanyID, &i.Role, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteUser = `
DELETE FROM users
WHERE company_id = $1 AND id = $2
`

type DeleteUserParams struct {
	CompanyID uuid.UUID
	ID        uuid.UUID
}

func (q *Queries) DeleteUser(ctx context.Context, arg DeleteUserParams) (int64, error) {
	result, err := q.db.Exec(ctx, deleteUser, arg.CompanyID, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
