package db

import (
	"context"

	"github.com/google/uuid"
)

const createCompany = `
INSERT INTO companies (name, currency)
VALUES ($1, $2)
RETURNING id, name, currency, created_at
`

type CreateCompanyParams struct {
	Name     string
	Currency string
}

func (q *Queries) CreateCompany(ctx context.Context, arg CreateCompanyParams) (Company, error) {
	row := q.db.QueryRow(ctx, createCompany, arg.Name, arg.Currency)
	var i Company
	err := row.Scan(&i.ID, &i.Name, &i.Currency, &i.CreatedAt)
	return i, err
}

const getCompany = `
SELECT id, name, currency, created_at
FROM companies
WHERE id = $1
`

func (q *Queries) GetCompany(ctx context.Context, id uuid.UUID) (Company, error) {
	row := q.db.QueryRow(ctx, getCompany, id)
	var i Company
	err := row.Scan(&i.ID, &i.Name, &i.Currency, &i.CreatedAt)
	return i, err
}
