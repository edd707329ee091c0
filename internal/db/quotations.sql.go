package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const createQuotation = `
INSERT INTO quotations (company_id, created_by, total_sqft, total_amount, currency)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, company_id, created_by, total_sqft, total_amount, currency, created_at
`

type CreateQuotationParams struct {
	CompanyID   uuid.UUID
	CreatedBy   uuid.UUID
	TotalSqft   decimal.Decimal
	TotalAmount decimal.Decimal
	Currency    string
}

func (q *Queries) CreateQuotation(ctx context.Context, arg CreateQuotationParams) (Quotation, error) {
	row := q.db.QueryRow(ctx, createQuotation,
		arg.CompanyID,
		arg.CreatedBy,
		arg.TotalSqft,
		arg.TotalAmount,
		arg.Currency,
	)
	var i Quotation
	err := row.Scan(
		&i.ID,
		&i.CompanyID,
		&i.CreatedBy,
		&i.TotalSqft,
		&i.TotalAmount,
		&i.Currency,
		&i.CreatedAt,
	)
	return i, err
}

const createQuotationItem = `
INSERT INTO quotation_items (quotation_id, position, tile_id, tile_name, quantity_sqft, price_per_sqft, total_amount)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, quotation_id, position, tile_id, tile_name, quantity_sqft, price_per_sqft, total_amount, created_at
`

type CreateQuotationItemParams struct {
	QuotationID  uuid.UUID
	Position     int32
	TileID       uuid.UUID
	TileName     string
	QuantitySqft decimal.Decimal
	PricePerSqft decimal.Decimal
	TotalAmount  decimal.Decimal
}

func (q *Queries) CreateQuotationItem(ctx context.Context, arg CreateQuotationItemParams) (QuotationItem, error) {
	row := q.db.QueryRow(ctx, createQuotationItem,
		arg.QuotationID,
		arg.Position,
		arg.TileID,
		arg.TileName,
		arg.QuantitySqft,
		arg.PricePerSqft,
		arg.TotalAmount,
	)
	return scanQuotationItem(row)
}

func scanQuotationItem(row interface{ Scan(dest ...any) error }) (QuotationItem, error) {
	var i QuotationItem
	err := row.Scan(
		&i.ID,
		&i.QuotationID,
		&i.Position,
		&i.TileID,
		&i.TileName,
		&i.QuantitySqft,
		&i.PricePerSqft,
		&i.TotalAmount,
		&i.CreatedAt,
	)
	return i, err
}

const getQuotation = `
SELECT id, company_id, created_by, total_sqft, total_amount, currency, created_at
FROM quotations
WHERE company_id = $1 AND id = $2
`

type GetQuotationParams struct {
	CompanyID uuid.UUID
	ID        uuid.UUID
}

func (q *Queries) GetQuotation(ctx context.Context, arg GetQuotationParams) (Quotation, error) {
	row := q.db.QueryRow(ctx, getQuotation, arg.CompanyID, arg.ID)
	var i Quotation
	err := row.Scan(
		&i.ID,
		&i.CompanyID,
		&i.CreatedBy,
		&i.TotalSqft,
		&i.TotalAmount,
		&i.Currency,
		&i.CreatedAt,
	)
	return i, err
}

const listQuotationItems = `
SELECT id, quotation_id, position, tile_id, tile_name, quantity_sqft, price_per_sqft, total_amount, created_at
FROM quotation_items
WHERE quotation_id = $1
ORDER BY position
`

func (q *Queries) ListQuotationItems(ctx context.Context, quotationID uuid.UUID) ([]QuotationItem, error) {
	rows, err := q.db.Query(ctx, listQuotationItems, quotationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []QuotationItem
	for rows.Next() {
		i, err := scanQuotationItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listQuotations = `
SELECT id, company_id, created_by, total_sqft, total_amount, currency, created_at
FROM quotations
WHERE company_id = $1
ORDER BY created_at DESC, id
LIMIT $2
`

type ListQuotationsParams struct {
	CompanyID uuid.UUID
	Limit     int32
}

func (q *Queries) ListQuotations(ctx context.Context, arg ListQuotationsParams) ([]Quotation, error) {
	rows, err := q.db.Query(ctx, listQuotations, arg.CompanyID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Quotation
	for rows.Next() {
		var i Quotation
		if err := rows.Scan(
			&i.ID,
			&i.CompanyID,
			&i.CreatedBy,
			&i.TotalSqft,
			&i.TotalAmount,
			&i.Currency,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countQuotations = `
SELECT COUNT(*)
FROM quotations
WHERE company_id = $1
`

func (q *Queries) CountQuotations(ctx context.Context, companyID uuid.UUID) (int64, error) {
	row := q.db.QueryRow(ctx, countQuotations, companyID)
	var count int64
	err := row.Scan(&count)
	return count, err
}
