package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const tileColumns = `id, company_id, name, brand, size, category, price_per_sqft, stock_sqft, image_url, created_at, updated_at`

func scanTile(row interface{ Scan(dest ...any) error }) (Tile, error) {
	var i Tile
	err := row.Scan(
		&i.ID,
		&i.CompanyID,
		&i.Name,
		&i.Brand,
		&i.Size,
		&i.Category,
		&i.PricePerSqft,
		&i.StockSqft,
		&i.ImageUrl,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createTile = `
INSERT INTO tiles (company_id, name, brand, size, category, price_per_sqft, stock_sqft, image_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + tileColumns

type CreateTileParams struct {
	CompanyID    uuid.UUID
	Name         string
	Brand        string
	Size         string
	Category     string
	PricePerSqft decimal.Decimal
	StockSqft    decimal.Decimal
	ImageUrl     *string
}

func (q *Queries) CreateTile(ctx context.Context, arg CreateTileParams) (Tile, error) {
	row := q.db.QueryRow(ctx, createTile,
		arg.CompanyID,
		arg.Name,
		arg.Brand,
		arg.Size,
		arg.Category,
		arg.PricePerSqft,
		arg.StockSqft,
		arg.ImageUrl,
	)
	return scanTile(row)
}

const updateTile = `
UPDATE tiles
SET name           = $3,
    brand          = $4,
    size           = $5,
    category       = $6,
    price_per_sqft = $7,
    stock_sqft     = $8,
    image_url      = $9,
    updated_at     = NOW()
WHERE company_id = $1 AND id = $2
RETURNING ` + tileColumns

type UpdateTileParams struct {
	CompanyID    uuid.UUID
	ID           uuid.UUID
	Name         string
	Brand        string
	Size         string
	Category     string
	PricePerSqft decimal.Decimal
	StockSqft    decimal.Decimal
	ImageUrl     *string
}

func (q *Queries) UpdateTile(ctx context.Context, arg UpdateTileParams) (Tile, error) {
	row := q.db.QueryRow(ctx, updateTile,
		arg.CompanyID,
		arg.ID,
		arg.Name,
		arg.Brand,
		arg.Size,
		arg.Category,
		arg.PricePerSqft,
		arg.StockSqft,
		arg.ImageUrl,
	)
	return scanTile(row)
}

const getTile = `
SELECT ` + tileColumns + `
FROM tiles
WHERE company_id = $1 AND id = $2
`

type GetTileParams struct {
	CompanyID uuid.UUID
	ID        uuid.UUID
}

func (q *Queries) GetTile(ctx context.Context, arg GetTileParams) (Tile, error) {
	row := q.db.QueryRow(ctx, getTile, arg.CompanyID, arg.ID)
	return scanTile(row)
}

// tileFilterClause expects $1 company, $2 category, $3 search pattern.
// An empty category or pattern disables that condition.
const tileFilterClause = `
WHERE company_id = $1
  AND ($2::text = '' OR category = $2)
  AND ($3::text = '' OR name ILIKE $3 OR brand ILIKE $3 OR size ILIKE $3)
`

const listTiles = `
SELECT ` + tileColumns + `
FROM tiles` + tileFilterClause + `
ORDER BY created_at DESC, id
LIMIT $4 OFFSET $5
`

type ListTilesParams struct {
	CompanyID uuid.UUID
	Category  string
	Pattern   string
	Limit     int32
	Offset    int32
}

func (q *Queries) ListTiles(ctx context.Context, arg ListTilesParams) ([]Tile, error) {
	rows, err := q.db.Query(ctx, listTiles, arg.CompanyID, arg.Category, arg.Pattern, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Tile
	for rows.Next() {
		i, err := scanTile(rows)
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

const countFilteredTiles = `
SELECT COUNT(*)
FROM tiles` + tileFilterClause

type CountFilteredTilesParams struct {
	CompanyID uuid.UUID
	Category  string
	Pattern   string
}

func (q *Queries) CountFilteredTiles(ctx context.Context, arg CountFilteredTilesParams) (int64, error) {
	row := q.db.QueryRow(ctx, countFilteredTiles, arg.CompanyID, arg.Category, arg.Pattern)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listCategories = `
SELECT DISTINCT category
FROM tiles
WHERE company_id = $1
ORDER BY category
`

func (q *Queries) ListCategories(ctx context.Context, companyID uuid.UUID) ([]string, error) {
	rows, err := q.db.Query(ctx, listCategories, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		items = append(items, category)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteTile = `
DELETE FROM tiles
WHERE company_id = $1 AND id = $2
`

type DeleteTileParams struct {
	CompanyID uuid.UUID
	ID        uuid.UUID
}

func (q *Queries) DeleteTile(ctx context.Context, arg DeleteTileParams) (int64, error) {
	result, err := q.db.Exec(ctx, deleteTile, arg.CompanyID, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
