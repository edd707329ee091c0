package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Tile struct {
	ID           uuid.UUID       `json:"id"`
	CompanyID    uuid.UUID       `json:"company_id"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	Size         string          `json:"size"`
	Category     string          `json:"category"`
	PricePerSqft decimal.Decimal `json:"price_per_sqft"`
	StockSqft    decimal.Decimal `json:"stock_sqft"`
	ImageURL     string          `json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	DefaultTileLimit = 50
	MaxTileLimit     = 100
)

// TileFilter narrows a tile listing. Search matches name, brand or size,
// case-insensitively.
type TileFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

// Normalize clamps the paging values into their allowed ranges.
func (f TileFilter) Normalize() TileFilter {
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultTileLimit
	case f.Limit > MaxTileLimit:
		f.Limit = MaxTileLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// Validate checks the fields an admin must fill in when saving a tile.
func (t Tile) Validate() error {
	switch {
	case t.Name == "":
		return NewValidationError("name", "is required")
	case t.Brand == "":
		return NewValidationError("brand", "is required")
	case t.Size == "":
		return NewValidationError("size", "is required")
	case t.Category == "":
		return NewValidationError("category", "is required")
	case t.PricePerSqft.IsNegative():
		return NewValidationError("price_per_sqft", "must not be negative")
	case t.StockSqft.IsNegative():
		return NewValidationError("stock_sqft", "must not be negative")
	}
	return nil
}
