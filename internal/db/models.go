package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Company struct {
	ID        uuid.UUID
	Name      string
	Currency  string
	CreatedAt time.Time
}

type User struct {
	ID        uuid.UUID
	Email     string
	CompanyID uuid.UUID
	Role      string
	CreatedAt time.Time
}

type Tile struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	Name         string
	Brand        string
	Size         string
	Category     string
	PricePerSqft decimal.Decimal
	StockSqft    decimal.Decimal
	ImageUrl     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Quotation struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	CreatedBy   uuid.UUID
	TotalSqft   decimal.Decimal
	TotalAmount decimal.Decimal
	Currency    string
	CreatedAt   time.Time
}

type QuotationItem struct {
	ID           uuid.UUID
	QuotationID  uuid.UUID
	Position     int32
	TileID       uuid.UUID
	TileName     string
	QuantitySqft decimal.Decimal
	PricePerSqft decimal.Decimal
	TotalAmount  decimal.Decimal
	CreatedAt    time.Time
}
