package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Quotation is the persisted summary of a checked-out cart.
type Quotation struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	CreatedBy   uuid.UUID
	TotalSqft   decimal.Decimal
	TotalAmount Money
	Items       []QuotationItem

	CreatedAt time.Time
}

type QuotationItem struct {
	ID           uuid.UUID
	TileID       uuid.UUID
	TileName     string
	QuantitySqft decimal.Decimal
	PricePerSqft decimal.Decimal
	TotalAmount  decimal.Decimal
}

// Reference is the short form of the quotation ID printed for customers.
func (q Quotation) Reference() string {
	return q.ID.String()[:8]
}

// NewQuotation snapshots the cart lines with their current unit prices.
// The cart itself is not modified.
func NewQuotation(cart *Cart, companyID, createdBy uuid.UUID, unit currency.Unit) Quotation {
	lines := cart.Lines()
	items := make([]QuotationItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, QuotationItem{
			TileID:       l.Tile.ID,
			TileName:     l.Tile.Name,
			QuantitySqft: l.QuantitySqft,
			PricePerSqft: l.Tile.PricePerSqft,
			TotalAmount:  l.LineTotal(),
		})
	}

	return Quotation{
		CompanyID:   companyID,
		CreatedBy:   createdBy,
		TotalSqft:   cart.TotalSqft(),
		TotalAmount: NewMoney(cart.TotalAmount(), unit),
		Items:       items,
	}
}
