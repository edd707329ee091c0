package domain

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one tile with the square footage requested for it.
type CartLine struct {
	Tile         Tile            `json:"tile"`
	QuantitySqft decimal.Decimal `json:"quantity_sqft"`
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.QuantitySqft.Mul(l.Tile.PricePerSqft)
}

// Cart collects the tiles requested during one session.
// It holds at most one line per tile and keeps lines in the order
// they were first added. Totals are derived from the lines on every call.
//
// A Cart is not safe for concurrent use.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem adds quantity to the line for tile, creating the line if needed.
func (c *Cart) AddItem(tile Tile, quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return NewValidationError("quantity_sqft", "must be positive")
	}

	if i := c.indexOf(tile.ID); i >= 0 {
		c.lines[i].QuantitySqft = c.lines[i].QuantitySqft.Add(quantity)
		return nil
	}

	c.lines = append(c.lines, CartLine{Tile: tile, QuantitySqft: quantity})
	return nil
}

// UpdateQuantity sets the quantity of an existing line.
// A quantity of zero or less removes the line. Unknown tiles are ignored.
func (c *Cart) UpdateQuantity(tileID uuid.UUID, quantity decimal.Decimal) {
	if !quantity.IsPositive() {
		c.RemoveItem(tileID)
		return
	}

	if i := c.indexOf(tileID); i >= 0 {
		c.lines[i].QuantitySqft = quantity
	}
}

func (c *Cart) RemoveItem(tileID uuid.UUID) {
	i := c.indexOf(tileID)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Line(tileID uuid.UUID) (CartLine, bool) {
	if i := c.indexOf(tileID); i >= 0 {
		return c.lines[i], true
	}
	return CartLine{}, false
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) TotalSqft() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.QuantitySqft)
	}
	return total
}

func (c *Cart) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

func (c *Cart) indexOf(tileID uuid.UUID) int {
	for i, l := range c.lines {
		if l.Tile.ID == tileID {
			return i
		}
	}
	return -1
}

type cartJSON struct {
	Lines []CartLine `json:"lines"`
}

func (c *Cart) MarshalJSON() ([]byte, error) {
	lines := c.lines
	if lines == nil {
		lines = []CartLine{}
	}
	return json.Marshal(cartJSON{Lines: lines})
}

// UnmarshalJSON rebuilds the cart line by line so a decoded cart
// keeps the one-line-per-tile rule even if the stored form did not.
func (c *Cart) UnmarshalJSON(data []byte) error {
	var raw cartJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.lines = nil
	for _, l := range raw.Lines {
		if !l.QuantitySqft.IsPositive() {
			continue
		}
		// quantity is positive here, so AddItem cannot fail
		_ = c.AddItem(l.Tile, l.QuantitySqft)
	}
	return nil
}
