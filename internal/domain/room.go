package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	DefaultWastagePercent = 10
	MaxWastagePercent     = 50
)

// RoomSize is a rectangular floor in feet plus an allowance for cuts and breakage.
type RoomSize struct {
	LengthFt       float64 `json:"length_ft"`
	WidthFt        float64 `json:"width_ft"`
	WastagePercent float64 `json:"wastage_percent"`
}

type RoomEstimate struct {
	AreaSqft    decimal.Decimal `json:"area_sqft"`
	WastageSqft decimal.Decimal `json:"wastage_sqft"`
	TotalSqft   decimal.Decimal `json:"total_sqft"`
}

// Estimate returns the square footage to order for the room.
func (r RoomSize) Estimate() (RoomEstimate, error) {
	if !(r.LengthFt > 0) || math.IsInf(r.LengthFt, 0) {
		return RoomEstimate{}, NewValidationError("length_ft", "must be a positive number")
	}
	if !(r.WidthFt > 0) || math.IsInf(r.WidthFt, 0) {
		return RoomEstimate{}, NewValidationError("width_ft", "must be a positive number")
	}
	if !(r.WastagePercent >= 0 && r.WastagePercent <= MaxWastagePercent) {
		return RoomEstimate{}, NewValidationError("wastage_percent", "must be between 0 and 50")
	}

	area := decimal.NewFromFloat(r.LengthFt).Mul(decimal.NewFromFloat(r.WidthFt))
	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(r.WastagePercent).Div(decimal.NewFromInt(100)))
	total := area.Mul(factor)

	return RoomEstimate{
		AreaSqft:    area,
		WastageSqft: total.Sub(area),
		TotalSqft:   total,
	}, nil
}
