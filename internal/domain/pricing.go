package domain

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// SquareMillimetersPerSquareFoot converts box areas from mm² to ft².
const SquareMillimetersPerSquareFoot = 92903.04

// PackagingInput describes one box of tiles as printed on the supplier sheet.
// A zero field means the value was not provided.
type PackagingInput struct {
	HeightMM     float64
	WidthMM      float64
	PiecesPerBox float64
	PricePerBox  float64
}

func (in PackagingInput) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"height_mm", in.HeightMM},
		{"width_mm", in.WidthMM},
		{"pieces_per_box", in.PiecesPerBox},
		{"price_per_box", in.PricePerBox},
	}

	for _, f := range fields {
		// NaN fails the comparison as well
		if !(f.value > 0) || math.IsInf(f.value, 0) {
			return NewValidationError(f.name, "must be a positive number")
		}
	}
	return nil
}

// SizeLabel renders the tile size the way it is stored on the catalog record.
func (in PackagingInput) SizeLabel() string {
	return fmt.Sprintf("%sx%smm",
		strconv.FormatFloat(in.HeightMM, 'f', -1, 64),
		strconv.FormatFloat(in.WidthMM, 'f', -1, 64))
}

// DerivePricePerSqft turns the price of a box into a price per square foot,
// rounded to cents. Intermediate values keep full float64 precision and the
// rounding is applied to the exact binary value, so 1.005 becomes 1.00.
func DerivePricePerSqft(in PackagingInput) (decimal.Decimal, error) {
	if err := in.Validate(); err != nil {
		return decimal.Decimal{}, err
	}

	areaPerBoxMM2 := in.HeightMM * in.WidthMM * in.PiecesPerBox
	areaPerBoxSqft := areaPerBoxMM2 / SquareMillimetersPerSquareFoot
	pricePerSqft := in.PricePerBox / areaPerBoxSqft

	// float64 under- or overflow on extreme dimensions
	if !isFinitePositive(areaPerBoxSqft) || !isFinitePositive(pricePerSqft) {
		return decimal.Decimal{}, NewValidationError("packaging", "out of range")
	}

	price, err := decimal.NewFromString(strconv.FormatFloat(pricePerSqft, 'f', 2, 64))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("decimal.NewFromString: %w", err)
	}
	if !price.IsPositive() {
		return decimal.Decimal{}, NewValidationError("packaging", "out of range")
	}

	return price, nil
}

func isFinitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
