package service

import (
	"math"

	"golang-stock-analyzer/internal/analyzer/dto"
)

// Round2 rounds x to 2 decimal places, halves to even.
func Round2(x float64) float64 {
	return math.RoundToEven(x*100) / 100
}

// CalculateChange derives the day change. The percent is taken from the unrounded
// difference so rounding error does not compound.
func CalculateChange(current, previous float64) (dto.ChangeResult, error) {
	if previous == 0 {
		return dto.ChangeResult{}, dto.ErrZeroPreviousClose
	}

	diff := current - previous
	return dto.ChangeResult{
		AbsoluteChange: Round2(diff),
		PercentChange:  Round2(diff / previous * 100),
	}, nil
}

// Converter converts USD amounts to the local currency at a fixed rate.
type Converter struct {
	Rate float64
}

// NewConverter creates a Converter for the given USD to local rate.
func NewConverter(rate float64) Converter {
	return Converter{Rate: rate}
}

// ToLocal returns usd converted at the configured rate, rounded to 2 decimals.
func (c Converter) ToLocal(usd float64) float64 {
	return Round2(usd * c.Rate)
}
