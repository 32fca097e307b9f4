// Package mathutil provides common mathematical utility functions for
// currency amounts.
package mathutil

import (
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/shopspring/decimal"
)

var (
	tolerance = decimal.RequireFromString(constants.CurrencyTolerance)
	hundred   = decimal.NewFromInt(100)
)

// Round rounds a value to two decimals, i.e. to represent real currency.
func Round(val decimal.Decimal) decimal.Decimal {
	return val.Round(constants.CurrencyPlaces)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance decimal.Decimal) bool {
	return val1.Sub(val2).Abs().LessThanOrEqual(tolerance)
}

// WithinCent checks if two values differ by at most one cent.
func WithinCent(val1, val2 decimal.Decimal) bool {
	return WithinTolerance(val1, val2, tolerance)
}

// Min returns the minimum of two values
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return value.Div(total).Mul(hundred)
}

// PowInt raises base to a non-negative integer power by repeated squaring,
// rounding every intermediate product to places decimal places.
func PowInt(base decimal.Decimal, exp int, places int32) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base).Round(places)
		}
		base = base.Mul(base).Round(places)
		exp >>= 1
	}
	return result
}
