// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/mortgage-calculator/pkg/amortization"
	"github.com/shopspring/decimal"
)

// FindEntry finds the entry for a payment period in a schedule.
// Returns a pointer to the entry if found, nil otherwise.
func FindEntry(schedule []amortization.Entry, period int) *amortization.Entry {
	for i := range schedule {
		if schedule[i].Period == period {
			return &schedule[i]
		}
	}
	return nil
}

// Decimal parses a decimal literal and fails the test on error.
func Decimal(t testing.TB, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("invalid decimal literal %q: %v", value, err)
	}
	return d
}
