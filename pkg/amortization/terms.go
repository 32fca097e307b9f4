// Package amortization computes loan payments and amortization schedules.
package amortization

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvalidInputError reports a loan input that violates a constraint.
type InvalidInputError struct {
	Field      string
	Constraint string
	Value      string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %s: must be %s", e.Field, e.Value, e.Constraint)
}

func invalid(field, constraint string, value interface{}) *InvalidInputError {
	return &InvalidInputError{Field: field, Constraint: constraint, Value: fmt.Sprint(value)}
}

// LoanTerms holds the parameters of a fixed-rate loan.
type LoanTerms struct {
	Principal decimal.Decimal
	// AnnualInterestRate is a fraction, 0.05 for 5%.
	AnnualInterestRate decimal.Decimal
	TermMonths         int
}

// NewLoanTerms builds validated loan terms.
func NewLoanTerms(principal, annualInterestRate decimal.Decimal, termMonths int) (LoanTerms, error) {
	terms := LoanTerms{
		Principal:          principal,
		AnnualInterestRate: annualInterestRate,
		TermMonths:         termMonths,
	}
	if err := terms.Validate(); err != nil {
		return LoanTerms{}, err
	}
	return terms, nil
}

// Validate checks principal > 0, termMonths >= 1 and annualInterestRate >= 0.
func (t LoanTerms) Validate() error {
	if !t.Principal.IsPositive() {
		return invalid("principal", "> 0", t.Principal)
	}
	if t.TermMonths < 1 {
		return invalid("termMonths", ">= 1", t.TermMonths)
	}
	if t.AnnualInterestRate.IsNegative() {
		return invalid("annualInterestRate", ">= 0", t.AnnualInterestRate)
	}
	return nil
}

// Entry is one period of an amortization schedule.
type Entry struct {
	Period   int
	Payment  decimal.Decimal
	Interest decimal.Decimal
	// Principal includes Extra.
	Principal        decimal.Decimal
	Extra            decimal.Decimal
	RemainingBalance decimal.Decimal
}
