package config

import (
	"fmt"

	"github.com/iwvelando/mortgage-calculator/pkg/amortization"
	"github.com/iwvelando/mortgage-calculator/pkg/datetime"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"github.com/shopspring/decimal"
)

// Loan indicates a loan and its parameters.
type Loan struct {
	Name                   string
	Principal              decimal.Decimal
	DownPayment            decimal.Decimal
	InterestRate           decimal.Decimal // fraction, 0.06 for 6%
	Term                   int             // months
	StartDate              string          // optional YYYY-MM of the first payment
	ExtraPrincipalPayments []ExtraPrincipalPayment
}

// ExtraPrincipalPayment is an extra payment against the loan principal. The
// window is given either in periods or, when the loan has a start date, in
// YYYY-MM dates; dates win when both are set.
type ExtraPrincipalPayment struct {
	Name        string
	Amount      decimal.Decimal
	StartDate   string
	EndDate     string
	StartPeriod int
	EndPeriod   int
	Frequency   int // months
}

// Financed returns the amount borrowed after the down payment.
func (loan Loan) Financed() decimal.Decimal {
	return loan.Principal.Sub(loan.DownPayment)
}

// Terms converts the loan into validated amortization terms.
func (loan Loan) Terms() (amortization.LoanTerms, error) {
	if loan.DownPayment.IsNegative() {
		return amortization.LoanTerms{}, &amortization.InvalidInputError{
			Field:      "downPayment",
			Constraint: ">= 0",
			Value:      loan.DownPayment.String(),
		}
	}
	return amortization.NewLoanTerms(loan.Financed(), loan.InterestRate, loan.Term)
}

// Missing lists the required loan parameters that are still unset.
func (loan Loan) Missing() []string {
	var missing []string
	if loan.Principal.IsZero() {
		missing = append(missing, "principal")
	}
	if loan.Term == 0 {
		missing = append(missing, "term")
	}
	return missing
}

// ExtraPayments converts the configured extra payments into engine extra
// payments, resolving dates to payment periods.
func (loan Loan) ExtraPayments() ([]amortization.ExtraPayment, error) {
	if loan.StartDate != "" {
		if err := datetime.ValidateDate(loan.StartDate); err != nil {
			return nil, fmt.Errorf("loan %s start date: %w", loan.Name, err)
		}
	}

	extras := make([]amortization.ExtraPayment, 0, len(loan.ExtraPrincipalPayments))
	for _, payment := range loan.ExtraPrincipalPayments {
		startPeriod, err := loan.resolvePeriod(payment.StartDate, payment.StartPeriod)
		if err != nil {
			return nil, fmt.Errorf("extra payment %s start: %w", payment.Name, err)
		}
		endPeriod, err := loan.resolvePeriod(payment.EndDate, payment.EndPeriod)
		if err != nil {
			return nil, fmt.Errorf("extra payment %s end: %w", payment.Name, err)
		}

		extras = append(extras, amortization.ExtraPayment{
			Name:        payment.Name,
			Amount:      payment.Amount,
			StartPeriod: startPeriod,
			EndPeriod:   endPeriod,
			Frequency:   payment.Frequency,
		})
	}
	return extras, nil
}

func (loan Loan) resolvePeriod(date string, period int) (int, error) {
	if date == "" {
		return period, nil
	}
	if loan.StartDate == "" {
		return 0, fmt.Errorf("date %s given but loan %s has no startDate", date, loan.Name)
	}
	period, err := datetime.DatePeriod(loan.StartDate, date)
	if err != nil {
		return 0, err
	}
	if period < 1 {
		return 0, fmt.Errorf("date %s is before loan start %s", date, loan.StartDate)
	}
	return period, nil
}

// Warnings returns non-fatal configuration issues.
func (loan Loan) Warnings() []string {
	var warnings []string

	if warning := validation.ValidateRateUnit(loan.Name, loan.InterestRate); warning != "" {
		warnings = append(warnings, warning)
	}

	if loan.Term > 0 {
		extras, err := loan.ExtraPayments()
		if err != nil {
			warnings = append(warnings, err.Error())
			return warnings
		}
		for _, extra := range extras {
			warnings = append(warnings,
				validation.ValidateExtraPaymentWindow(loan.Name, extra.Name, extra.StartPeriod, extra.EndPeriod, loan.Term)...)
		}
	}

	return warnings
}
