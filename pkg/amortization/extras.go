package amortization

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ExtraPayment is a recurring or one-off extra principal payment.
type ExtraPayment struct {
	Name        string
	Amount      decimal.Decimal
	StartPeriod int
	// EndPeriod of 0 leaves the window open until the loan is paid off.
	EndPeriod int
	// Frequency in periods. With both Frequency and EndPeriod unset the
	// payment is a one-off on StartPeriod; otherwise 0 means every period.
	Frequency int
}

// Validate checks the extra payment against the constraints of the schedule.
func (e ExtraPayment) Validate(index int) error {
	field := func(name string) string {
		return fmt.Sprintf("extraPayments[%d].%s", index, name)
	}
	if !e.Amount.IsPositive() {
		return invalid(field("amount"), "> 0", e.Amount)
	}
	if e.StartPeriod < 1 {
		return invalid(field("startPeriod"), ">= 1", e.StartPeriod)
	}
	if e.EndPeriod != 0 && e.EndPeriod < e.StartPeriod {
		return invalid(field("endPeriod"), fmt.Sprintf("0 or >= startPeriod (%d)", e.StartPeriod), e.EndPeriod)
	}
	if e.Frequency < 0 {
		return invalid(field("frequency"), ">= 0", e.Frequency)
	}
	return nil
}

// AppliesTo reports whether the payment falls on the given period.
func (e ExtraPayment) AppliesTo(period int) bool {
	if period < e.StartPeriod {
		return false
	}
	if e.EndPeriod == 0 && e.Frequency == 0 {
		return period == e.StartPeriod
	}
	if e.EndPeriod != 0 && period > e.EndPeriod {
		return false
	}
	frequency := e.Frequency
	if frequency < 1 {
		frequency = 1
	}
	return (period-e.StartPeriod)%frequency == 0
}

// CalculateExtraPrincipal returns the total extra principal due on a period.
func CalculateExtraPrincipal(extras []ExtraPayment, period int) decimal.Decimal {
	amount := decimal.Zero
	for _, extra := range extras {
		if extra.AppliesTo(period) {
			amount = amount.Add(extra.Amount)
		}
	}
	return amount
}
