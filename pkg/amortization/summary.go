package amortization

import (
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// Summary holds the totals of a schedule.
type Summary struct {
	MonthlyPayment decimal.Decimal
	Periods        int
	TotalPaid      decimal.Decimal
	TotalInterest  decimal.Decimal
	TotalPrincipal decimal.Decimal
	TotalExtra     decimal.Decimal
}

// Summarize totals a schedule. MonthlyPayment is taken from the first entry
// less its extra principal.
func Summarize(schedule []Entry) Summary {
	summary := Summary{
		MonthlyPayment: decimal.Zero,
		Periods:        len(schedule),
		TotalPaid:      decimal.Zero,
		TotalInterest:  decimal.Zero,
		TotalPrincipal: decimal.Zero,
		TotalExtra:     decimal.Zero,
	}
	if len(schedule) == 0 {
		return summary
	}

	summary.MonthlyPayment = schedule[0].Payment.Sub(schedule[0].Extra)
	for _, entry := range schedule {
		summary.TotalPaid = summary.TotalPaid.Add(entry.Payment)
		summary.TotalInterest = summary.TotalInterest.Add(entry.Interest)
		summary.TotalPrincipal = summary.TotalPrincipal.Add(entry.Principal)
		summary.TotalExtra = summary.TotalExtra.Add(entry.Extra)
	}
	return summary
}

// InterestShare returns the percentage of the total paid that went to
// interest, rounded to two decimals.
func (s Summary) InterestShare() decimal.Decimal {
	return mathutil.CalculatePercentage(s.TotalInterest, s.TotalPaid).Round(constants.CurrencyPlaces)
}
