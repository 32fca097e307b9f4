package validation

import (
	"fmt"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/shopspring/decimal"
)

// ValidateRateUnit warns when an annual rate looks like a percentage (6)
// rather than a fraction (0.06).
func ValidateRateUnit(loanName string, rate decimal.Decimal) string {
	if rate.GreaterThan(decimal.NewFromFloat(constants.PercentageThreshold)) {
		return fmt.Sprintf("Loan '%s' has interest rate %s; rates are fractions, did you mean %s?",
			loanName, rate, rate.Shift(-2))
	}
	return ""
}

// ValidateExtraPaymentWindow checks that an extra payment falls within the
// loan term.
func ValidateExtraPaymentWindow(loanName, paymentName string, startPeriod, endPeriod, termMonths int) []string {
	var warnings []string

	if startPeriod > termMonths {
		warnings = append(warnings, fmt.Sprintf("Extra payment '%s' on loan '%s' starts after the loan matures (period %d > %d)",
			paymentName, loanName, startPeriod, termMonths))
	}

	if endPeriod > termMonths && startPeriod <= termMonths {
		warnings = append(warnings, fmt.Sprintf("Extra payment '%s' on loan '%s' ends after the loan matures (period %d > %d)",
			paymentName, loanName, endPeriod, termMonths))
	}

	return warnings
}
