package amortization

import (
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	one           = decimal.NewFromInt(1)
	cent          = decimal.New(1, -constants.CurrencyPlaces)
	monthsPerYear = decimal.NewFromInt(constants.MonthsPerYear)
)

// Engine computes payments and schedules. It keeps no state between calls
// and may be shared between goroutines.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a new engine instance.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// PeriodicRate converts an annual rate fraction into the monthly rate.
func PeriodicRate(annualInterestRate decimal.Decimal) decimal.Decimal {
	return annualInterestRate.DivRound(monthsPerYear, constants.RatePrecision)
}

// CalculateInterestPayment calculates the interest portion of a payment,
// rounded to cents.
func CalculateInterestPayment(remainingBalance, periodicRate decimal.Decimal) decimal.Decimal {
	return mathutil.Round(remainingBalance.Mul(periodicRate))
}

// ComputeMonthlyPayment calculates the monthly payment for a loan using the
// standard amortization formula, rounded to cents.
func (e *Engine) ComputeMonthlyPayment(terms LoanTerms) (decimal.Decimal, error) {
	if err := terms.Validate(); err != nil {
		return decimal.Zero, err
	}
	payment := monthlyPayment(terms)
	e.logger.Debug("computed monthly payment",
		zap.String("op", "amortization.ComputeMonthlyPayment"),
		zap.Stringer("principal", terms.Principal),
		zap.Stringer("rate", terms.AnnualInterestRate),
		zap.Int("termMonths", terms.TermMonths),
		zap.Stringer("payment", payment),
	)
	return payment, nil
}

// monthlyPayment rounds the annuity payment to cents. The payment never
// falls below the first period's interest plus one cent, so every regular
// payment retires some principal.
func monthlyPayment(terms LoanTerms) decimal.Decimal {
	rate := PeriodicRate(terms.AnnualInterestRate)

	var payment decimal.Decimal
	if rate.IsZero() {
		payment = mathutil.Round(terms.Principal.DivRound(decimal.NewFromInt(int64(terms.TermMonths)), constants.RatePrecision))
	} else {
		growth := mathutil.PowInt(one.Add(rate), terms.TermMonths, constants.RatePrecision)
		numerator := terms.Principal.Mul(rate).Mul(growth)
		payment = mathutil.Round(numerator.DivRound(growth.Sub(one), constants.RatePrecision))
	}

	if floor := CalculateInterestPayment(terms.Principal, rate).Add(cent); payment.LessThan(floor) {
		return floor
	}
	return payment
}

// BuildSchedule creates the complete amortization schedule for a loan. The
// schedule has exactly TermMonths entries and the last one leaves a zero
// balance.
func (e *Engine) BuildSchedule(terms LoanTerms) ([]Entry, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	return e.build(terms, nil), nil
}

// BuildScheduleWithExtras creates the amortization schedule with extra
// principal payments applied. The schedule ends on the period the balance
// reaches zero, which may be before TermMonths.
func (e *Engine) BuildScheduleWithExtras(terms LoanTerms, extras []ExtraPayment) ([]Entry, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	for i, extra := range extras {
		if err := extra.Validate(i); err != nil {
			return nil, err
		}
	}
	return e.build(terms, extras), nil
}

func (e *Engine) build(terms LoanTerms, extras []ExtraPayment) []Entry {
	rate := PeriodicRate(terms.AnnualInterestRate)
	payment := monthlyPayment(terms)
	balance := terms.Principal

	schedule := make([]Entry, 0, terms.TermMonths)
	for period := 1; period <= terms.TermMonths; period++ {
		interest := CalculateInterestPayment(balance, rate)
		principal := mathutil.Min(payment.Sub(interest), balance)

		extra := decimal.Zero
		if len(extras) > 0 {
			extra = e.extraPrincipal(extras, period, balance.Sub(principal))
			principal = principal.Add(extra)
		}

		if period == terms.TermMonths {
			// Absorb the rounding remainder so the loan closes at exactly zero.
			principal = balance
		}
		balance = balance.Sub(principal)

		schedule = append(schedule, Entry{
			Period:           period,
			Payment:          interest.Add(principal),
			Interest:         interest,
			Principal:        principal,
			Extra:            extra,
			RemainingBalance: balance,
		})

		if len(extras) > 0 && balance.IsZero() {
			if period < terms.TermMonths {
				e.logger.Debug("loan paid off early",
					zap.String("op", "amortization.BuildScheduleWithExtras"),
					zap.Int("period", period),
					zap.Int("termMonths", terms.TermMonths),
				)
			}
			break
		}
	}

	e.logger.Debug("built amortization schedule",
		zap.String("op", "amortization.BuildSchedule"),
		zap.Int("periods", len(schedule)),
		zap.Stringer("payment", payment),
	)
	return schedule
}

// extraPrincipal sums the extras due on period, capped to the balance left
// after the regular principal portion.
func (e *Engine) extraPrincipal(extras []ExtraPayment, period int, remaining decimal.Decimal) decimal.Decimal {
	requested := CalculateExtraPrincipal(extras, period)
	if requested.GreaterThan(remaining) {
		e.logger.Debug("capping extra principal payment to prevent overpayment",
			zap.String("op", "amortization.BuildScheduleWithExtras"),
			zap.Int("period", period),
			zap.Stringer("requested", requested),
			zap.Stringer("capped_to_balance", remaining),
		)
		return remaining
	}
	return requested
}
