package amortization

import (
	"errors"
	"sync"
	"testing"

	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func terms(principal, rate string, termMonths int) LoanTerms {
	return LoanTerms{Principal: d(principal), AnnualInterestRate: d(rate), TermMonths: termMonths}
}

func TestComputeMonthlyPayment(t *testing.T) {
	engine := NewEngine(zap.NewNop())

	tests := []struct {
		name     string
		terms    LoanTerms
		expected string
	}{
		{"Standard 30-year mortgage", terms("200000", "0.06", 360), "1199.10"},
		{"30-year mortgage at 6.5%", terms("300000", "0.065", 360), "1896.20"},
		{"High interest loan", terms("10000", "0.18", 36), "361.52"},
		{"Zero interest loan", terms("12000", "0", 12), "1000.00"},
		{"Zero interest with remainder", terms("1000", "0", 7), "142.86"},
		{"Single period", terms("100000", "0.05", 1), "100416.67"},
		{"Payment rounding to the interest", terms("100000", "0.12", 1300), "1000.01"},
		{"Flat payment rounding to zero", terms("0.04", "0", 10), "0.01"},
		{"Rate too small to register", terms("1200", "0.0000000000000000000000000000000001", 12), "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.ComputeMonthlyPayment(tt.terms)
			if err != nil {
				t.Fatalf("ComputeMonthlyPayment() unexpected error = %v", err)
			}
			if !result.Equal(d(tt.expected)) {
				t.Errorf("ComputeMonthlyPayment() = %s, expected %s", result, tt.expected)
			}
		})
	}
}

func TestInvalidInput(t *testing.T) {
	engine := NewEngine(nil)

	tests := []struct {
		name  string
		terms LoanTerms
		field string
	}{
		{"Zero principal", terms("0", "0.05", 360), "principal"},
		{"Negative principal", terms("-100", "0.05", 360), "principal"},
		{"Zero term", terms("1000", "0.05", 0), "termMonths"},
		{"Negative term", terms("1000", "0.05", -12), "termMonths"},
		{"Negative rate", terms("1000", "-0.01", 12), "annualInterestRate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var inputErr *InvalidInputError

			_, err := engine.ComputeMonthlyPayment(tt.terms)
			if !errors.As(err, &inputErr) {
				t.Fatalf("ComputeMonthlyPayment() error = %v, expected InvalidInputError", err)
			}
			if inputErr.Field != tt.field {
				t.Errorf("ComputeMonthlyPayment() error field = %s, expected %s", inputErr.Field, tt.field)
			}

			schedule, err := engine.BuildSchedule(tt.terms)
			if !errors.As(err, &inputErr) {
				t.Fatalf("BuildSchedule() error = %v, expected InvalidInputError", err)
			}
			if schedule != nil {
				t.Errorf("BuildSchedule() returned %d entries alongside an error", len(schedule))
			}
			if inputErr.Field != tt.field {
				t.Errorf("BuildSchedule() error field = %s, expected %s", inputErr.Field, tt.field)
			}

			if _, err := NewLoanTerms(tt.terms.Principal, tt.terms.AnnualInterestRate, tt.terms.TermMonths); !errors.As(err, &inputErr) {
				t.Errorf("NewLoanTerms() error = %v, expected InvalidInputError", err)
			}
		})
	}
}

func TestInvalidInputErrorMessage(t *testing.T) {
	err := terms("0", "0.05", 360).Validate()
	expected := "invalid principal 0: must be > 0"
	if err == nil || err.Error() != expected {
		t.Errorf("Validate() error = %v, expected %q", err, expected)
	}
}

func TestBuildScheduleThirtyYearMortgage(t *testing.T) {
	engine := NewEngine(zap.NewNop())

	schedule, err := engine.BuildSchedule(terms("200000", "0.06", 360))
	if err != nil {
		t.Fatalf("BuildSchedule() unexpected error = %v", err)
	}
	if len(schedule) != 360 {
		t.Fatalf("BuildSchedule() returned %d entries, expected 360", len(schedule))
	}

	first := schedule[0]
	if first.Period != 1 {
		t.Errorf("first period = %d, expected 1", first.Period)
	}
	if !first.Payment.Equal(d("1199.10")) {
		t.Errorf("first payment = %s, expected 1199.10", first.Payment)
	}
	if !first.Interest.Equal(d("1000.00")) {
		t.Errorf("first interest = %s, expected 1000.00", first.Interest)
	}
	if !first.Principal.Equal(d("199.10")) {
		t.Errorf("first principal = %s, expected 199.10", first.Principal)
	}
	if !first.RemainingBalance.Equal(d("199800.90")) {
		t.Errorf("first balance = %s, expected 199800.90", first.RemainingBalance)
	}

	last := schedule[359]
	if last.Period != 360 {
		t.Errorf("last period = %d, expected 360", last.Period)
	}
	if !last.RemainingBalance.IsZero() {
		t.Errorf("last balance = %s, expected 0", last.RemainingBalance)
	}
	if !last.Payment.Equal(d("1200.14")) {
		t.Errorf("last payment = %s, expected 1200.14", last.Payment)
	}

	summary := Summarize(schedule)
	if !summary.TotalInterest.Equal(d("231677.04")) {
		t.Errorf("total interest = %s, expected 231677.04", summary.TotalInterest)
	}
}

func TestBuildScheduleZeroInterest(t *testing.T) {
	engine := NewEngine(zap.NewNop())

	schedule, err := engine.BuildSchedule(terms("12000", "0", 12))
	if err != nil {
		t.Fatalf("BuildSchedule() unexpected error = %v", err)
	}
	if len(schedule) != 12 {
		t.Fatalf("BuildSchedule() returned %d entries, expected 12", len(schedule))
	}
	for _, entry := range schedule {
		if !entry.Payment.Equal(d("1000")) {
			t.Errorf("period %d payment = %s, expected 1000.00", entry.Period, entry.Payment)
		}
		if !entry.Interest.IsZero() {
			t.Errorf("period %d interest = %s, expected 0", entry.Period, entry.Interest)
		}
		if !entry.Principal.Equal(entry.Payment) {
			t.Errorf("period %d principal = %s, expected the full payment", entry.Period, entry.Principal)
		}
	}
}

func TestBuildScheduleZeroInterestRemainder(t *testing.T) {
	engine := NewEngine(zap.NewNop())

	schedule, err := engine.BuildSchedule(terms("1000", "0", 7))
	if err != nil {
		t.Fatalf("BuildSchedule() unexpected error = %v", err)
	}
	for _, entry := range schedule[:6] {
		if !entry.Payment.Equal(d("142.86")) {
			t.Errorf("period %d payment = %s, expected 142.86", entry.Period, entry.Payment)
		}
	}
	last := schedule[6]
	if !last.Payment.Equal(d("142.84")) {
		t.Errorf("final payment = %s, expected 142.84", last.Payment)
	}
	if !last.RemainingBalance.IsZero() {
		t.Errorf("final balance = %s, expected 0", last.RemainingBalance)
	}
}

// TestScheduleProperties checks the schedule invariants across a spread of loans.
func TestScheduleProperties(t *testing.T) {
	engine := NewEngine(zap.NewNop())

	cases := []LoanTerms{
		terms("200000", "0.06", 360),
		terms("300000", "0.065", 360),
		terms("450000.55", "0.0725", 180),
		terms("25000", "0.04", 60),
		terms("10000", "0.18", 36),
		terms("12000", "0", 12),
		terms("1000", "0", 7),
		terms("99999.99", "0", 360),
		terms("0.05", "0", 10),
		terms("100000", "0.05", 1),
		terms("750000", "0.125", 480),
		terms("100000", "0.12", 1300),
		terms("0.04", "0", 10),
		terms("1000000", "0.24", 600),
	}

	for _, tc := range cases {
		name := tc.Principal.String() + "@" + tc.AnnualInterestRate.String()
		t.Run(name, func(t *testing.T) {
			schedule, err := engine.BuildSchedule(tc)
			if err != nil {
				t.Fatalf("BuildSchedule() unexpected error = %v", err)
			}
			if len(schedule) != tc.TermMonths {
				t.Fatalf("BuildSchedule() returned %d entries, expected %d", len(schedule), tc.TermMonths)
			}

			payment, err := engine.ComputeMonthlyPayment(tc)
			if err != nil {
				t.Fatalf("ComputeMonthlyPayment() unexpected error = %v", err)
			}
			flat := tc.Principal.Div(decimal.NewFromInt(int64(tc.TermMonths)))
			maxPayment := payment.Add(payment.Div(decimal.NewFromInt(100)))

			principalSum := decimal.Zero
			previous := tc.Principal
			for i, entry := range schedule {
				if entry.Period != i+1 {
					t.Errorf("entry %d has period %d", i, entry.Period)
				}
				if !entry.Interest.Add(entry.Principal).Equal(entry.Payment) {
					t.Errorf("period %d: interest %s + principal %s != payment %s",
						entry.Period, entry.Interest, entry.Principal, entry.Payment)
				}
				if entry.RemainingBalance.GreaterThan(previous) {
					t.Errorf("period %d: balance increased from %s to %s", entry.Period, previous, entry.RemainingBalance)
				}
				if entry.Principal.IsNegative() {
					t.Errorf("period %d: negative principal %s", entry.Period, entry.Principal)
				}
				if tc.AnnualInterestRate.IsZero() {
					if !entry.Interest.IsZero() {
						t.Errorf("period %d: interest %s on a zero-rate loan", entry.Period, entry.Interest)
					}
					if !entry.RemainingBalance.IsZero() && !mathutil.WithinCent(entry.Payment, flat) {
						t.Errorf("period %d: payment %s, expected about %s", entry.Period, entry.Payment, flat)
					}
				}
				if !entry.RemainingBalance.IsZero() && !entry.Payment.Equal(payment) {
					t.Errorf("period %d: payment %s differs from monthly payment %s", entry.Period, entry.Payment, payment)
				}
				if entry.Payment.GreaterThan(maxPayment) {
					t.Errorf("period %d: payment %s exceeds the monthly payment %s by more than 1%%",
						entry.Period, entry.Payment, payment)
				}
				previous = entry.RemainingBalance
				principalSum = principalSum.Add(entry.Principal)
			}

			if !principalSum.Equal(tc.Principal) {
				t.Errorf("principal portions sum to %s, expected %s", principalSum, tc.Principal)
			}
			if !schedule[len(schedule)-1].RemainingBalance.IsZero() {
				t.Errorf("final balance = %s, expected 0", schedule[len(schedule)-1].RemainingBalance)
			}
		})
	}
}

func TestBuildScheduleLongTermRetiresPrincipal(t *testing.T) {
	schedule, err := NewEngine(zap.NewNop()).BuildSchedule(terms("100000", "0.12", 1300))
	if err != nil {
		t.Fatalf("BuildSchedule() unexpected error = %v", err)
	}
	if len(schedule) != 1300 {
		t.Fatalf("BuildSchedule() returned %d entries, expected 1300", len(schedule))
	}

	first := schedule[0]
	if !first.Payment.Equal(d("1000.01")) || !first.Interest.Equal(d("1000.00")) || !first.Principal.Equal(d("0.01")) {
		t.Errorf("first entry = %+v, expected payment 1000.01 with 0.01 principal", first)
	}
	for _, entry := range schedule {
		if entry.Payment.GreaterThan(d("1000.01")) {
			t.Fatalf("period %d: payment %s exceeds the monthly payment", entry.Period, entry.Payment)
		}
	}
	if last := schedule[len(schedule)-1]; !last.RemainingBalance.IsZero() {
		t.Errorf("final balance = %s, expected 0", last.RemainingBalance)
	}
}

func TestBuildScheduleDeterministic(t *testing.T) {
	engine := NewEngine(zap.NewNop())
	tc := terms("325000", "0.0575", 360)

	first, err := engine.BuildSchedule(tc)
	if err != nil {
		t.Fatalf("BuildSchedule() unexpected error = %v", err)
	}
	second, err := NewEngine(nil).BuildSchedule(tc)
	if err != nil {
		t.Fatalf("BuildSchedule() unexpected error = %v", err)
	}
	for i := range first {
		a, b := first[i], second[i]
		if a.Period != b.Period || !a.Payment.Equal(b.Payment) || !a.Interest.Equal(b.Interest) ||
			!a.Principal.Equal(b.Principal) || !a.RemainingBalance.Equal(b.RemainingBalance) {
			t.Fatalf("period %d differs between runs: %+v vs %+v", a.Period, a, b)
		}
	}

	// Mutating a returned schedule must not leak into later results.
	first[0].Payment = d("1")
	third, _ := engine.BuildSchedule(tc)
	if third[0].Payment.Equal(d("1")) {
		t.Error("BuildSchedule() returned a shared schedule")
	}
}

func TestEngineConcurrentUse(t *testing.T) {
	engine := NewEngine(zap.NewNop())
	loans := []LoanTerms{
		terms("200000", "0.06", 360),
		terms("12000", "0", 12),
		terms("25000", "0.04", 60),
		terms("10000", "0.18", 36),
	}
	expected := make([]Summary, len(loans))
	for i, loan := range loans {
		schedule, err := engine.BuildSchedule(loan)
		if err != nil {
			t.Fatalf("BuildSchedule() unexpected error = %v", err)
		}
		expected[i] = Summarize(schedule)
	}

	var wg sync.WaitGroup
	results := make([]Summary, len(loans)*8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			schedule, err := engine.BuildSchedule(loans[i%len(loans)])
			if err != nil {
				t.Errorf("BuildSchedule() unexpected error = %v", err)
				return
			}
			results[i] = Summarize(schedule)
		}(i)
	}
	wg.Wait()

	for i, result := range results {
		want := expected[i%len(loans)]
		if !result.TotalInterest.Equal(want.TotalInterest) || result.Periods != want.Periods {
			t.Errorf("concurrent result %d = %+v, expected %+v", i, result, want)
		}
	}
}

func TestCalculateInterestPayment(t *testing.T) {
	tests := []struct {
		name       string
		balance    string
		annualRate string
		expected   string
	}{
		{"Standard mortgage interest", "200000", "0.06", "1000.00"},
		{"Car loan interest", "15000", "0.045", "56.25"},
		{"Zero interest", "10000", "0", "0"},
		{"High interest", "5000", "0.24", "100.00"},
		{"Rounds to cents", "100", "0.065", "0.54"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateInterestPayment(d(tt.balance), PeriodicRate(d(tt.annualRate)))
			if !result.Equal(d(tt.expected)) {
				t.Errorf("CalculateInterestPayment() = %s, expected %s", result, tt.expected)
			}
		})
	}
}
