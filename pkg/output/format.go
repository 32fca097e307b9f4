package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/mortgage-calculator/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, report Report) error {
	p := message.NewPrinter(language.English)
	ew := &errWriter{w: w}

	ew.printf(p, "--- %s ---\n", report.title())
	ew.printf(p, "Principal:       %s\n", format.Currency(report.Terms.Principal))
	ew.printf(p, "Annual rate:     %s%%\n", report.Terms.AnnualInterestRate.Shift(2).StringFixed(3))
	ew.printf(p, "Term:            %d months\n", report.Terms.TermMonths)
	ew.printf(p, "Monthly payment: %s\n", format.Currency(report.Summary.MonthlyPayment))
	if report.HasDates() {
		ew.printf(p, "First payment:   %s\n", report.StartDate)
	}
	ew.printf(p, "\n")

	if report.HasDates() {
		ew.printf(p, "Period | Date    | Payment       | Interest      | Principal     | Balance\n")
		ew.printf(p, "______ | ____    | _______       | ________      | _________     | _______\n")
	} else {
		ew.printf(p, "Period | Payment       | Interest      | Principal     | Balance\n")
		ew.printf(p, "______ | _______       | ________      | _________     | _______\n")
	}
	for i, entry := range report.Schedule {
		date := ""
		if report.HasDates() {
			date = report.Date(i) + " | "
		}
		ew.write(fmt.Sprintf("%6d | %s%13s | %13s | %13s | %s\n", entry.Period, date,
			format.Currency(entry.Payment), format.Currency(entry.Interest),
			format.Currency(entry.Principal), format.Currency(entry.RemainingBalance)))
	}

	ew.printf(p, "\n")
	ew.printf(p, "Payments:        %d\n", report.Summary.Periods)
	if report.PayoffDate() != "" {
		ew.printf(p, "Payoff:          %s\n", report.PayoffDate())
	}
	ew.printf(p, "Total paid:      %s\n", format.Currency(report.Summary.TotalPaid))
	ew.printf(p, "Total interest:  %s\n", format.Currency(report.Summary.TotalInterest))
	ew.printf(p, "Interest share:  %s%%\n", report.Summary.InterestShare().StringFixed(2))
	if report.Summary.TotalExtra.IsPositive() {
		ew.printf(p, "Extra principal: %s\n", format.Currency(report.Summary.TotalExtra))
	}
	return ew.err
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(w io.Writer, report Report) error {
	ew := &errWriter{w: w}

	if report.HasDates() {
		ew.write(`"period","date","payment","interest","principal","extra","balance"` + "\n")
	} else {
		ew.write(`"period","payment","interest","principal","extra","balance"` + "\n")
	}
	for i, entry := range report.Schedule {
		ew.write(fmt.Sprintf(`"%d"`, entry.Period))
		if report.HasDates() {
			ew.write(fmt.Sprintf(`,"%s"`, report.Date(i)))
		}
		ew.write(fmt.Sprintf(`,"%s","%s","%s","%s","%s"`+"\n",
			format.Plain(entry.Payment), format.Plain(entry.Interest), format.Plain(entry.Principal),
			format.Plain(entry.Extra), format.Plain(entry.RemainingBalance)))
	}
	return ew.err
}

// errWriter keeps the first write error so renderers can check once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) write(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func (ew *errWriter) printf(p *message.Printer, key string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = p.Fprintf(ew.w, key, args...)
}
