// Package output provides utilities for formatting and displaying
// amortization schedules.
package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/mortgage-calculator/pkg/amortization"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/datetime"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
)

// Report is a computed schedule together with the inputs that produced it.
type Report struct {
	Name      string
	Terms     amortization.LoanTerms
	StartDate string
	Schedule  []amortization.Entry
	Summary   amortization.Summary
	dates     []string
}

// NewReport assembles a report and labels each period with its payment
// month when startDate is set.
func NewReport(name string, terms amortization.LoanTerms, startDate string, schedule []amortization.Entry) (Report, error) {
	report := Report{
		Name:      name,
		Terms:     terms,
		StartDate: startDate,
		Schedule:  schedule,
		Summary:   amortization.Summarize(schedule),
	}
	if startDate == "" {
		return report, nil
	}

	report.dates = make([]string, len(schedule))
	for i, entry := range schedule {
		date, err := datetime.PeriodDate(startDate, entry.Period)
		if err != nil {
			return Report{}, fmt.Errorf("failed to compute payment date for period %d: %w", entry.Period, err)
		}
		report.dates[i] = date
	}
	return report, nil
}

// HasDates reports whether entries carry payment months.
func (r Report) HasDates() bool {
	return len(r.dates) == len(r.Schedule) && len(r.dates) > 0
}

// Date returns the payment month of the i-th entry, or "" without a start date.
func (r Report) Date(i int) string {
	if !r.HasDates() {
		return ""
	}
	return r.dates[i]
}

// PayoffDate returns the month of the last payment, or "" without a start date.
func (r Report) PayoffDate() string {
	if !r.HasDates() {
		return ""
	}
	return r.dates[len(r.dates)-1]
}

func (r Report) title() string {
	if r.Name == "" {
		return "Amortization schedule"
	}
	return fmt.Sprintf("Amortization schedule for %s", r.Name)
}

// Write renders the report in the given output format.
func Write(w io.Writer, format string, report Report) error {
	if err := validation.ValidateOutputFormat(format); err != nil {
		return err
	}

	switch format {
	case constants.OutputFormatCSV:
		return CsvFormat(w, report)
	case constants.OutputFormatYAML:
		return YamlFormat(w, report)
	case constants.OutputFormatPDF:
		return PdfFormat(w, report)
	default:
		return PrettyFormat(w, report)
	}
}
