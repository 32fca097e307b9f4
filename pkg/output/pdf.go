package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/mortgage-calculator/pkg/format"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfFont       = "Arial"
	pdfLineHeight = 6.0
)

// PdfFormat outputs the report as an A4 PDF document.
func PdfFormat(w io.Writer, report Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(report.title(), false)
	pdf.SetCreator("mortgage-calculator", false)

	columns := []string{"Period", "Payment", "Interest", "Principal", "Balance"}
	widths := []float64{20, 40, 40, 40, 45}
	if report.HasDates() {
		columns = []string{"Period", "Date", "Payment", "Interest", "Principal", "Balance"}
		widths = []float64{16, 22, 36, 36, 36, 40}
	}

	tableHeader := func() {
		pdf.SetFont(pdfFont, "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for i, column := range columns {
			pdf.CellFormat(widths[i], pdfLineHeight+1, column, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(pdfFont, "", 9)
	}

	pdf.AddPage()
	pdf.SetFont(pdfFont, "B", 16)
	pdf.CellFormat(0, 10, report.title(), "", 1, "L", false, 0, "")

	pdf.SetFont(pdfFont, "", 10)
	summary := [][2]string{
		{"Principal", format.Currency(report.Terms.Principal)},
		{"Annual rate", report.Terms.AnnualInterestRate.Shift(2).StringFixed(3) + "%"},
		{"Term", fmt.Sprintf("%d months", report.Terms.TermMonths)},
		{"Monthly payment", format.Currency(report.Summary.MonthlyPayment)},
		{"Payments", strconv.Itoa(report.Summary.Periods)},
		{"Total paid", format.Currency(report.Summary.TotalPaid)},
		{"Total interest", format.Currency(report.Summary.TotalInterest)},
		{"Interest share", report.Summary.InterestShare().StringFixed(2) + "%"},
	}
	if report.Summary.TotalExtra.IsPositive() {
		summary = append(summary, [2]string{"Extra principal", format.Currency(report.Summary.TotalExtra)})
	}
	if report.PayoffDate() != "" {
		summary = append(summary, [2]string{"Payoff", report.PayoffDate()})
	}
	for _, line := range summary {
		pdf.CellFormat(45, pdfLineHeight, line[0]+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, pdfLineHeight, line[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Repeat the column header on every page after the first.
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			tableHeader()
		}
	})
	tableHeader()

	for i, entry := range report.Schedule {
		cells := []string{strconv.Itoa(entry.Period)}
		if report.HasDates() {
			cells = append(cells, report.Date(i))
		}
		cells = append(cells,
			format.NumericCurrency(entry.Payment),
			format.NumericCurrency(entry.Interest),
			format.NumericCurrency(entry.Principal),
			format.NumericCurrency(entry.RemainingBalance),
		)
		for j, cell := range cells {
			align := "R"
			if j == 0 || (report.HasDates() && j == 1) {
				align = "C"
			}
			pdf.CellFormat(widths[j], pdfLineHeight, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}
