package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/mortgage-calculator/pkg/format"
	"gopkg.in/yaml.v3"
)

type yamlReport struct {
	Name     string      `yaml:"name,omitempty"`
	Terms    yamlTerms   `yaml:"terms"`
	Summary  yamlSummary `yaml:"summary"`
	Schedule []yamlEntry `yaml:"schedule"`
}

type yamlTerms struct {
	Principal    string `yaml:"principal"`
	InterestRate string `yaml:"interestRate"`
	Term         int    `yaml:"term"`
	StartDate    string `yaml:"startDate,omitempty"`
}

type yamlSummary struct {
	MonthlyPayment string `yaml:"monthlyPayment"`
	Payments       int    `yaml:"payments"`
	PayoffDate     string `yaml:"payoffDate,omitempty"`
	TotalPaid      string `yaml:"totalPaid"`
	TotalInterest  string `yaml:"totalInterest"`
	TotalPrincipal string `yaml:"totalPrincipal"`
	TotalExtra     string `yaml:"totalExtra,omitempty"`
}

type yamlEntry struct {
	Period    int    `yaml:"period"`
	Date      string `yaml:"date,omitempty"`
	Payment   string `yaml:"payment"`
	Interest  string `yaml:"interest"`
	Principal string `yaml:"principal"`
	Extra     string `yaml:"extra,omitempty"`
	Balance   string `yaml:"balance"`
}

// YamlFormat outputs the report as a YAML document. Amounts are strings with
// two decimals so no precision is lost to float parsing downstream.
func YamlFormat(w io.Writer, report Report) error {
	doc := yamlReport{
		Name: report.Name,
		Terms: yamlTerms{
			Principal:    format.Plain(report.Terms.Principal),
			InterestRate: report.Terms.AnnualInterestRate.String(),
			Term:         report.Terms.TermMonths,
			StartDate:    report.StartDate,
		},
		Summary: yamlSummary{
			MonthlyPayment: format.Plain(report.Summary.MonthlyPayment),
			Payments:       report.Summary.Periods,
			PayoffDate:     report.PayoffDate(),
			TotalPaid:      format.Plain(report.Summary.TotalPaid),
			TotalInterest:  format.Plain(report.Summary.TotalInterest),
			TotalPrincipal: format.Plain(report.Summary.TotalPrincipal),
		},
		Schedule: make([]yamlEntry, 0, len(report.Schedule)),
	}
	if report.Summary.TotalExtra.IsPositive() {
		doc.Summary.TotalExtra = format.Plain(report.Summary.TotalExtra)
	}

	for i, entry := range report.Schedule {
		row := yamlEntry{
			Period:    entry.Period,
			Date:      report.Date(i),
			Payment:   format.Plain(entry.Payment),
			Interest:  format.Plain(entry.Interest),
			Principal: format.Plain(entry.Principal),
			Balance:   format.Plain(entry.RemainingBalance),
		}
		if entry.Extra.IsPositive() {
			row.Extra = format.Plain(entry.Extra)
		}
		doc.Schedule = append(doc.Schedule, row)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode schedule as YAML: %w", err)
	}
	return encoder.Close()
}
