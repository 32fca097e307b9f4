// Package constants provides shared constants for the mortgage-calculator application.
package constants

// DateTimeLayout is the format expected in config files for payment dates and
// is also the output date format.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// CurrencyPlaces is the number of decimal places kept for currency amounts
	CurrencyPlaces = 2

	// RatePrecision is the number of decimal places kept for intermediate
	// rate and growth factor computations
	RatePrecision = 32

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = "0.01"

	// PercentageThreshold is the rate above which a configured interest rate
	// most likely was written as a percentage instead of a fraction
	PercentageThreshold = 1.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"

	// OutputFormatPDF is the PDF report output format
	OutputFormatPDF = "pdf"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. MORTGAGE_LOAN_PRINCIPAL
	EnvPrefix = "MORTGAGE"
)

// Logging defaults
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)
