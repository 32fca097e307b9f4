// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
)

// SupportedOutputFormats lists the accepted output formats.
var SupportedOutputFormats = []string{
	constants.OutputFormatPretty,
	constants.OutputFormatCSV,
	constants.OutputFormatYAML,
	constants.OutputFormatPDF,
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	for _, supported := range SupportedOutputFormats {
		if format == supported {
			return nil
		}
	}
	return fmt.Errorf("expected output format of %s, got %s",
		strings.Join(SupportedOutputFormats, ", "), format)
}

// ValidateOutputTarget checks that binary formats are not written to a terminal.
func ValidateOutputTarget(format, outputFile string, stdoutIsTerminal bool) error {
	if format == constants.OutputFormatPDF && outputFile == "" && stdoutIsTerminal {
		return fmt.Errorf("output format %s requires an output file or a redirected stdout", format)
	}
	return nil
}
