// Package datetime provides month arithmetic for payment dates.
package datetime

import (
	"fmt"
	"time"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
)

const (
	// DateTimeLayout is the format expected in config files and is also the output
	// date format.
	DateTimeLayout = constants.DateTimeLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ValidateDate checks that date is a YYYY-MM month.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateTimeLayout, date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM: %w", date, err)
	}
	return nil
}

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// PeriodDate returns the month in which the given 1-based payment period
// falls for a loan whose first payment is due on startDate.
func PeriodDate(startDate string, period int) (string, error) {
	return OffsetDate(startDate, DateTimeLayout, period-1)
}

// MonthsBetween returns the number of whole months from firstDate to
// secondDate; negative when secondDate is earlier.
func MonthsBetween(firstDate, secondDate string) (int, error) {
	first, err := time.Parse(DateTimeLayout, firstDate)
	if err != nil {
		return 0, err
	}
	second, err := time.Parse(DateTimeLayout, secondDate)
	if err != nil {
		return 0, err
	}
	return (second.Year()-first.Year())*constants.MonthsPerYear + int(second.Month()-first.Month()), nil
}

// DatePeriod is the inverse of PeriodDate: the 1-based payment period that
// falls on date.
func DatePeriod(startDate, date string) (int, error) {
	months, err := MonthsBetween(startDate, date)
	if err != nil {
		return 0, err
	}
	return months + 1, nil
}
