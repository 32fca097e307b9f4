// Package prompt asks for loan parameters on an interactive terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/shopspring/decimal"
)

// ErrNoInput is returned when the input ends before a required value was given.
var ErrNoInput = errors.New("no input")

// Prompter reads answers line by line from in and writes questions to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// IsTerminal reports whether f is attached to a character device.
func IsTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// ask prints the question and returns the trimmed answer. A blank answer or
// end of input returns "" with ok set to false.
func (p *Prompter) ask(question, current string) (answer string, ok bool, err error) {
	if current != "" {
		_, err = fmt.Fprintf(p.out, "%s [%s]: ", question, current)
	} else {
		_, err = fmt.Fprintf(p.out, "%s: ", question)
	}
	if err != nil {
		return "", false, err
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	answer = strings.TrimSpace(line)
	if answer == "" && errors.Is(err, io.EOF) {
		return "", false, ErrNoInput
	}
	return answer, answer != "", nil
}

// Decimal asks for an amount. A blank answer keeps current.
func (p *Prompter) Decimal(question string, current decimal.Decimal) (decimal.Decimal, error) {
	shown := ""
	if !current.IsZero() {
		shown = current.String()
	}
	for {
		answer, ok, err := p.ask(question, shown)
		if errors.Is(err, ErrNoInput) && shown != "" {
			return current, nil
		}
		if err != nil {
			return current, err
		}
		if !ok {
			if shown != "" {
				return current, nil
			}
			continue
		}

		value, err := decimal.NewFromString(strings.NewReplacer(",", "", "$", "").Replace(answer))
		if err != nil || !value.IsPositive() {
			if _, err := fmt.Fprintf(p.out, "%q is not a positive amount\n", answer); err != nil {
				return current, err
			}
			continue
		}
		return value, nil
	}
}

// Rate asks for an annual interest rate. Answers ending in % are read as
// percentages, everything else as a fraction. A blank answer keeps current.
func (p *Prompter) Rate(question string, current decimal.Decimal) (decimal.Decimal, error) {
	for {
		answer, ok, err := p.ask(question, current.String())
		if errors.Is(err, ErrNoInput) {
			return current, nil
		}
		if err != nil {
			return current, err
		}
		if !ok {
			return current, nil
		}

		percent := strings.HasSuffix(answer, "%")
		value, err := decimal.NewFromString(strings.TrimSpace(strings.TrimSuffix(answer, "%")))
		if err != nil || value.IsNegative() {
			if _, err := fmt.Fprintf(p.out, "%q is not a valid rate\n", answer); err != nil {
				return current, err
			}
			continue
		}
		if percent {
			value = value.Shift(-2)
		}
		return value, nil
	}
}

// Int asks for a positive whole number. A blank answer keeps current.
func (p *Prompter) Int(question string, current int) (int, error) {
	shown := ""
	if current > 0 {
		shown = strconv.Itoa(current)
	}
	for {
		answer, ok, err := p.ask(question, shown)
		if errors.Is(err, ErrNoInput) && shown != "" {
			return current, nil
		}
		if err != nil {
			return current, err
		}
		if !ok {
			if shown != "" {
				return current, nil
			}
			continue
		}

		value, err := strconv.Atoi(answer)
		if err != nil || value < 1 {
			if _, err := fmt.Fprintf(p.out, "%q is not a positive whole number\n", answer); err != nil {
				return current, err
			}
			continue
		}
		return value, nil
	}
}

// Loan asks for the principal, interest rate and term of the loan, offering
// the configured values as defaults.
func (p *Prompter) Loan(loan config.Loan) (config.Loan, error) {
	var err error
	if loan.Principal, err = p.Decimal("Loan amount", loan.Principal); err != nil {
		return loan, fmt.Errorf("principal: %w", err)
	}
	if loan.InterestRate, err = p.Rate("Annual interest rate (0.06 or 6%)", loan.InterestRate); err != nil {
		return loan, fmt.Errorf("interest rate: %w", err)
	}
	if loan.Term, err = p.Int("Term in months", loan.Term); err != nil {
		return loan, fmt.Errorf("term: %w", err)
	}
	return loan, nil
}
