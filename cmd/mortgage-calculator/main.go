package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/internal/logging"
	"github.com/iwvelando/mortgage-calculator/internal/prompt"
	"github.com/iwvelando/mortgage-calculator/pkg/amortization"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/output"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// loggedError marks an error that was already written to the log.
type loggedError struct {
	err error
}

func (e *loggedError) Error() string { return e.err.Error() }
func (e *loggedError) Unwrap() error { return e.err }

// isTerminal reports whether the reader or writer is an interactive terminal.
func isTerminal(stream interface{}) bool {
	file, ok := stream.(*os.File)
	return ok && prompt.IsTerminal(file)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := pflag.NewFlagSet("mortgage-calculator", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	configLocation := flags.String("config", constants.DefaultConfigFile, "path to configuration file")
	interactive := flags.Bool("interactive", false, "prompt for principal, rate and term")
	config.RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}

	loader, err := config.NewLoader(flags)
	if err != nil {
		return err
	}

	// The default config file is optional; one named on the command line is not.
	conf, err := loader.Load(*configLocation, !flags.Changed("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", *configLocation, err)
	}

	logger, err := logging.NewLogger(conf.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	fail := func(msg string, err error) error {
		logger.Error(msg,
			zap.String("op", "main"),
			zap.Error(err),
		)
		return &loggedError{err: fmt.Errorf("%s: %w", msg, err)}
	}

	outputFormat := conf.Output.Format
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return fail("invalid output format", err)
	}
	if err := validation.ValidateOutputTarget(outputFormat, conf.Output.File, isTerminal(stdout)); err != nil {
		return fail("invalid output target", err)
	}

	// Validate configuration and display any warnings
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	loan := conf.Loan
	if *interactive || (len(loan.Missing()) > 0 && isTerminal(stdin)) {
		loan, err = prompt.New(stdin, stderr).Loan(loan)
		if err != nil {
			return fail("failed to read loan parameters", err)
		}
	}

	terms, err := loan.Terms()
	if err != nil {
		return fail("invalid loan terms", err)
	}
	extras, err := loan.ExtraPayments()
	if err != nil {
		return fail("invalid extra principal payments", err)
	}

	engine := amortization.NewEngine(logger)
	schedule, err := engine.BuildScheduleWithExtras(terms, extras)
	if err != nil {
		return fail("failed to compute amortization schedule", err)
	}

	report, err := output.NewReport(loan.Name, terms, loan.StartDate, schedule)
	if err != nil {
		return fail("failed to build report", err)
	}
	logger.Info("computed amortization schedule",
		zap.String("op", "main"),
		zap.String("loan", loan.Name),
		zap.Int("periods", report.Summary.Periods),
		zap.Stringer("monthlyPayment", report.Summary.MonthlyPayment),
		zap.Stringer("totalInterest", report.Summary.TotalInterest),
	)

	w := stdout
	if conf.Output.File != "" {
		file, err := os.Create(conf.Output.File)
		if err != nil {
			return fail("failed to create output file", err)
		}
		defer func() {
			_ = file.Close()
		}()
		w = file
	}

	if err := output.Write(w, outputFormat, report); err != nil {
		return fail("failed to write output", err)
	}
	return nil
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}

	var logged *loggedError
	if !errors.As(err, &logged) {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": %q}\n", err.Error())
	}
	os.Exit(1)
}
