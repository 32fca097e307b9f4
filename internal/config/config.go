// Package config defines the data structures related to configuration and
// includes functions for loading the config from a YAML file, environment
// variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected in config files for dates.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all configuration for mortgage-calculator.
type Configuration struct {
	Loan    Loan
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, yaml, pdf
	File   string `yaml:"file,omitempty"`   // stdout when empty
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"name":          "loan.name",
	"principal":     "loan.principal",
	"down-payment":  "loan.downPayment",
	"rate":          "loan.interestRate",
	"term":          "loan.term",
	"start-date":    "loan.startDate",
	"output-format": "output.format",
	"output-file":   "output.file",
	"log-level":     "logging.level",
	"log-format":    "logging.format",
}

// defaults registers every scalar key so that environment variables are
// picked up by Unmarshal even when no config file mentions the key.
var defaults = map[string]interface{}{
	"loan.name":          "",
	"loan.principal":     "",
	"loan.downPayment":   "",
	"loan.interestRate":  "",
	"loan.term":          0,
	"loan.startDate":     "",
	"logging.level":      "",
	"logging.format":     "",
	"logging.outputFile": "",
	"output.format":      "",
	"output.file":        "",
}

// RegisterFlags adds the flags that override configuration values.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("name", "", "loan name used in report titles")
	flags.String("principal", "", "loan amount, before any down payment")
	flags.String("down-payment", "", "down payment subtracted from the principal")
	flags.String("rate", "", "annual interest rate as a fraction, e.g. 0.06 for 6%")
	flags.Int("term", 0, "loan term in months")
	flags.String("start-date", "", "month of the first payment (YYYY-MM)")
	flags.String("output-format", "", "type of output override: pretty, csv, yaml, pdf")
	flags.String("output-file", "", "write output to this file instead of stdout")
	flags.String("log-level", "", "log level override (debug, info, warn, error)")
	flags.String("log-format", "", "log format override (json, console)")
}

// Loader layers configuration sources: flags over environment variables
// over the config file over defaults.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader. Flags registered with RegisterFlags on the
// given set are bound to their configuration keys; flags may be nil.
func NewLoader(flags *pflag.FlagSet) (*Loader, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	return &Loader{v: v}, nil
}

// Load reads the YAML-formatted configuration at configPath and decodes the
// layered result. With optional set, a missing file is not an error.
func (l *Loader) Load(configPath string, optional bool) (*Configuration, error) {
	if configPath != "" {
		l.v.SetConfigFile(configPath)
		l.v.SetConfigType("yaml")

		_, statErr := os.Stat(configPath)
		if !optional || !errors.Is(statErr, fs.ErrNotExist) {
			if err := l.v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file, %s", err)
			}
		}
	}

	var configuration Configuration
	err := l.v.Unmarshal(&configuration, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		DecimalHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there, with environment overrides applied.
func LoadConfiguration(configPath string) (*Configuration, error) {
	loader, err := NewLoader(nil)
	if err != nil {
		return nil, err
	}
	return loader.Load(configPath, false)
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard errors surface when the loan is converted to terms.
func (c *Configuration) ValidateConfiguration() []string {
	return c.Loan.Warnings()
}
