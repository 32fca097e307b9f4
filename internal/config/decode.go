package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// DecimalHookFunc decodes YAML numbers, environment strings and flag values
// into decimal.Decimal. An empty string decodes to zero.
func DecimalHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != decimalType {
			return data, nil
		}

		switch value := data.(type) {
		case string:
			trimmed := strings.TrimSpace(value)
			if trimmed == "" {
				return decimal.Zero, nil
			}
			parsed, err := decimal.NewFromString(trimmed)
			if err != nil {
				return nil, fmt.Errorf("invalid decimal %q: %w", value, err)
			}
			return parsed, nil
		case float64:
			return decimal.NewFromFloat(value), nil
		case float32:
			return decimal.NewFromFloat32(value), nil
		case int:
			return decimal.NewFromInt(int64(value)), nil
		case int32:
			return decimal.NewFromInt32(value), nil
		case int64:
			return decimal.NewFromInt(value), nil
		case uint64:
			return decimal.NewFromString(fmt.Sprint(value))
		case nil:
			return decimal.Zero, nil
		}
		return data, nil
	}
}
