package utils

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// NotBlank fails on strings made only of whitespace. Nil pointers pass.
func NotBlank(message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		var s string
		switch v := value.(type) {
		case string:
			s = v
		case *string:
			if v == nil {
				return nil
			}
			s = *v
		default:
			return errors.New("must be a string")
		}
		if strings.TrimSpace(s) == "" {
			return errors.New(message)
		}
		return nil
	})
}

// NonNegative fails on decimals below zero. Nil pointers pass.
// decimal.Decimal is a driver.Valuer, so validation.Indirect cannot be used here.
func NonNegative(message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		var d decimal.Decimal
		switch v := value.(type) {
		case decimal.Decimal:
			d = v
		case *decimal.Decimal:
			if v == nil {
				return nil
			}
			d = *v
		default:
			return errors.New("must be a decimal")
		}
		if d.IsNegative() {
			return errors.New(message)
		}
		return nil
	})
}
