package types

import "github.com/shopspring/decimal"

// Number renders a decimal as a bare JSON number, e.g. 12.5 instead of "12.5".
type Number decimal.Decimal

func NumberOf(d decimal.Decimal) Number {
	return Number(d)
}

func (n Number) Decimal() decimal.Decimal {
	return decimal.Decimal(n)
}

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(n).String()), nil
}
