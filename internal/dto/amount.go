package dto

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Amount renders a decimal as a JSON number without going through float64.
func Amount(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// AmountPtr is Amount for optional request fields.
func AmountPtr(d decimal.Decimal) *json.Number {
	n := Amount(d)
	return &n
}

// ParseAmount reads a request amount into a decimal.
func ParseAmount(n json.Number) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, n.String())
	}
	return d, nil
}

// ParseOptionalAmount returns nil for a nil field.
func ParseOptionalAmount(n *json.Number) (*decimal.Decimal, error) {
	if n == nil {
		return nil, nil
	}
	d, err := ParseAmount(*n)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
