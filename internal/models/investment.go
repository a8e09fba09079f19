package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type InvestmentType string

const (
	InvestmentTypeStock       InvestmentType = "STOCK"
	InvestmentTypeFund        InvestmentType = "FUND"
	InvestmentTypeFixedIncome InvestmentType = "FIXED_INCOME"
	InvestmentTypeCrypto      InvestmentType = "CRYPTO"
	InvestmentTypeOther       InvestmentType = "OTHER"
)

// InvestmentAmountTolerance is the allowed gap between amount and quantity * unit price.
var InvestmentAmountTolerance = decimal.NewFromFloat(0.01)

var (
	ErrInvestmentNameRequired   = errors.New("investment name is required")
	ErrInvalidInvestmentType    = errors.New("invalid investment type")
	ErrInvalidInvestmentAmount  = errors.New("investment amount must be positive")
	ErrInvestmentAmountMismatch = errors.New("investment amount must equal quantity times unit price")
)

// Investment is a holding record.
type Investment struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Type         InvestmentType   `json:"type"`
	Amount       decimal.Decimal  `json:"amount"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice    *decimal.Decimal `json:"unitPrice,omitempty"`
	PurchaseDate time.Time        `json:"purchaseDate"`
	Broker       string           `json:"broker,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// Validate validates the investment fields
func (i *Investment) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrInvestmentNameRequired
	}
	if !IsValidInvestmentType(string(i.Type)) {
		return ErrInvalidInvestmentType
	}
	if !i.Amount.IsPositive() {
		return ErrInvalidInvestmentAmount
	}
	if !AmountMatchesPosition(i.Amount, i.Quantity, i.UnitPrice) {
		return ErrInvestmentAmountMismatch
	}
	return nil
}

// AmountMatchesPosition checks amount against quantity * unitPrice when both
// are known.
func AmountMatchesPosition(amount decimal.Decimal, quantity, unitPrice *decimal.Decimal) bool {
	if quantity == nil || unitPrice == nil {
		return true
	}
	expected := quantity.Mul(*unitPrice)
	return amount.Sub(expected).Abs().LessThanOrEqual(InvestmentAmountTolerance)
}

func IsValidInvestmentType(investmentType string) bool {
	switch InvestmentType(investmentType) {
	case InvestmentTypeStock, InvestmentTypeFund, InvestmentTypeFixedIncome, InvestmentTypeCrypto, InvestmentTypeOther:
		return true
	}
	return false
}

// Portfolio totals investments overall and per type.
type Portfolio struct {
	Total       decimal.Decimal                    `json:"total"`
	Count       int                                `json:"count"`
	ByType      map[InvestmentType]decimal.Decimal `json:"byType"`
	Allocations map[InvestmentType]decimal.Decimal `json:"allocations"`
}
