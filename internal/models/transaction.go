package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the direction of a money movement.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must not be negative")
	ErrMissingTransactionDate = errors.New("transaction date is required")
)

// Transaction is a single income or expense record as returned by the backend.
// Category is the snapshot of the referenced category at fetch time and is
// never the source of truth for the transaction's direction.
type Transaction struct {
	ID          string          `gorm:"type:varchar(64);primaryKey" json:"id"`
	Type        TransactionType `gorm:"type:varchar(10);not null;index" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	CategoryID  string          `gorm:"type:varchar(64);index" json:"categoryId,omitempty"`
	Tags        StringList      `gorm:"type:text" json:"tags,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeSave normalizes the date to a calendar day before it is cached.
func (t *Transaction) BeforeSave(tx *gorm.DB) error {
	t.Date = DateOf(t.Date)
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(string(t.Type)) {
		return ErrInvalidTransactionType
	}

	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}

	if t.Date.IsZero() {
		return ErrMissingTransactionDate
	}

	return nil
}

// ResolvedCategoryID prefers the category snapshot over the raw reference.
func (t *Transaction) ResolvedCategoryID() string {
	if t.Category != nil && t.Category.ID != "" {
		return t.Category.ID
	}
	return t.CategoryID
}

// IsIncome reports whether the transaction adds to the balance.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense reports whether the transaction subtracts from the balance.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// SignedAmount returns +amount for income and -amount for expense.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	}
	return false
}

// ParseTransactionType accepts either spelling used by the backend.
func ParseTransactionType(value string) (TransactionType, bool) {
	normalized := TransactionType(strings.ToUpper(strings.TrimSpace(value)))
	if !IsValidTransactionType(string(normalized)) {
		return "", false
	}
	return normalized, true
}
