package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the body of POST /transactions
type CreateTransactionRequest struct {
	Type        string      `json:"type" validate:"required,transaction_type"`
	Amount      json.Number `json:"amount" validate:"required,transaction_amount"`
	Description string      `json:"description" validate:"required,max=255"`
	Date        string      `json:"date" validate:"required,calendar_date"`
	CategoryID  string      `json:"categoryId,omitempty" validate:"omitempty,max=64"`
	Tags        []string    `json:"tags,omitempty" validate:"omitempty,max=20,dive,required,max=50"`
}

// UpdateTransactionRequest is the partial body of PUT /transactions/:id.
// Nil fields are left untouched by the backend.
type UpdateTransactionRequest struct {
	Type        *string      `json:"type,omitempty" validate:"omitempty,transaction_type"`
	Amount      *json.Number `json:"amount,omitempty" validate:"omitempty,transaction_amount"`
	Description *string      `json:"description,omitempty" validate:"omitempty,max=255"`
	Date        *string      `json:"date,omitempty" validate:"omitempty,calendar_date"`
	CategoryID  *string      `json:"categoryId,omitempty" validate:"omitempty,max=64"`
	Tags        []string     `json:"tags,omitempty" validate:"omitempty,max=20,dive,required,max=50"`
}

// IsEmpty reports whether the update carries no field.
func (r UpdateTransactionRequest) IsEmpty() bool {
	return r.Type == nil && r.Amount == nil && r.Description == nil &&
		r.Date == nil && r.CategoryID == nil && r.Tags == nil
}

// Apply returns a copy of t with the update applied locally.
func (r UpdateTransactionRequest) Apply(t models.Transaction) (models.Transaction, error) {
	if r.Type != nil {
		txType, ok := models.ParseTransactionType(*r.Type)
		if !ok {
			return t, models.ErrInvalidTransactionType
		}
		t.Type = txType
	}
	if r.Amount != nil {
		amount, err := ParseAmount(*r.Amount)
		if err != nil {
			return t, err
		}
		t.Amount = amount
	}
	if r.Description != nil {
		t.Description = *r.Description
	}
	if r.Date != nil {
		date, err := models.ParseCalendarDate(*r.Date)
		if err != nil {
			return t, err
		}
		t.Date = date
	}
	if r.CategoryID != nil {
		t.CategoryID = *r.CategoryID
		if t.Category != nil && t.Category.ID != *r.CategoryID {
			t.Category = nil
		}
	}
	if r.Tags != nil {
		t.Tags = append(models.StringList(nil), r.Tags...)
	}
	return t, nil
}

// TransactionResponse is a transaction as returned by the backend
type TransactionResponse struct {
	ID          string            `json:"id"`
	Type        string            `json:"type"`
	Amount      decimal.Decimal   `json:"amount"`
	Description string            `json:"description"`
	Date        string            `json:"date"`
	CategoryID  string            `json:"categoryId,omitempty"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	CreatedAt   *time.Time        `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time        `json:"updatedAt,omitempty"`
}

// ToModel converts the wire shape, normalizing the date to a calendar day
func (r TransactionResponse) ToModel() (models.Transaction, error) {
	txType, ok := models.ParseTransactionType(r.Type)
	if !ok {
		return models.Transaction{}, fmt.Errorf("transaction %s: %w", r.ID, models.ErrInvalidTransactionType)
	}

	date, err := models.ParseCalendarDate(r.Date)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("transaction %s: %w", r.ID, err)
	}

	t := models.Transaction{
		ID:          r.ID,
		Type:        txType,
		Amount:      r.Amount,
		Description: r.Description,
		Date:        date,
		CategoryID:  r.CategoryID,
		Tags:        r.Tags,
	}

	if r.Category != nil {
		category := r.Category.ToModel()
		t.Category = &category
		if t.CategoryID == "" {
			t.CategoryID = category.ID
		}
	}

	if r.CreatedAt != nil {
		t.CreatedAt = *r.CreatedAt
	}
	if r.UpdatedAt != nil {
		t.UpdatedAt = *r.UpdatedAt
	}

	if err := t.Validate(); err != nil {
		return models.Transaction{}, fmt.Errorf("transaction %s: %w", r.ID, err)
	}

	return t, nil
}

// ToTransactions converts a list response, failing on the first malformed item
func ToTransactions(items []TransactionResponse) ([]models.Transaction, error) {
	result := make([]models.Transaction, 0, len(items))
	for _, item := range items {
		t, err := item.ToModel()
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, nil
}
