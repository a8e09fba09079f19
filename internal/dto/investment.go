package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// CreateInvestmentRequest is the body of POST /investments
type CreateInvestmentRequest struct {
	Name         string       `json:"name" validate:"required,max=100"`
	Type         string       `json:"type" validate:"required,investment_type"`
	Amount       json.Number  `json:"amount" validate:"required,positive_amount"`
	Quantity     *json.Number `json:"quantity,omitempty" validate:"omitempty,positive_amount"`
	UnitPrice    *json.Number `json:"unitPrice,omitempty" validate:"omitempty,positive_amount"`
	PurchaseDate string       `json:"purchaseDate" validate:"required,calendar_date"`
	Broker       string       `json:"broker,omitempty" validate:"omitempty,max=100"`
	Notes        string       `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// UpdateInvestmentRequest is the partial body of PUT /investments/:id
type UpdateInvestmentRequest struct {
	Name         *string      `json:"name,omitempty" validate:"omitempty,max=100"`
	Type         *string      `json:"type,omitempty" validate:"omitempty,investment_type"`
	Amount       *json.Number `json:"amount,omitempty" validate:"omitempty,positive_amount"`
	Quantity     *json.Number `json:"quantity,omitempty" validate:"omitempty,positive_amount"`
	UnitPrice    *json.Number `json:"unitPrice,omitempty" validate:"omitempty,positive_amount"`
	PurchaseDate *string      `json:"purchaseDate,omitempty" validate:"omitempty,calendar_date"`
	Broker       *string      `json:"broker,omitempty" validate:"omitempty,max=100"`
	Notes        *string      `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// InvestmentResponse is an investment as returned by the backend
type InvestmentResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	Amount       decimal.Decimal  `json:"amount"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice    *decimal.Decimal `json:"unitPrice,omitempty"`
	PurchaseDate string           `json:"purchaseDate"`
	Broker       string           `json:"broker,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	CreatedAt    *time.Time       `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time       `json:"updatedAt,omitempty"`
}

func (r InvestmentResponse) ToModel() (models.Investment, error) {
	i := models.Investment{
		ID:        r.ID,
		Name:      r.Name,
		Type:      models.InvestmentType(r.Type),
		Amount:    r.Amount,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
		Broker:    r.Broker,
		Notes:     r.Notes,
	}

	if r.PurchaseDate != "" {
		date, err := models.ParseCalendarDate(r.PurchaseDate)
		if err != nil {
			return models.Investment{}, fmt.Errorf("investment %s: %w", r.ID, err)
		}
		i.PurchaseDate = date
	}
	if r.CreatedAt != nil {
		i.CreatedAt = *r.CreatedAt
	}
	if r.UpdatedAt != nil {
		i.UpdatedAt = *r.UpdatedAt
	}

	return i, nil
}

func ToInvestments(items []InvestmentResponse) ([]models.Investment, error) {
	result := make([]models.Investment, 0, len(items))
	for _, item := range items {
		i, err := item.ToModel()
		if err != nil {
			return nil, err
		}
		result = append(result, i)
	}
	return result, nil
}
