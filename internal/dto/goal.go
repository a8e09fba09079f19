package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// CreateGoalRequest is the body of POST /goals
type CreateGoalRequest struct {
	Title         string      `json:"title" validate:"required,max=100"`
	Description   string      `json:"description,omitempty" validate:"omitempty,max=500"`
	TargetAmount  json.Number `json:"targetAmount" validate:"required,positive_amount"`
	CurrentAmount json.Number `json:"currentAmount,omitempty" validate:"omitempty,non_negative_amount"`
	TargetDate    string      `json:"targetDate,omitempty" validate:"omitempty,calendar_date"`
	Priority      string      `json:"priority,omitempty" validate:"omitempty,goal_priority"`
	CategoryID    string      `json:"categoryId,omitempty" validate:"omitempty,max=64"`
}

// GoalProgressRequest is the body of PUT /goals/:id/progress
type GoalProgressRequest struct {
	Amount json.Number `json:"amount" validate:"required,positive_amount"`
}

// GoalResponse is a goal as returned by the backend
type GoalResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    string          `json:"targetDate,omitempty"`
	Status        string          `json:"status"`
	Priority      string          `json:"priority"`
	CategoryID    string          `json:"categoryId,omitempty"`
	CreatedAt     *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
}

func (r GoalResponse) ToModel() (models.Goal, error) {
	g := models.Goal{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		TargetAmount:  r.TargetAmount,
		CurrentAmount: r.CurrentAmount,
		Status:        models.GoalStatus(r.Status),
		Priority:      models.GoalPriority(r.Priority),
		CategoryID:    r.CategoryID,
	}

	if r.TargetDate != "" {
		date, err := models.ParseCalendarDate(r.TargetDate)
		if err != nil {
			return models.Goal{}, fmt.Errorf("goal %s: %w", r.ID, err)
		}
		g.TargetDate = &date
	}
	if r.CreatedAt != nil {
		g.CreatedAt = *r.CreatedAt
	}
	if r.UpdatedAt != nil {
		g.UpdatedAt = *r.UpdatedAt
	}

	return g, nil
}

func ToGoals(items []GoalResponse) ([]models.Goal, error) {
	result := make([]models.Goal, 0, len(items))
	for _, item := range items {
		g, err := item.ToModel()
		if err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	return result, nil
}
