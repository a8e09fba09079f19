package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type GoalStatus string

type GoalPriority string

const (
	GoalStatusActive    GoalStatus = "ACTIVE"
	GoalStatusCompleted GoalStatus = "COMPLETED"
	GoalStatusPaused    GoalStatus = "PAUSED"
	GoalStatusCancelled GoalStatus = "CANCELLED"

	GoalPriorityLow    GoalPriority = "LOW"
	GoalPriorityMedium GoalPriority = "MEDIUM"
	GoalPriorityHigh   GoalPriority = "HIGH"
)

var (
	ErrGoalTitleRequired   = errors.New("goal title is required")
	ErrInvalidTargetAmount = errors.New("goal target amount must be positive")
	ErrInvalidGoalStatus   = errors.New("invalid goal status")
	ErrInvalidGoalPriority = errors.New("invalid goal priority")
)

var hundred = decimal.NewFromInt(100)

// Goal is a savings target tracked against contributions.
type Goal struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    *time.Time      `json:"targetDate,omitempty"`
	Status        GoalStatus      `json:"status"`
	Priority      GoalPriority    `json:"priority"`
	CategoryID    string          `json:"categoryId,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Validate validates the goal fields
func (g *Goal) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return ErrGoalTitleRequired
	}
	if !g.TargetAmount.IsPositive() {
		return ErrInvalidTargetAmount
	}
	if g.Status != "" && !IsValidGoalStatus(string(g.Status)) {
		return ErrInvalidGoalStatus
	}
	if g.Priority != "" && !IsValidGoalPriority(string(g.Priority)) {
		return ErrInvalidGoalPriority
	}
	return nil
}

// Progress is currentAmount / targetAmount, 0 when there is no target.
func (g *Goal) Progress() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount)
}

// ProgressPercent is the progress as a 0..100 display value.
func (g *Goal) ProgressPercent() decimal.Decimal {
	percent := g.Progress().Mul(hundred).Round(2)
	if percent.GreaterThan(hundred) {
		return hundred
	}
	if percent.IsNegative() {
		return decimal.Zero
	}
	return percent
}

// Remaining is how much is still missing, never below zero.
func (g *Goal) Remaining() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

func (g *Goal) IsReached() bool {
	return g.TargetAmount.IsPositive() && g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// IsOverdue reports whether an unfinished goal is past its target date.
func (g *Goal) IsOverdue(now time.Time) bool {
	if g.TargetDate == nil || g.Status != GoalStatusActive || g.IsReached() {
		return false
	}
	return DateOf(*g.TargetDate).Before(DateOf(now))
}

func IsValidGoalStatus(status string) bool {
	switch GoalStatus(status) {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusPaused, GoalStatusCancelled:
		return true
	}
	return false
}

func IsValidGoalPriority(priority string) bool {
	switch GoalPriority(priority) {
	case GoalPriorityLow, GoalPriorityMedium, GoalPriorityHigh:
		return true
	}
	return false
}

// GoalsOverview totals the active goals.
type GoalsOverview struct {
	ActiveCount    int             `json:"activeCount"`
	CompletedCount int             `json:"completedCount"`
	TotalTarget    decimal.Decimal `json:"totalTarget"`
	TotalSaved     decimal.Decimal `json:"totalSaved"`
	TotalRemaining decimal.Decimal `json:"totalRemaining"`
}
