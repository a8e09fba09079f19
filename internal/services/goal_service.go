package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/gateway"
	"finance-tracker/internal/logging"
	"finance-tracker/internal/models"
	"finance-tracker/internal/validation"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProgressAmount = errors.New("progress amount must be positive")
)

type goalService struct {
	gateway   gateway.GoalGatewayInterface
	validator *validation.Validator
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
}

// NewGoalService creates a new goal service
func NewGoalService(goalGateway gateway.GoalGatewayInterface, metrics MetricsRecorderInterface, logger *slog.Logger) GoalServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &goalService{
		gateway:   goalGateway,
		validator: validation.GetValidator(),
		metrics:   metricsOrNoop(metrics),
		logger:    logger.With(logging.FieldComponent, "goals"),
	}
}

func (s *goalService) List(ctx context.Context) ([]models.Goal, error) {
	goals, err := s.gateway.ListGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

func (s *goalService) Create(ctx context.Context, req dto.CreateGoalRequest) (*models.Goal, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	goal, err := s.gateway.CreateGoal(ctx, req)
	s.recordMutation("create", err)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	s.logger.Info("goal created", "goal_id", goal.ID, "target", goal.TargetAmount.String())
	return goal, nil
}

// AddProgress adds a positive amount to the goal's saved value
func (s *goalService) AddProgress(ctx context.Context, id string, amount decimal.Decimal) (*models.Goal, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidProgressAmount
	}
	req := dto.GoalProgressRequest{Amount: dto.Amount(amount)}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	goal, err := s.gateway.UpdateGoalProgress(ctx, id, req)
	s.recordMutation("progress", err)
	if err != nil {
		return nil, fmt.Errorf("failed to update goal progress: %w", err)
	}

	if goal.IsReached() {
		s.logger.Info("goal reached", "goal_id", goal.ID)
	}
	return goal, nil
}

func (s *goalService) Delete(ctx context.Context, id string) error {
	err := s.gateway.DeleteGoal(ctx, id)
	s.recordMutation("delete", err)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}

// Overview counts active and completed goals and totals the active ones
func (s *goalService) Overview(ctx context.Context) (*models.GoalsOverview, error) {
	goals, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	overview := &models.GoalsOverview{
		TotalTarget:    decimal.Zero,
		TotalSaved:     decimal.Zero,
		TotalRemaining: decimal.Zero,
	}

	for i := range goals {
		goal := &goals[i]
		switch goal.Status {
		case models.GoalStatusCompleted:
			overview.CompletedCount++
		case models.GoalStatusActive:
			overview.ActiveCount++
			overview.TotalTarget = overview.TotalTarget.Add(goal.TargetAmount)
			overview.TotalSaved = overview.TotalSaved.Add(goal.CurrentAmount)
			overview.TotalRemaining = overview.TotalRemaining.Add(goal.Remaining())
		}
	}

	return overview, nil
}

func (s *goalService) recordMutation(operation string, err error) {
	status := statusSuccess
	if err != nil {
		status = statusFailed
	}
	s.metrics.IncrementCounter(MetricMutation, map[string]string{
		"resource":  "goal",
		"operation": operation,
		"status":    status,
	})
}
