package services

import (
	"context"
	"fmt"
	"log/slog"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/gateway"
	"finance-tracker/internal/logging"
	"finance-tracker/internal/models"
	"finance-tracker/internal/validation"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type investmentService struct {
	gateway   gateway.InvestmentGatewayInterface
	validator *validation.Validator
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
}

// NewInvestmentService creates a new investment service
func NewInvestmentService(investmentGateway gateway.InvestmentGatewayInterface, metrics MetricsRecorderInterface, logger *slog.Logger) InvestmentServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &investmentService{
		gateway:   investmentGateway,
		validator: validation.GetValidator(),
		metrics:   metricsOrNoop(metrics),
		logger:    logger.With(logging.FieldComponent, "investments"),
	}
}

func (s *investmentService) List(ctx context.Context) ([]models.Investment, error) {
	investments, err := s.gateway.ListInvestments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	return investments, nil
}

func (s *investmentService) Create(ctx context.Context, req dto.CreateInvestmentRequest) (*models.Investment, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	investment, err := s.gateway.CreateInvestment(ctx, req)
	s.recordMutation("create", err)
	if err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}
	return investment, nil
}

func (s *investmentService) Update(ctx context.Context, id string, req dto.UpdateInvestmentRequest) (*models.Investment, error) {
	if req == (dto.UpdateInvestmentRequest{}) {
		return nil, ErrEmptyUpdate
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	investment, err := s.gateway.UpdateInvestment(ctx, id, req)
	s.recordMutation("update", err)
	if err != nil {
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}

	if !models.AmountMatchesPosition(investment.Amount, investment.Quantity, investment.UnitPrice) {
		s.logger.Warn("investment amount does not match its position", "investment_id", investment.ID)
	}
	return investment, nil
}

func (s *investmentService) Delete(ctx context.Context, id string) error {
	err := s.gateway.DeleteInvestment(ctx, id)
	s.recordMutation("delete", err)
	if err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}
	return nil
}

// Portfolio totals the invested amount overall and per type. Allocations are
// percentages of the total rounded to 2 places.
func (s *investmentService) Portfolio(ctx context.Context) (*models.Portfolio, error) {
	investments, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	portfolio := &models.Portfolio{
		Total:       decimal.Zero,
		Count:       len(investments),
		ByType:      make(map[models.InvestmentType]decimal.Decimal),
		Allocations: make(map[models.InvestmentType]decimal.Decimal),
	}

	for _, investment := range investments {
		portfolio.Total = portfolio.Total.Add(investment.Amount)
		current, ok := portfolio.ByType[investment.Type]
		if !ok {
			current = decimal.Zero
		}
		portfolio.ByType[investment.Type] = current.Add(investment.Amount)
	}

	if portfolio.Total.IsPositive() {
		for investmentType, amount := range portfolio.ByType {
			portfolio.Allocations[investmentType] = amount.Div(portfolio.Total).Mul(hundred).Round(2)
		}
	}

	return portfolio, nil
}

func (s *investmentService) recordMutation(operation string, err error) {
	status := statusSuccess
	if err != nil {
		status = statusFailed
	}
	s.metrics.IncrementCounter(MetricMutation, map[string]string{
		"resource":  "investment",
		"operation": operation,
		"status":    status,
	})
}
