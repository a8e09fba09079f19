package gateway

import (
	"context"
	"io"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
)

// TransactionGatewayInterface defines the backend transaction endpoints
type TransactionGatewayInterface interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, req dto.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// CategoryGatewayInterface defines the backend category endpoints
type CategoryGatewayInterface interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// GoalGatewayInterface defines the backend goal endpoints
type GoalGatewayInterface interface {
	ListGoals(ctx context.Context) ([]models.Goal, error)
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*models.Goal, error)
	UpdateGoalProgress(ctx context.Context, id string, req dto.GoalProgressRequest) (*models.Goal, error)
	DeleteGoal(ctx context.Context, id string) error
}

// InvestmentGatewayInterface defines the backend investment endpoints
type InvestmentGatewayInterface interface {
	ListInvestments(ctx context.Context) ([]models.Investment, error)
	CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest) (*models.Investment, error)
	UpdateInvestment(ctx context.Context, id string, req dto.UpdateInvestmentRequest) (*models.Investment, error)
	DeleteInvestment(ctx context.Context, id string) error
}

// ReportGatewayInterface defines the spreadsheet export endpoint
type ReportGatewayInterface interface {
	DownloadReport(ctx context.Context, query dto.ReportQuery, w io.Writer) (*dto.DownloadResult, error)
}

var (
	_ TransactionGatewayInterface = (*Client)(nil)
	_ CategoryGatewayInterface    = (*Client)(nil)
	_ GoalGatewayInterface        = (*Client)(nil)
	_ InvestmentGatewayInterface  = (*Client)(nil)
	_ ReportGatewayInterface      = (*Client)(nil)
)
