package services

import (
	"context"
	"io"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// TransactionStoreInterface holds the canonical transaction snapshot
type TransactionStoreInterface interface {
	// Refresh replaces the snapshot from the backend, falling back to the local cache
	Refresh(ctx context.Context) error
	// LoadCache fills the snapshot from the local cache without calling the backend
	LoadCache() error
	// GetAll returns a copy of every transaction in the snapshot
	GetAll() []models.Transaction
	List(criteria models.FilterCriteria) []models.Transaction
	Categories() []models.Category
	Create(ctx context.Context, req dto.CreateTransactionRequest) (*models.Transaction, error)
	Update(ctx context.Context, id string, req dto.UpdateTransactionRequest) (*models.Transaction, error)
	Delete(ctx context.Context, id string) error
	LastRefreshed() time.Time
}

// CategoryServiceInterface manages categories and resolves them by name
type CategoryServiceInterface interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id string) error
	ResolveByName(ctx context.Context, name string) (*models.Category, error)
	SuggestForDescription(ctx context.Context, description string, txType models.TransactionType) (*models.Category, bool)
}

// GoalServiceInterface manages savings goals
type GoalServiceInterface interface {
	List(ctx context.Context) ([]models.Goal, error)
	Create(ctx context.Context, req dto.CreateGoalRequest) (*models.Goal, error)
	AddProgress(ctx context.Context, id string, amount decimal.Decimal) (*models.Goal, error)
	Delete(ctx context.Context, id string) error
	Overview(ctx context.Context) (*models.GoalsOverview, error)
}

// InvestmentServiceInterface manages investment positions
type InvestmentServiceInterface interface {
	List(ctx context.Context) ([]models.Investment, error)
	Create(ctx context.Context, req dto.CreateInvestmentRequest) (*models.Investment, error)
	Update(ctx context.Context, id string, req dto.UpdateInvestmentRequest) (*models.Investment, error)
	Delete(ctx context.Context, id string) error
	Portfolio(ctx context.Context) (*models.Portfolio, error)
}

// ReportServiceInterface produces reports, the dashboard and spreadsheet exports
type ReportServiceInterface interface {
	Generate(ctx context.Context, filters models.ReportFilters) (*models.Report, error)
	Dashboard(ctx context.Context) (*models.Dashboard, error)
	Download(ctx context.Context, filters models.ReportFilters, w io.Writer) (*dto.DownloadResult, error)
}

// ReportLoggerInterface emits structured report and sync events
type ReportLoggerInterface interface {
	LogReportStarted(ctx context.Context, filters models.ReportFilters)
	LogReportCompleted(ctx context.Context, reportType models.ReportType, period models.ReportPeriod, transactionCount int, durationMs int64)
	LogReportFailed(ctx context.Context, operation string, errorMsg string, durationMs int64)
	LogSnapshotRefreshed(ctx context.Context, transactionCount, categoryCount int, durationMs int64)
	LogServedFromCache(ctx context.Context, errorMsg string, transactionCount int)
	LogExportDownloaded(ctx context.Context, fileName string, bytes int64)
}

// MetricsRecorderInterface defines methods for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
