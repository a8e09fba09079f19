package repositories

import (
	"time"

	"finance-tracker/internal/models"
)

// TransactionRepositoryInterface defines the contract for the cached transaction snapshot
type TransactionRepositoryInterface interface {
	ReplaceAll(transactions []models.Transaction) error
	GetAll() ([]models.Transaction, error)
	GetByID(id string) (*models.Transaction, error)
	GetByDateRange(startDate, endDate time.Time) ([]models.Transaction, error)
	Upsert(transaction *models.Transaction) error
	Delete(id string) error
	Count() (int64, error)
}

// CategoryRepositoryInterface defines the contract for the cached category snapshot
type CategoryRepositoryInterface interface {
	ReplaceAll(categories []models.Category) error
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Upsert(category *models.Category) error
	Delete(id string) error
}

// SyncStateRepositoryInterface tracks when each cached resource was last refreshed
type SyncStateRepositoryInterface interface {
	Get(resource string) (*models.SyncState, error)
	Save(state *models.SyncState) error
}
