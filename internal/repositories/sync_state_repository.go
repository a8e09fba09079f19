package repositories

import (
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSyncStateNotFound = errors.New("sync state not found")
)

type syncStateRepository struct {
	db *gorm.DB
}

// NewSyncStateRepository creates a new sync state repository
func NewSyncStateRepository(db *gorm.DB) SyncStateRepositoryInterface {
	return &syncStateRepository{
		db: db,
	}
}

func (r *syncStateRepository) Get(resource string) (*models.SyncState, error) {
	var state models.SyncState
	if err := r.db.Where("resource = ?", resource).First(&state).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSyncStateNotFound
		}
		return nil, fmt.Errorf("failed to get sync state: %w", err)
	}
	return &state, nil
}

func (r *syncStateRepository) Save(state *models.SyncState) error {
	if err := r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(state).Error; err != nil {
		return fmt.Errorf("failed to save sync state: %w", err)
	}
	return nil
}
