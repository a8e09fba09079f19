package repositories

import (
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const replaceBatchSize = 200

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// ReplaceAll swaps the cached snapshot for the given transactions in one database transaction.
// Category snapshots are not written; they live in the categories table.
func (r *transactionRepository) ReplaceAll(transactions []models.Transaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("failed to clear cached transactions: %w", err)
		}

		if len(transactions) == 0 {
			return nil
		}

		rows := make([]models.Transaction, len(transactions))
		copy(rows, transactions)
		for i := range rows {
			rows[i].Category = nil
		}

		if err := tx.Omit(clause.Associations).CreateInBatches(&rows, replaceBatchSize).Error; err != nil {
			return fmt.Errorf("failed to cache transactions: %w", err)
		}
		return nil
	})
}

// GetAll retrieves every cached transaction, newest first
func (r *transactionRepository) GetAll() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Category").
		Order("date DESC").
		Order("id ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Preload("Category").Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetByDateRange retrieves transactions whose calendar day falls within [startDate, endDate]
func (r *transactionRepository) GetByDateRange(startDate, endDate time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Category").
		Where("date BETWEEN ? AND ?", models.DateOf(startDate), models.DateOf(endDate)).
		Order("date DESC").
		Order("id ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

// Upsert inserts the transaction or overwrites the cached row with the same ID
func (r *transactionRepository) Upsert(transaction *models.Transaction) error {
	if err := r.db.Omit(clause.Associations).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to upsert transaction: %w", err)
	}
	return nil
}

// Delete removes a cached transaction
func (r *transactionRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Count returns the number of cached transactions
func (r *transactionRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}
