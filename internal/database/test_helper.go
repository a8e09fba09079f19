package database

import (
	"fmt"
	"testing"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB returns an in-memory cache with the schema applied.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every new connection would open a fresh in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.CacheConfig{
			Enabled:      true,
			Path:         ":memory:",
			MaxOpenConns: 1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

func CreateTestCategory(t *testing.T, db *DB, id, name string, txType models.TransactionType) *models.Category {
	t.Helper()

	category := &models.Category{
		ID:   id,
		Name: name,
		Type: txType,
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CreateTestTransaction(t *testing.T, db *DB, id string, txType models.TransactionType, amount string, date time.Time, categoryID string) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		ID:          id,
		Type:        txType,
		Amount:      decimal.RequireFromString(amount),
		Description: fmt.Sprintf("test %s", id),
		Date:        date,
		CategoryID:  categoryID,
	}

	if err := db.Omit("Category").Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return transaction
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"categories",
		"sync_states",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
