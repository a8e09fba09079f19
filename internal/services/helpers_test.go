package services

import (
	"io"
	"log/slog"
	"time"

	"finance-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func day(value string) time.Time {
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

func newTransaction(txType models.TransactionType, amount float64, date, categoryID string) models.Transaction {
	return models.Transaction{
		ID:          gofakeit.UUID(),
		Type:        txType,
		Amount:      decimal.NewFromFloat(amount),
		Description: gofakeit.Sentence(3),
		Date:        day(date),
		CategoryID:  categoryID,
	}
}

func newCategory(id, name string, txType models.TransactionType) models.Category {
	return models.Category{
		ID:    id,
		Name:  name,
		Type:  txType,
		Color: gofakeit.HexColor(),
	}
}
