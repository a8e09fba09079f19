package reporting

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

func day(value string) time.Time {
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(value string) *time.Time {
	t := day(value)
	return &t
}

func income(amount float64, date string) models.Transaction {
	return models.Transaction{
		ID:          gofakeit.UUID(),
		Type:        models.TransactionTypeIncome,
		Amount:      decimal.NewFromFloat(amount),
		Description: gofakeit.Sentence(3),
		Date:        day(date),
	}
}

func expense(amount float64, date string) models.Transaction {
	return models.Transaction{
		ID:          gofakeit.UUID(),
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.NewFromFloat(amount),
		Description: gofakeit.Sentence(3),
		Date:        day(date),
	}
}

func inCategory(t models.Transaction, c *models.Category) models.Transaction {
	t.CategoryID = c.ID
	t.Category = c
	return t
}

var testCategories = []*models.Category{
	{ID: "food", Name: "Food", Type: models.TransactionTypeExpense, Color: "#f97316", Icon: "utensils"},
	{ID: "transport", Name: "Transport", Type: models.TransactionTypeExpense, Color: "#3b82f6", Icon: "car"},
	{ID: "salary", Name: "Salary", Type: models.TransactionTypeIncome, Color: "#22c55e", Icon: "wallet"},
}

// randomTransactions builds a reproducible mixed collection spread over 2024-2025.
func randomTransactions(n int) []models.Transaction {
	faker := gofakeit.New(42)
	start := day("2024-01-01")
	end := day("2025-12-31")

	result := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		t := models.Transaction{
			ID:          faker.UUID(),
			Type:        models.TransactionTypeExpense,
			Amount:      decimal.NewFromFloat(faker.Price(1, 1000)),
			Description: faker.Sentence(4),
			Date:        models.DateOf(faker.DateRange(start, end)),
		}
		if faker.Bool() {
			t.Type = models.TransactionTypeIncome
		}
		if c := faker.Number(0, len(testCategories)); c < len(testCategories) {
			t = inCategory(t, testCategories[c])
		}
		result = append(result, t)
	}
	return result
}

func decimalOf(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}
