package dto

import (
	"encoding/json"
	"testing"
	"time"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionResponse_ToModel(t *testing.T) {
	payload := `{
		"id": "tx-1",
		"type": "expense",
		"amount": 42.5,
		"description": "Pharmacy",
		"date": "2025-03-09T22:15:00.000Z",
		"category": {"id": "health", "name": "Health", "type": "EXPENSE", "color": "#ef4444", "icon": "pill", "isDefault": true},
		"tags": ["family"]
	}`

	var resp TransactionResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))

	tx, err := resp.ToModel()
	require.NoError(t, err)

	assert.Equal(t, models.TransactionTypeExpense, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("42.5")))
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), tx.Date)
	assert.Equal(t, "health", tx.CategoryID, "reference is filled from the snapshot")
	require.NotNil(t, tx.Category)
	assert.True(t, tx.Category.IsDefault)
	assert.Equal(t, models.StringList{"family"}, tx.Tags)
}

func TestTransactionResponse_ToModelErrors(t *testing.T) {
	_, err := TransactionResponse{ID: "x", Type: "TRANSFER", Date: "2025-01-01"}.ToModel()
	assert.ErrorIs(t, err, models.ErrInvalidTransactionType)

	_, err = TransactionResponse{ID: "x", Type: "INCOME", Date: "yesterday"}.ToModel()
	assert.Error(t, err)

	_, err = ToTransactions([]TransactionResponse{{ID: "ok", Type: "INCOME", Date: "2025-01-01"}, {ID: "bad", Type: "?", Date: "2025-01-01"}})
	assert.Error(t, err)
}

func TestTransactionResponse_ToModelRejectsNegativeAmount(t *testing.T) {
	var resp TransactionResponse
	require.NoError(t, json.Unmarshal([]byte(`{"id":"tx-7","type":"EXPENSE","amount":-12.30,"date":"2025-03-01"}`), &resp))

	_, err := resp.ToModel()
	assert.ErrorIs(t, err, models.ErrInvalidAmount)
	assert.Contains(t, err.Error(), "tx-7")

	zero, err := TransactionResponse{ID: "tx-8", Type: "EXPENSE", Amount: decimal.Zero, Date: "2025-03-01"}.ToModel()
	require.NoError(t, err)
	assert.True(t, zero.Amount.IsZero())

	_, err = ToTransactions([]TransactionResponse{
		{ID: "ok", Type: "INCOME", Amount: decimal.NewFromInt(10), Date: "2025-01-01"},
		{ID: "neg", Type: "INCOME", Amount: decimal.NewFromInt(-1), Date: "2025-01-01"},
	})
	assert.ErrorIs(t, err, models.ErrInvalidAmount)
}

func TestUpdateTransactionRequest_Apply(t *testing.T) {
	original := models.Transaction{
		ID:         "tx-1",
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.NewFromInt(10),
		Date:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CategoryID: "food",
		Category:   &models.Category{ID: "food", Name: "Food"},
	}

	amount := json.Number("25")
	category := "transport"
	date := "2025-01-15"
	update := UpdateTransactionRequest{Amount: &amount, CategoryID: &category, Date: &date}
	assert.False(t, update.IsEmpty())

	updated, err := update.Apply(original)
	require.NoError(t, err)

	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, "transport", updated.CategoryID)
	assert.Nil(t, updated.Category, "stale snapshot is dropped")
	assert.Equal(t, 15, updated.Date.Day())
	assert.True(t, original.Amount.Equal(decimal.NewFromInt(10)), "original untouched")

	garbled := json.Number("25,00")
	_, err = UpdateTransactionRequest{Amount: &garbled}.Apply(original)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	bad := "LOAN"
	_, err = UpdateTransactionRequest{Type: &bad}.Apply(original)
	assert.ErrorIs(t, err, models.ErrInvalidTransactionType)

	assert.True(t, UpdateTransactionRequest{}.IsEmpty())
}

func TestAmounts(t *testing.T) {
	amount, err := ParseAmount("0.10")
	require.NoError(t, err)
	assert.Equal(t, "0.1", amount.String())

	// 0.1 + 0.2 stays exact
	sum := amount.Add(decimal.RequireFromString("0.2"))
	assert.Equal(t, json.Number("0.3"), Amount(sum))

	_, err = ParseAmount("")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	none, err := ParseOptionalAmount(nil)
	require.NoError(t, err)
	assert.Nil(t, none)

	some, err := ParseOptionalAmount(AmountPtr(decimal.RequireFromString("19.99")))
	require.NoError(t, err)
	require.NotNil(t, some)
	assert.Equal(t, "19.99", some.String())

	body, err := json.Marshal(CreateTransactionRequest{Type: "EXPENSE", Amount: "19.99", Description: "Book", Date: "2025-03-01"})
	require.NoError(t, err)
	assert.Contains(t, string(body), `"amount":19.99`)

	var decoded CreateTransactionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"1234.56"}`), &decoded))
	assert.Equal(t, json.Number("1234.56"), decoded.Amount)
}

func TestCategoryResponse_ToModel(t *testing.T) {
	c := CategoryResponse{ID: "1", Name: "Salary", Type: "income"}.ToModel()
	assert.Equal(t, models.TransactionTypeIncome, c.Type)
}

func TestGoalAndInvestmentResponses(t *testing.T) {
	g, err := GoalResponse{ID: "g", Title: "Car", TargetAmount: decimal.NewFromInt(100), TargetDate: "2026-01-31", Status: "ACTIVE"}.ToModel()
	require.NoError(t, err)
	require.NotNil(t, g.TargetDate)
	assert.Equal(t, time.January, g.TargetDate.Month())

	_, err = GoalResponse{ID: "g", TargetDate: "soon"}.ToModel()
	assert.Error(t, err)

	qty := decimal.NewFromInt(2)
	inv, err := InvestmentResponse{ID: "i", Name: "ETF", Type: "FUND", Amount: decimal.NewFromInt(20), Quantity: &qty, PurchaseDate: "2025-02-02"}.ToModel()
	require.NoError(t, err)
	assert.Equal(t, models.InvestmentTypeFund, inv.Type)
	assert.Equal(t, 2, inv.PurchaseDate.Day())
}

func TestReportQuery(t *testing.T) {
	period := models.ReportPeriod{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}

	q := NewReportQuery(models.ReportFilters{Period: models.PeriodThisYear}, period)
	values := q.Values()

	assert.Equal(t, "CUSTOM", values.Get("type"))
	assert.Equal(t, "THIS_YEAR", values.Get("period"))
	assert.Equal(t, "2025-01-01", values.Get("dateFrom"))
	assert.Equal(t, "2025-06-15", values.Get("dateTo"))

	assert.Empty(t, ReportQuery{}.Values().Encode())
	assert.Equal(t, "relatorio-financeiro-2025-06-15.xlsx", ReportFileName(period.To))
}
