package backendtest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"finance-tracker/internal/backendtest"
	"finance-tracker/internal/config"
	"finance-tracker/internal/dto"
	apperrors "finance-tracker/internal/errors"
	"finance-tracker/internal/gateway"
	"finance-tracker/internal/logging"
	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const token = "fake-session"

type ServerTestSuite struct {
	suite.Suite
	backend *backendtest.Server
	client  *gateway.Client
	ctx     context.Context
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.backend = backendtest.New(s.T(), backendtest.Seed{
		Categories: []dto.CategoryResponse{
			{ID: "c1", Name: "Salary", Type: "INCOME", IsDefault: true},
			{ID: "c2", Name: "Groceries", Type: "EXPENSE"},
		},
		Transactions: []dto.TransactionResponse{
			{ID: "t1", Type: "INCOME", Amount: decimal.NewFromInt(3000), Description: "Salary", Date: "2025-03-01", CategoryID: "c1"},
		},
		Goals: []dto.GoalResponse{
			{ID: "g1", Title: "Trip", TargetAmount: decimal.NewFromInt(500), CurrentAmount: decimal.NewFromInt(450), Status: "ACTIVE", Priority: "HIGH"},
		},
	}, backendtest.WithToken(token), backendtest.WithExport("export.xlsx", []byte("xlsx-bytes")))

	s.client = s.newClient(token)
	s.ctx = logging.WithRequestID(context.Background(), "req-42")
}

func (s *ServerTestSuite) newClient(tok string) *gateway.Client {
	cfg := &config.APIConfig{BaseURL: s.backend.URL, Timeout: 2 * time.Second}
	return gateway.NewClient(cfg, gateway.StaticTokenSource(tok), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *ServerTestSuite) TestTransactionLifecycle() {
	created, err := s.client.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		Type:        "expense",
		Amount:      "42.50",
		Description: "Market",
		Date:        "2025-03-05",
		CategoryID:  "c2",
	})
	s.Require().NoError(err)
	s.Equal(models.TransactionTypeExpense, created.Type)
	s.True(created.Amount.Equal(decimal.RequireFromString("42.5")))

	description := "Farmers market"
	updated, err := s.client.UpdateTransaction(s.ctx, created.ID, dto.UpdateTransactionRequest{Description: &description})
	s.Require().NoError(err)
	s.Equal("Farmers market", updated.Description)

	listed, err := s.client.ListTransactions(s.ctx)
	s.Require().NoError(err)
	s.Len(listed, 2)

	s.Require().NoError(s.client.DeleteTransaction(s.ctx, created.ID))
	s.Len(s.backend.Transactions(), 1)

	err = s.client.DeleteTransaction(s.ctx, created.ID)
	s.True(apperrors.HasCode(err, apperrors.TransactionNotFound), "got %v", err)
	s.True(apperrors.IsNotFound(err))
}

func (s *ServerTestSuite) TestTransactionAmounts() {
	created, err := s.client.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		Type: "EXPENSE", Amount: "0", Description: "Free sample", Date: "2025-03-05",
	})
	s.Require().NoError(err)
	s.True(created.Amount.IsZero())

	created, err = s.client.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		Type: "EXPENSE", Amount: "0.10", Description: "Candy", Date: "2025-03-05",
	})
	s.Require().NoError(err)
	s.Equal("0.1", created.Amount.String())

	for _, amount := range []json.Number{"-1", "2.345"} {
		_, err = s.client.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
			Type: "EXPENSE", Amount: amount, Description: "Bad", Date: "2025-03-05",
		})
		apiErr, ok := apperrors.AsAPIError(err)
		s.Require().True(ok, "amount %s: got %v", amount, err)
		s.Equal(apperrors.ValidationGeneral, apiErr.Code)
		s.Contains(apiErr.Details, "amount: must not be negative and have at most 2 decimal places")
	}
	s.Len(s.backend.Transactions(), 3)
}

func (s *ServerTestSuite) TestValidationEnvelope() {
	_, err := s.client.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		Type:        "TRANSFER",
		Amount:      "10",
		Description: "Move",
		Date:        "2025-03-05",
	})

	apiErr, ok := apperrors.AsAPIError(err)
	s.Require().True(ok, "got %v", err)
	s.Equal(http.StatusBadRequest, apiErr.Status)
	s.Equal(apperrors.ValidationGeneral, apiErr.Code)
	s.NotEmpty(apiErr.Details)
	s.Equal("req-42", apiErr.RequestID)
	s.Equal(1.0, s.backend.ErrorCount(string(apperrors.ValidationGeneral), "/api/transactions", http.StatusBadRequest))
}

func (s *ServerTestSuite) TestCategoryRules() {
	err := s.client.DeleteCategory(s.ctx, "c1")
	s.True(apperrors.HasCode(err, apperrors.CategoryDefaultLocked), "got %v", err)

	err = s.client.DeleteCategory(s.ctx, "c2")
	s.Require().NoError(err)

	created, err := s.client.CreateCategory(s.ctx, dto.CreateCategoryRequest{Name: " Pets ", Type: "expense"})
	s.Require().NoError(err)
	s.Equal("Pets", created.Name)
	s.Equal(models.TransactionTypeExpense, created.Type)

	_, err = s.client.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		Type: "EXPENSE", Amount: "12", Description: "Food", Date: "2025-03-06", CategoryID: created.ID,
	})
	s.Require().NoError(err)

	err = s.client.DeleteCategory(s.ctx, created.ID)
	s.True(apperrors.HasCode(err, apperrors.CategoryInUse), "got %v", err)
}

func (s *ServerTestSuite) TestGoalProgressCompletes() {
	goal, err := s.client.UpdateGoalProgress(s.ctx, "g1", dto.GoalProgressRequest{Amount: "50"})
	s.Require().NoError(err)
	s.Equal(models.GoalStatusCompleted, goal.Status)
	s.True(goal.CurrentAmount.Equal(decimal.NewFromInt(500)))

	_, err = s.client.UpdateGoalProgress(s.ctx, "missing", dto.GoalProgressRequest{Amount: "1"})
	s.True(apperrors.HasCode(err, apperrors.GoalNotFound))
}

func (s *ServerTestSuite) TestInvestmentUpdate() {
	created, err := s.client.CreateInvestment(s.ctx, dto.CreateInvestmentRequest{
		Name: "ETF", Type: "FUND", Amount: "1000", PurchaseDate: "2025-01-10",
	})
	s.Require().NoError(err)

	amount := json.Number("1200")
	updated, err := s.client.UpdateInvestment(s.ctx, created.ID, dto.UpdateInvestmentRequest{Amount: &amount})
	s.Require().NoError(err)
	s.True(updated.Amount.Equal(decimal.NewFromInt(1200)))
	s.Equal("ETF", updated.Name)
}

func (s *ServerTestSuite) TestDownloadRecordsQuery() {
	var buf bytes.Buffer
	query := dto.ReportQuery{Type: "MONTHLY", Period: "SPECIFIC_MONTH", DateFrom: "2025-03-01", DateTo: "2025-03-31"}

	result, err := s.client.DownloadReport(s.ctx, query, &buf)
	s.Require().NoError(err)
	s.Equal("export.xlsx", result.FileName)
	s.Equal("xlsx-bytes", buf.String())
	s.Equal([]dto.ReportQuery{query}, s.backend.Exports())

	_, err = s.client.DownloadReport(s.ctx, dto.ReportQuery{Type: "MONTHLY", Period: "CUSTOM", DateFrom: "2025-03-31", DateTo: "2025-03-01"}, &buf)
	s.True(apperrors.HasCode(err, apperrors.ReportInvalidPeriod), "got %v", err)
}

func (s *ServerTestSuite) TestWrongTokenIsSessionExpired() {
	_, err := s.newClient("stolen").ListCategories(s.ctx)
	s.ErrorIs(err, gateway.ErrSessionExpired)
	s.True(apperrors.HasCode(err, apperrors.SessionExpired))
}

func (s *ServerTestSuite) TestRequestIDEchoed() {
	_, err := s.client.ListCategories(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"req-42"}, s.backend.RequestIDs())
}

func TestRateLimit(t *testing.T) {
	backend := backendtest.New(t, backendtest.Seed{}, backendtest.WithRateLimit(0.001, 1))
	client := gateway.NewClient(
		&config.APIConfig{BaseURL: backend.URL, Timeout: time.Second},
		gateway.StaticTokenSource("any"),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	_, err := client.ListGoals(context.Background())
	if err != nil {
		t.Fatalf("first call: %v", err)
	}

	_, err = client.ListGoals(context.Background())
	if !apperrors.HasCode(err, apperrors.SystemRateLimitExceeded) {
		t.Fatalf("expected rate limit error, got %v", err)
	}
}
