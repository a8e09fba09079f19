package repositories

import (
	"testing"
	"time"

	"finance-tracker/internal/database"
	"finance-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo TransactionRepositoryInterface
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)

	database.CreateTestCategory(s.T(), s.db, "cat-food", "Food", models.TransactionTypeExpense)
	database.CreateTestCategory(s.T(), s.db, "cat-salary", "Salary", models.TransactionTypeIncome)
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) newTransaction(id string, txType models.TransactionType, amount string, date time.Time, categoryID string) models.Transaction {
	return models.Transaction{
		ID:          id,
		Type:        txType,
		Amount:      decimal.RequireFromString(amount),
		Description: gofakeit.Sentence(3),
		Date:        date,
		CategoryID:  categoryID,
		Tags:        models.StringList{gofakeit.Word()},
	}
}

func (s *TransactionRepositorySuite) TestReplaceAll_SwapsSnapshot() {
	database.CreateTestTransaction(s.T(), s.db, "stale", models.TransactionTypeExpense, "1.00", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "")

	fresh := []models.Transaction{
		s.newTransaction("tx-1", models.TransactionTypeIncome, "3000", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), "cat-salary"),
		s.newTransaction("tx-2", models.TransactionTypeExpense, "45.90", time.Date(2025, 1, 7, 15, 30, 0, 0, time.UTC), "cat-food"),
	}
	// a stale snapshot must not be written into categories
	fresh[1].Category = &models.Category{ID: "cat-food", Name: "Renamed", Type: models.TransactionTypeExpense}

	s.Require().NoError(s.repo.ReplaceAll(fresh))

	count, err := s.repo.Count()
	s.NoError(err)
	s.Equal(int64(2), count)

	_, err = s.repo.GetByID("stale")
	s.ErrorIs(err, ErrTransactionNotFound)

	found, err := s.repo.GetByID("tx-2")
	s.Require().NoError(err)
	s.Require().NotNil(found.Category)
	s.Equal("Food", found.Category.Name)
	s.True(decimal.RequireFromString("45.90").Equal(found.Amount))
	s.Equal(time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC), found.Date.UTC())

	// the caller's slice is untouched
	s.NotNil(fresh[1].Category)
}

func (s *TransactionRepositorySuite) TestReplaceAll_Empty() {
	database.CreateTestTransaction(s.T(), s.db, "tx-1", models.TransactionTypeExpense, "10", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), "cat-food")

	s.Require().NoError(s.repo.ReplaceAll(nil))

	count, err := s.repo.Count()
	s.NoError(err)
	s.Zero(count)
}

func (s *TransactionRepositorySuite) TestReplaceAll_InvalidRowRollsBack() {
	database.CreateTestTransaction(s.T(), s.db, "kept", models.TransactionTypeExpense, "10", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), "cat-food")

	invalid := s.newTransaction("bad", "TRANSFER", "10", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), "")
	err := s.repo.ReplaceAll([]models.Transaction{invalid})
	s.Error(err)

	_, err = s.repo.GetByID("kept")
	s.NoError(err)
}

func (s *TransactionRepositorySuite) TestGetAll_OrderedByDateDesc() {
	s.Require().NoError(s.repo.ReplaceAll([]models.Transaction{
		s.newTransaction("a", models.TransactionTypeExpense, "10", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "cat-food"),
		s.newTransaction("b", models.TransactionTypeExpense, "20", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), ""),
		s.newTransaction("c", models.TransactionTypeIncome, "30", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), "cat-salary"),
	}))

	transactions, err := s.repo.GetAll()
	s.Require().NoError(err)
	s.Require().Len(transactions, 3)
	s.Equal("b", transactions[0].ID)
	s.Equal("c", transactions[1].ID)
	s.Equal("a", transactions[2].ID)
	s.Nil(transactions[0].Category)
	s.Require().NotNil(transactions[1].Category)
	s.Equal("Salary", transactions[1].Category.Name)
}

func (s *TransactionRepositorySuite) TestGetByDateRange_Inclusive() {
	s.Require().NoError(s.repo.ReplaceAll([]models.Transaction{
		s.newTransaction("before", models.TransactionTypeExpense, "10", time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), ""),
		s.newTransaction("first", models.TransactionTypeExpense, "10", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), ""),
		s.newTransaction("last", models.TransactionTypeExpense, "10", time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC), ""),
		s.newTransaction("after", models.TransactionTypeExpense, "10", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), ""),
	}))

	transactions, err := s.repo.GetByDateRange(
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
	)
	s.Require().NoError(err)

	ids := make([]string, 0, len(transactions))
	for _, tx := range transactions {
		ids = append(ids, tx.ID)
	}
	s.ElementsMatch([]string{"first", "last"}, ids)
}

func (s *TransactionRepositorySuite) TestUpsert() {
	tx := s.newTransaction("tx-1", models.TransactionTypeExpense, "10", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), "cat-food")
	s.Require().NoError(s.repo.Upsert(&tx))

	tx.Amount = decimal.RequireFromString("99.99")
	tx.Description = "updated"
	s.Require().NoError(s.repo.Upsert(&tx))

	found, err := s.repo.GetByID("tx-1")
	s.Require().NoError(err)
	s.Equal("updated", found.Description)
	s.True(decimal.RequireFromString("99.99").Equal(found.Amount))

	count, err := s.repo.Count()
	s.NoError(err)
	s.Equal(int64(1), count)
}

func (s *TransactionRepositorySuite) TestDelete() {
	database.CreateTestTransaction(s.T(), s.db, "tx-1", models.TransactionTypeExpense, "10", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), "")

	s.NoError(s.repo.Delete("tx-1"))
	s.ErrorIs(s.repo.Delete("tx-1"), ErrTransactionNotFound)
}
