package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterParams(t *testing.T) {
	t.Run("well formed params", func(t *testing.T) {
		c := ParseFilterParams(FilterParams{
			Search:     "  market ",
			CategoryID: "food",
			Type:       "expense",
			DateFrom:   "2025-01-01",
			DateTo:     "2025-01-31",
		})

		assert.Equal(t, "market", c.Search)
		assert.Equal(t, "food", c.CategoryID)
		assert.Equal(t, TransactionTypeExpense, c.Type)
		require.NotNil(t, c.DateFrom)
		require.NotNil(t, c.DateTo)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *c.DateFrom)
		assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), *c.DateTo)
	})

	t.Run("malformed fields are dropped", func(t *testing.T) {
		c := ParseFilterParams(FilterParams{Type: "both", DateFrom: "2025-13-01", DateTo: "2025-01"})

		assert.Empty(t, c.Type)
		assert.Nil(t, c.DateFrom)
		assert.Nil(t, c.DateTo)
		assert.True(t, c.IsEmpty())
	})
}

func TestFilterCriteria_IsEmpty(t *testing.T) {
	assert.True(t, FilterCriteria{}.IsEmpty())
	assert.True(t, FilterCriteria{Search: "   "}.IsEmpty())
	assert.False(t, FilterCriteria{CategoryID: "x"}.IsEmpty())

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, FilterCriteria{}.WithDateRange(from, from).IsEmpty())
}
