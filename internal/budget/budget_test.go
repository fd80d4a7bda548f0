package budget

import (
	"path/filepath"
	"testing"
	"time"

	"gmartin/finboard/internal/logging"
	"gmartin/finboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimits(t *testing.T) *Limits {
	t.Helper()
	l := NewLimits(filepath.Join(t.TempDir(), "budgets.yaml"), &logging.MockLogger{})
	require.NoError(t, l.Load())
	return l
}

func TestLoadMissingFile(t *testing.T) {
	l := newTestLimits(t)
	assert.True(t, l.Get("Groceries").IsZero())
}

func TestSetPersistsAcrossReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "budgets.yaml")

	l := NewLimits(path, &logging.MockLogger{})
	require.NoError(t, l.Load())
	require.NoError(t, l.Set("Groceries", decimal.RequireFromString("350.50")))

	reloaded := NewLimits(path, &logging.MockLogger{})
	require.NoError(t, reloaded.Load())
	assert.True(t, reloaded.Get("Groceries").Equal(decimal.RequireFromString("350.50")))
}

func TestTrackAgainst(t *testing.T) {
	l := newTestLimits(t)
	require.NoError(t, l.Set("Groceries", decimal.RequireFromString("200")))

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	table := models.NewTransactionTable([]models.Transaction{
		{Date: date, Details: "TESCO", Amount: decimal.RequireFromString("-50"), Direction: models.DirectionDebit, Category: "Groceries"},
		{Date: date, Details: "UBER", Amount: decimal.RequireFromString("-10"), Direction: models.DirectionDebit, Category: "Transport"},
	})

	progress := l.TrackAgainst(table)
	require.Len(t, progress, 2)

	groceries := progress[0]
	assert.Equal(t, "Groceries", groceries.Category)
	assert.True(t, groceries.Spent.Equal(decimal.RequireFromString("50")))
	assert.True(t, groceries.Ratio.Equal(decimal.RequireFromString("0.25")))

	// No limit set for Transport: ratio is zero, never a division fault.
	transport := progress[1]
	assert.Equal(t, "Transport", transport.Category)
	assert.True(t, transport.Limit.IsZero())
	assert.True(t, transport.Ratio.IsZero())
}

func TestTrackAgainstIncludesLimitOnlyCategories(t *testing.T) {
	l := newTestLimits(t)
	require.NoError(t, l.Set("Entertainment", decimal.RequireFromString("100")))

	progress := l.TrackAgainst(models.NewTransactionTable(nil))
	require.Len(t, progress, 1)
	assert.Equal(t, "Entertainment", progress[0].Category)
	assert.True(t, progress[0].Spent.IsZero())
}
