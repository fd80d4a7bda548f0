// Package categorizer assigns spending categories to transactions by matching
// keywords from the category store against normalized transaction details.
package categorizer

import (
	"strings"

	"gmartin/finboard/internal/logging"
	"gmartin/finboard/internal/models"
	"gmartin/finboard/internal/textutils"
)

// Store is the read side of the category store the categorizer needs.
type Store interface {
	Categories() []models.CategoryConfig
}

// Categorizer applies keyword rules to transactions.
type Categorizer struct {
	store  Store
	logger logging.Logger
}

// New creates a Categorizer backed by the given store.
func New(store Store, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	return &Categorizer{store: store, logger: logger}
}

// Categorize returns a new table with every transaction assigned exactly one
// category. The first category in store order with a matching keyword wins;
// transactions matching nothing stay Uncategorized. The input table is not
// mutated.
func (c *Categorizer) Categorize(table *models.TransactionTable) *models.TransactionTable {
	categories := c.store.Categories()

	out := make([]models.Transaction, len(table.Transactions))
	matched := 0
	for i, tx := range table.Transactions {
		out[i] = tx
		out[i].Category = c.categorizeDetails(tx.Details, categories)
		if out[i].Category != models.CategoryUncategorized {
			matched++
		}
	}

	c.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(out)},
		logging.Field{Key: "matched", Value: matched},
	).Debug("Categorized transactions")

	return models.NewTransactionTable(out)
}

// CategorizeDetails assigns a category to a single raw description string.
func (c *Categorizer) CategorizeDetails(details string) string {
	return c.categorizeDetails(details, c.store.Categories())
}

func (c *Categorizer) categorizeDetails(details string, categories []models.CategoryConfig) string {
	cleaned := textutils.Normalize(details)

	for _, category := range categories {
		if category.Name == models.CategoryUncategorized || len(category.Keywords) == 0 {
			continue
		}
		for _, keyword := range category.Keywords {
			// Plain substring containment, no word boundaries. Short
			// keywords can over-match ("BAR" matches "BARCLAYS").
			if strings.Contains(cleaned, strings.ToUpper(keyword)) {
				return category.Name
			}
		}
	}
	return models.CategoryUncategorized
}
