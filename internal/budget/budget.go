// Package budget manages per-category spending limits and tracks actual
// spend against them.
package budget

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gmartin/finboard/internal/analytics"
	"gmartin/finboard/internal/fileutils"
	"gmartin/finboard/internal/logging"
	"gmartin/finboard/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// limitsDocument is the on-disk YAML form of the limits. Amounts are kept as
// strings so decimal values round-trip exactly.
type limitsDocument struct {
	Budgets map[string]string `yaml:"budgets"`
}

// Limits holds per-category budget limits, persisted wholesale on mutation.
type Limits struct {
	path   string
	limits map[string]decimal.Decimal
	logger logging.Logger
}

// Progress reports one category's spend against its limit. Ratio is zero
// when no limit is set.
type Progress struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Spent    decimal.Decimal `json:"spent"`
	Ratio    decimal.Decimal `json:"ratio"`
}

// NewLimits creates a limit set backed by the YAML file at path. Call Load
// before use.
func NewLimits(path string, logger logging.Logger) *Limits {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	return &Limits{path: path, limits: make(map[string]decimal.Decimal), logger: logger}
}

// Load reads the persisted limits; a missing file means no limits yet.
func (l *Limits) Load() error {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			l.limits = make(map[string]decimal.Decimal)
			return nil
		}
		return fmt.Errorf("error reading budgets file: %w", err)
	}

	var doc limitsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("error parsing budgets file: %w", err)
	}

	limits := make(map[string]decimal.Decimal, len(doc.Budgets))
	for category, value := range doc.Budgets {
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("error parsing budget for '%s': %w", category, err)
		}
		limits[category] = amount
	}
	l.limits = limits
	return nil
}

// Save rewrites the whole limit set to disk.
func (l *Limits) Save() error {
	doc := limitsDocument{Budgets: make(map[string]string, len(l.limits))}
	for category, amount := range l.limits {
		doc.Budgets[category] = amount.String()
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error marshaling budgets: %w", err)
	}
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(l.path)); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0600); err != nil {
		return fmt.Errorf("error writing budgets file: %w", err)
	}

	l.logger.WithField(logging.FieldCount, len(l.limits)).Debug("Saved budget limits")
	return nil
}

// Set stores a limit for a category and persists immediately.
func (l *Limits) Set(category string, limit decimal.Decimal) error {
	l.limits[category] = limit
	return l.Save()
}

// Get returns the limit for a category, zero if none is set.
func (l *Limits) Get(category string) decimal.Decimal {
	return l.limits[category]
}

// TrackAgainst computes spend-vs-limit for every category present in the
// table or carrying a limit, sorted by category name.
func (l *Limits) TrackAgainst(table *models.TransactionTable) []Progress {
	spent := make(map[string]decimal.Decimal)
	for _, summary := range analytics.ExpenseSummary(table) {
		spent[summary.Category] = summary.Amount
	}

	categories := make(map[string]bool)
	for category := range spent {
		categories[category] = true
	}
	for category := range l.limits {
		categories[category] = true
	}

	names := make([]string, 0, len(categories))
	for category := range categories {
		names = append(names, category)
	}
	sort.Strings(names)

	out := make([]Progress, len(names))
	for i, category := range names {
		limit := l.limits[category]
		out[i] = Progress{
			Category: category,
			Limit:    limit,
			Spent:    spent[category],
			Ratio:    analytics.BudgetProgress(spent[category], limit),
		}
	}
	return out
}
