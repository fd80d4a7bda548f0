// Package session holds the mutable state of one interactive user session:
// the category store, the budget limits and the currently loaded transaction
// table. All mutations are serialized through the session so the presentation
// layer never touches shared state concurrently.
package session

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"gmartin/finboard/internal/budget"
	"gmartin/finboard/internal/categorizer"
	"gmartin/finboard/internal/loader"
	"gmartin/finboard/internal/loaderror"
	"gmartin/finboard/internal/logging"
	"gmartin/finboard/internal/models"
	"gmartin/finboard/internal/store"

	"github.com/shopspring/decimal"
)

// ErrIndexOutOfRange reports an edit aimed at a row the table does not have.
var ErrIndexOutOfRange = errors.New("transaction index out of range")

// Session owns the category store, budgets and current table for the
// lifetime of one user session.
type Session struct {
	mu          sync.Mutex
	store       *store.CategoryStore
	budgets     *budget.Limits
	categorizer *categorizer.Categorizer
	loader      *loader.Loader
	table       *models.TransactionTable
	logger      logging.Logger
}

// New creates a session around an already-loaded store and budget set.
func New(categoryStore *store.CategoryStore, budgets *budget.Limits, logger logging.Logger) *Session {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	cat := categorizer.New(categoryStore, logger)
	return &Session{
		store:       categoryStore,
		budgets:     budgets,
		categorizer: cat,
		loader:      loader.New(cat, logger),
		table:       models.NewTransactionTable(nil),
		logger:      logger,
	}
}

// LoadCSV parses and categorizes an uploaded CSV. On failure the previous
// table is kept and the error is returned for the caller to report.
func (s *Session) LoadCSV(r io.Reader) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.loader.Load(r)
	if err != nil {
		s.logger.WithError(err).Warn("Upload rejected, keeping previous table")
		return err
	}
	s.table = table
	return nil
}

// Table returns a snapshot of the current transaction table.
func (s *Session) Table() *models.TransactionTable {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.NewTransactionTable(append([]models.Transaction(nil), s.table.Transactions...))
}

// ApplyEdit reassigns a transaction's category and feeds the correction back
// into the category store: the transaction's normalized details become a
// keyword of the new category, so future uploads auto-categorize the same
// merchant. Re-applying the current category is a no-op.
func (s *Session) ApplyEdit(index int, newCategory string) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= s.table.Len() {
		return models.Transaction{}, fmt.Errorf("index %d: %w", index, ErrIndexOutOfRange)
	}
	tx := s.table.Transactions[index]
	if tx.Category == newCategory {
		return tx, nil
	}
	if !s.store.HasCategory(newCategory) {
		return tx, &loaderror.StoreError{Category: newCategory, Op: "apply edit"}
	}

	s.table.Transactions[index].Category = newCategory
	if _, err := s.store.AddKeyword(newCategory, tx.Details); err != nil {
		return s.table.Transactions[index], err
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldIndex, Value: index},
		logging.Field{Key: logging.FieldCategory, Value: newCategory},
		logging.Field{Key: logging.FieldDetails, Value: tx.Details},
	).Info("Applied category edit")
	return s.table.Transactions[index], nil
}

// AddCategory adds a new category to the store. Duplicates are silent no-ops.
func (s *Session) AddCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.AddCategory(name)
}

// CategoryNames lists the store's categories for selection controls.
func (s *Session) CategoryNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.CategoryNames()
}

// SetBudget stores a per-category budget limit.
func (s *Session) SetBudget(category string, limit decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.store.HasCategory(category) {
		return &loaderror.StoreError{Category: category, Op: "set budget"}
	}
	return s.budgets.Set(category, limit)
}

// BudgetProgress reports spend against limits for the current table.
func (s *Session) BudgetProgress() []budget.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budgets.TrackAgainst(s.table)
}
