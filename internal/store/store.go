// Package store manages the persisted category-to-keywords mapping.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gmartin/finboard/internal/fileutils"
	"gmartin/finboard/internal/loaderror"
	"gmartin/finboard/internal/logging"
	"gmartin/finboard/internal/models"
	"gmartin/finboard/internal/textutils"
)

// categoriesDocument is the on-disk JSON form of the store. Categories are
// kept as an ordered array so matching order survives reloads.
type categoriesDocument struct {
	Categories []models.CategoryConfig `json:"categories"`
}

// CategoryStore is an ordered, editable mapping from category name to keyword
// list, rewritten to disk wholesale on every mutation. There is only ever one
// writer process, so no file locking is needed.
type CategoryStore struct {
	path       string
	categories []models.CategoryConfig
	logger     logging.Logger
}

// NewCategoryStore creates a store backed by the JSON file at path.
// Call Load before use.
func NewCategoryStore(path string, logger logging.Logger) *CategoryStore {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	return &CategoryStore{path: path, logger: logger}
}

// Load reads the persisted mapping. A missing file is not an error: the
// built-in default categories are used instead (and persisted on the first
// mutation).
func (s *CategoryStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, s.path).Info("Categories file not found, using defaults")
			s.categories = DefaultCategories()
			return nil
		}
		return fmt.Errorf("error reading categories file: %w", err)
	}

	var doc categoriesDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("error parsing categories file: %w", err)
	}
	s.categories = doc.Categories
	s.ensureUncategorized()

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.path},
		logging.Field{Key: logging.FieldCount, Value: len(s.categories)},
	).Debug("Loaded categories")
	return nil
}

// Save rewrites the whole mapping to disk atomically (write to a temp file in
// the same directory, then rename over the target).
func (s *CategoryStore) Save() error {
	doc := categoriesDocument{Categories: s.categories}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := fileutils.EnsureDirectoryExists(dir); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "categories-*.json")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("error writing categories: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error replacing categories file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.path},
		logging.Field{Key: logging.FieldCount, Value: len(s.categories)},
	).Debug("Saved categories")
	return nil
}

// Categories returns a copy of the configured categories in matching order.
func (s *CategoryStore) Categories() []models.CategoryConfig {
	out := make([]models.CategoryConfig, len(s.categories))
	for i, c := range s.categories {
		out[i] = models.CategoryConfig{
			Name:     c.Name,
			Keywords: append([]string(nil), c.Keywords...),
		}
	}
	return out
}

// CategoryNames returns the category names in matching order, for selection
// controls in the presentation layer.
func (s *CategoryStore) CategoryNames() []string {
	names := make([]string, len(s.categories))
	for i, c := range s.categories {
		names[i] = c.Name
	}
	return names
}

// HasCategory reports whether a category with the given name exists.
func (s *CategoryStore) HasCategory(name string) bool {
	return s.indexOf(name) >= 0
}

// AddCategory inserts a new empty category and persists the store. Adding a
// name that already exists is a silent no-op.
func (s *CategoryStore) AddCategory(name string) error {
	if name == "" || s.HasCategory(name) {
		return nil
	}
	s.categories = append(s.categories, models.CategoryConfig{Name: name, Keywords: []string{}})
	s.logger.WithField(logging.FieldCategory, name).Info("Added category")
	return s.Save()
}

// AddKeyword normalizes rawText and appends it to the category's keyword
// list, persisting the store. It reports whether a keyword was actually added
// (false for an empty or duplicate keyword). Adding to a category that does
// not exist returns a StoreError; callers treat it as a failed no-op.
func (s *CategoryStore) AddKeyword(category, rawText string) (bool, error) {
	idx := s.indexOf(category)
	if idx < 0 {
		return false, &loaderror.StoreError{Category: category, Op: "add keyword"}
	}

	keyword := textutils.Normalize(rawText)
	if keyword == "" || s.categories[idx].HasKeyword(keyword) {
		return false, nil
	}

	s.categories[idx].Keywords = append(s.categories[idx].Keywords, keyword)
	s.logger.WithFields(
		logging.Field{Key: logging.FieldCategory, Value: category},
		logging.Field{Key: logging.FieldKeyword, Value: keyword},
	).Info("Added keyword")
	if err := s.Save(); err != nil {
		return false, err
	}
	return true, nil
}

func (s *CategoryStore) indexOf(name string) int {
	for i, c := range s.categories {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// ensureUncategorized keeps the fallback category present after loading a
// hand-edited file.
func (s *CategoryStore) ensureUncategorized() {
	if s.HasCategory(models.CategoryUncategorized) {
		return
	}
	s.categories = append([]models.CategoryConfig{
		{Name: models.CategoryUncategorized, Keywords: []string{}},
	}, s.categories...)
}
