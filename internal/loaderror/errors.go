// Package loaderror defines the recoverable error types surfaced at the
// loader and store boundaries.
package loaderror

import (
	"fmt"
	"strings"
)

// LoadError represents a failure to turn uploaded CSV bytes into a
// transaction table. It is always recovered at the loader boundary: the
// caller reports the message and keeps its prior state.
type LoadError struct {
	Stage string // "parse", "date", "amount" or "columns"
	Value string // offending value, if any
	Err   error
}

func (e *LoadError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("load failed at %s stage for value '%s': %v", e.Stage, e.Value, e.Err)
	}
	return fmt.Sprintf("load failed at %s stage: %v", e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewMissingColumnsError builds a LoadError naming the missing column set.
func NewMissingColumnsError(missing []string) *LoadError {
	return &LoadError{
		Stage: "columns",
		Err:   fmt.Errorf("missing required columns: %s", strings.Join(missing, ", ")),
	}
}

// StoreError represents a category store operation against a category that
// does not exist. It is never fatal; callers treat it as a failed no-op.
type StoreError struct {
	Category string
	Op       string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: category '%s' does not exist", e.Op, e.Category)
}
