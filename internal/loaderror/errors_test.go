package loaderror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadErrorMessage(t *testing.T) {
	err := &LoadError{Stage: "amount", Value: "abc", Err: errors.New("not a decimal")}
	assert.Contains(t, err.Error(), "amount")
	assert.Contains(t, err.Error(), "abc")
}

func TestLoadErrorUnwrap(t *testing.T) {
	inner := errors.New("bad date")
	err := &LoadError{Stage: "date", Err: inner}
	assert.ErrorIs(t, err, inner)
}

func TestNewMissingColumnsError(t *testing.T) {
	err := NewMissingColumnsError([]string{"Details", "Amount"})
	assert.Contains(t, err.Error(), "missing required columns")
	assert.Contains(t, err.Error(), "Details, Amount")
}

func TestStoreErrorMessage(t *testing.T) {
	err := &StoreError{Category: "Ghost", Op: "add keyword"}
	assert.Contains(t, err.Error(), "Ghost")
	assert.Contains(t, err.Error(), "add keyword")
}
