package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoggerRecordsEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("loaded", Field{Key: FieldCount, Value: 4})
	mock.Warn("skipped")

	require.Len(t, mock.Entries, 2)
	assert.Equal(t, "INFO", mock.Entries[0].Level)
	assert.Equal(t, "loaded", mock.Entries[0].Message)
	assert.Equal(t, []Field{{Key: FieldCount, Value: 4}}, mock.Entries[0].Fields)
	assert.Equal(t, "WARN", mock.Entries[1].Level)
}

func TestMockLoggerWithErrorAndFields(t *testing.T) {
	mock := &MockLogger{}
	err := errors.New("boom")

	mock.WithError(err).WithField(FieldCategory, "Groceries").Error("save failed")

	require.Len(t, mock.Entries, 1)
	entry := mock.Entries[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, err, entry.Error)
	assert.Contains(t, entry.Fields, Field{Key: FieldCategory, Value: "Groceries"})
}
