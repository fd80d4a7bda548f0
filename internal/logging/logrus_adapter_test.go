package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{
			name:        "debug level with text format",
			level:       "debug",
			format:      "text",
			expectLevel: logrus.DebugLevel,
		},
		{
			name:        "info level with json format",
			level:       "info",
			format:      "json",
			expectLevel: logrus.InfoLevel,
		},
		{
			name:        "invalid level defaults to info",
			level:       "invalid",
			format:      "text",
			expectLevel: logrus.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			if tt.format == "json" {
				assert.IsType(t, &logrus.JSONFormatter{}, adapter.logger.Formatter)
			} else {
				assert.IsType(t, &logrus.TextFormatter{}, adapter.logger.Formatter)
			}
		})
	}
}

func TestNewLogrusAdapterFromLoggerNil(t *testing.T) {
	logger := NewLogrusAdapterFromLogger(nil)
	require.NotNil(t, logger)

	// Must be safe to use immediately.
	logger.Info("hello")
}

func TestLogrusAdapterWritesFields(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(base)
	logger.Info("categorized transaction",
		Field{Key: FieldCategory, Value: "Groceries"},
		Field{Key: FieldCount, Value: 3},
	)

	out := buf.String()
	assert.Contains(t, out, "categorized transaction")
	assert.Contains(t, out, `"category":"Groceries"`)
	assert.Contains(t, out, `"count":3`)
}

func TestLogrusAdapterWithErrorAndField(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(base)
	derived := logger.WithError(errors.New("boom")).WithField(FieldFile, "data.csv")
	derived.Warn("upload rejected")

	out := buf.String()
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"file_path":"data.csv"`)

	// The parent logger carries no accumulated fields.
	buf.Reset()
	logger.Info("clean entry")
	assert.NotContains(t, buf.String(), "boom")
}

func TestConvertFields(t *testing.T) {
	fields := convertFields([]Field{
		{Key: FieldKeyword, Value: "TESCO"},
		{Key: FieldIndex, Value: 2},
	})
	assert.Equal(t, logrus.Fields{"keyword": "TESCO", "index": 2}, fields)
}
