// Package dateutils provides date parsing and month bucketing helpers.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayoutUK is the DD/MM/YYYY format used by UK bank CSV exports.
const DateLayoutUK = "02/01/2006"

// MonthLayout is the YYYY-MM key used for monthly aggregation.
const MonthLayout = "2006-01"

// ParseUKDate parses a DD/MM/YYYY date string, ignoring surrounding
// whitespace.
func ParseUKDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	t, err := time.Parse(DateLayoutUK, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date '%s': expected DD/MM/YYYY", value)
	}
	return t, nil
}

// MonthKey returns the YYYY-MM bucket a date falls into.
func MonthKey(date time.Time) string {
	return date.Format(MonthLayout)
}
