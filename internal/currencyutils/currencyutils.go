// Package currencyutils parses and formats monetary amounts as they appear
// in bank CSV exports.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var symbolPattern = regexp.MustCompile(`[€$£\s]`)

// ParseAmount parses an amount cell into a decimal. Bank exports are not
// consistent about formatting, so currency symbols ("£23.50") and thousand
// separators ("1,234.56" or "1'234.56") are tolerated.
func ParseAmount(raw string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(raw)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", raw, err)
	}
	return amount, nil
}

// StandardizeAmount strips currency symbols, whitespace and thousand
// separators so the result parses with decimal.NewFromString.
func StandardizeAmount(raw string) string {
	cleaned := symbolPattern.ReplaceAllString(raw, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, "'", "")
	return cleaned
}

// FormatAmount renders an amount with two decimal places for display.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
