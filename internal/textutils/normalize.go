// Package textutils provides text normalization utilities for transaction
// descriptions.
package textutils

import (
	"regexp"
	"strings"
)

// channelCodes are payment-method suffixes banks append to statement lines
// (card payment, cheque, direct debit, bank giro credit, standing order,
// faster transfer). They carry no merchant information and are stripped
// before keyword matching.
var channelCodes = []string{"CPM", "CLP", "BCC", "DDR", "BGC", "STO", "FT"}

// datePattern matches embedded date fragments like "ON 05 JAN".
var datePattern = regexp.MustCompile(`\s+ON\s+\d{2}\s+[A-Z]{3}`)

// Normalize canonicalizes a raw transaction description for keyword matching.
// It upper-cases and trims the input, strips one trailing channel code,
// removes embedded "ON DD MMM" date fragments and collapses whitespace runs.
// Normalize is a pure function and always returns a string, possibly empty.
func Normalize(raw string) string {
	details := strings.ToUpper(strings.TrimSpace(raw))

	for _, code := range channelCodes {
		if strings.HasSuffix(details, " "+code) {
			details = strings.TrimSuffix(details, " "+code)
			break
		}
	}

	details = datePattern.ReplaceAllString(details, "")

	return strings.Join(strings.Fields(details), " ")
}
