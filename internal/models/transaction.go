// Package models defines the core data types shared across the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction represents the flow direction of a transaction.
type Direction string

const (
	DirectionDebit  Direction = "Debit"
	DirectionCredit Direction = "Credit"
)

// DirectionForAmount derives the flow direction from the amount sign.
// A zero amount is treated as a debit, matching the bank exports this
// tool reads.
func DirectionForAmount(amount decimal.Decimal) Direction {
	if amount.GreaterThan(decimal.Zero) {
		return DirectionCredit
	}
	return DirectionDebit
}

// Transaction is one bank-statement line item.
type Transaction struct {
	Date      time.Time       `json:"date"`
	Details   string          `json:"details"`
	Amount    decimal.Decimal `json:"amount"`
	Direction Direction       `json:"direction"`
	Category  string          `json:"category"`
}

// IsDebit returns true if the transaction is a debit.
func (t Transaction) IsDebit() bool {
	return t.Direction == DirectionDebit
}

// IsCredit returns true if the transaction is a credit.
func (t Transaction) IsCredit() bool {
	return t.Direction == DirectionCredit
}
