package models

// TransactionTable is an ordered collection of transactions from one upload.
// The table is the canonical view; Debits and Credits are derived copies and
// edits must always flow back through the table itself.
type TransactionTable struct {
	Transactions []Transaction `json:"transactions"`
}

// NewTransactionTable creates a table from a slice of transactions.
func NewTransactionTable(transactions []Transaction) *TransactionTable {
	return &TransactionTable{Transactions: transactions}
}

// Len returns the number of transactions in the table.
func (t *TransactionTable) Len() int {
	return len(t.Transactions)
}

// Debits returns the outgoing transactions in table order.
func (t *TransactionTable) Debits() []Transaction {
	return t.filter(DirectionDebit)
}

// Credits returns the incoming transactions in table order.
func (t *TransactionTable) Credits() []Transaction {
	return t.filter(DirectionCredit)
}

func (t *TransactionTable) filter(direction Direction) []Transaction {
	var out []Transaction
	for _, tx := range t.Transactions {
		if tx.Direction == direction {
			out = append(out, tx)
		}
	}
	return out
}

// Categories returns the distinct categories present in the table, in first
// occurrence order.
func (t *TransactionTable) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, tx := range t.Transactions {
		if !seen[tx.Category] {
			seen[tx.Category] = true
			out = append(out, tx.Category)
		}
	}
	return out
}
