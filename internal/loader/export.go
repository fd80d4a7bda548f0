package loader

import (
	"encoding/csv"
	"io"

	"gmartin/finboard/internal/currencyutils"
	"gmartin/finboard/internal/dateutils"
	"gmartin/finboard/internal/models"

	"github.com/gocarina/gocsv"
)

// exportRow is the CSV shape of a categorized transaction.
type exportRow struct {
	Date      string `csv:"Date"`
	Details   string `csv:"Details"`
	Amount    string `csv:"Amount"`
	Direction string `csv:"Direction"`
	Category  string `csv:"Category"`
}

// WriteCSV writes a categorized table as CSV with the standard column set.
func WriteCSV(table *models.TransactionTable, w io.Writer) error {
	rows := make([]exportRow, table.Len())
	for i, tx := range table.Transactions {
		rows[i] = exportRow{
			Date:      tx.Date.Format(dateutils.DateLayoutUK),
			Details:   tx.Details,
			Amount:    currencyutils.FormatAmount(tx.Amount),
			Direction: string(tx.Direction),
			Category:  tx.Category,
		}
	}

	writer := csv.NewWriter(w)
	return gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(writer))
}
