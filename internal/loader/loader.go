// Package loader turns uploaded bank CSV exports into a categorized
// transaction table. It accepts the standard Date/Details/Amount layout and
// the Barclays layout (Memo/Subcategory columns), which is projected down and
// renamed before loading.
package loader

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"gmartin/finboard/internal/categorizer"
	"gmartin/finboard/internal/currencyutils"
	"gmartin/finboard/internal/dateutils"
	"gmartin/finboard/internal/loaderror"
	"gmartin/finboard/internal/logging"
	"gmartin/finboard/internal/models"

	"github.com/gocarina/gocsv"
)

// standardRow maps the Date/Details/Amount CSV layout.
type standardRow struct {
	Date    string `csv:"Date"`
	Details string `csv:"Details"`
	Amount  string `csv:"Amount"`
}

// barclaysRow maps the Barclays export layout. Memo becomes Details.
type barclaysRow struct {
	Date   string `csv:"Date"`
	Amount string `csv:"Amount"`
	Memo   string `csv:"Memo"`
}

// Loader parses CSV uploads and runs the categorizer on the result.
type Loader struct {
	categorizer *categorizer.Categorizer
	logger      logging.Logger
}

// New creates a Loader. The categorizer is applied to every successfully
// loaded table before it is returned.
func New(cat *categorizer.Categorizer, logger logging.Logger) *Loader {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	return &Loader{categorizer: cat, logger: logger}
}

// Load parses CSV bytes into a categorized transaction table. Any parse or
// coercion failure is returned as a *loaderror.LoadError and no partial table
// is exposed: callers keep whatever table they had before.
func (l *Loader) Load(r io.Reader) (*models.TransactionTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &loaderror.LoadError{Stage: "parse", Err: err}
	}

	header, err := readHeader(data)
	if err != nil {
		return nil, &loaderror.LoadError{Stage: "parse", Err: err}
	}
	columns := make(map[string]bool, len(header))
	for _, name := range header {
		columns[name] = true
	}

	var transactions []models.Transaction
	if columns["Subcategory"] && columns["Memo"] {
		transactions, err = l.loadBarclays(data, columns)
	} else {
		transactions, err = l.loadStandard(data, columns)
	}
	if err != nil {
		return nil, err
	}

	table := l.categorizer.Categorize(models.NewTransactionTable(transactions))
	l.logger.WithField(logging.FieldCount, table.Len()).Info("Loaded transactions")
	return table, nil
}

func (l *Loader) loadStandard(data []byte, columns map[string]bool) ([]models.Transaction, error) {
	if missing := missingColumns(columns, "Date", "Details", "Amount"); len(missing) > 0 {
		return nil, loaderror.NewMissingColumnsError(missing)
	}

	rows, err := unmarshalRows[standardRow](data)
	if err != nil {
		return nil, &loaderror.LoadError{Stage: "parse", Err: err}
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		tx, err := buildTransaction(row.Date, row.Details, row.Amount)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func (l *Loader) loadBarclays(data []byte, columns map[string]bool) ([]models.Transaction, error) {
	if missing := missingColumns(columns, "Date", "Amount", "Memo"); len(missing) > 0 {
		return nil, loaderror.NewMissingColumnsError(missing)
	}

	rows, err := unmarshalRows[barclaysRow](data)
	if err != nil {
		return nil, &loaderror.LoadError{Stage: "parse", Err: err}
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		tx, err := buildTransaction(row.Date, row.Memo, row.Amount)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// buildTransaction coerces one CSV row into a transaction. Direction derives
// from the amount sign; zero amounts count as debits.
func buildTransaction(dateStr, details, amountStr string) (models.Transaction, error) {
	date, err := dateutils.ParseUKDate(dateStr)
	if err != nil {
		return models.Transaction{}, &loaderror.LoadError{Stage: "date", Value: dateStr, Err: err}
	}

	amount, err := currencyutils.ParseAmount(amountStr)
	if err != nil {
		return models.Transaction{}, &loaderror.LoadError{Stage: "amount", Value: amountStr, Err: err}
	}

	return models.Transaction{
		Date:      date,
		Details:   strings.TrimSpace(details),
		Amount:    amount,
		Direction: models.DirectionForAmount(amount),
		Category:  models.CategoryUncategorized,
	}, nil
}

// readHeader reads and trims the CSV header row.
func readHeader(data []byte) ([]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	return header, nil
}

func missingColumns(columns map[string]bool, required ...string) []string {
	var missing []string
	for _, name := range required {
		if !columns[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// unmarshalRows parses CSV data into row structs, tolerating leading
// whitespace in fields and stray whitespace around header names.
func unmarshalRows[T any](data []byte) ([]T, error) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.TrimLeadingSpace = true
		return r
	})
	gocsv.SetHeaderNormalizer(strings.TrimSpace)
	defer func() {
		// Reset gocsv globals for other callers.
		gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
			return csv.NewReader(in)
		})
		gocsv.SetHeaderNormalizer(gocsv.DefaultNameNormalizer())
	}()

	var rows []T
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
