// Package analytics computes summaries, trends and projections over a
// categorized transaction table. All functions are pure: they never mutate
// the table.
package analytics

import (
	"sort"

	"gmartin/finboard/internal/dateutils"
	"gmartin/finboard/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryTotal is the absolute spend recorded against one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// Totals holds the headline income/expense/net figures for a table.
type Totals struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// MonthlyPoint is a month bucket with an aggregated amount.
type MonthlyPoint struct {
	Month  string          `json:"month"` // YYYY-MM
	Amount decimal.Decimal `json:"amount"`
}

// CategorySeries is one category's monthly amounts.
type CategorySeries struct {
	Category string         `json:"category"`
	Points   []MonthlyPoint `json:"points"`
}

// ComputeTotals sums credits, debits and the overall net position.
func ComputeTotals(table *models.TransactionTable) Totals {
	income := decimal.Zero
	debits := decimal.Zero
	for _, tx := range table.Transactions {
		if tx.IsCredit() {
			income = income.Add(tx.Amount)
		} else {
			debits = debits.Add(tx.Amount)
		}
	}
	return Totals{
		Income:   income,
		Expenses: debits.Abs(),
		Net:      income.Add(debits),
	}
}

// ExpenseSummary groups debit amounts by category, as absolute values sorted
// smallest first (the order the dashboard's horizontal bars are drawn in).
func ExpenseSummary(table *models.TransactionTable) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, tx := range table.Transactions {
		if !tx.IsDebit() {
			continue
		}
		if _, ok := sums[tx.Category]; !ok {
			order = append(order, tx.Category)
		}
		sums[tx.Category] = sums[tx.Category].Add(tx.Amount.Abs())
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		out = append(out, CategoryTotal{Category: category, Amount: sums[category]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.LessThan(out[j].Amount)
	})
	return out
}

// MonthlyNet sums all amounts per calendar month, in chronological order.
func MonthlyNet(table *models.TransactionTable) []MonthlyPoint {
	sums := make(map[string]decimal.Decimal)
	for _, tx := range table.Transactions {
		key := dateutils.MonthKey(tx.Date)
		sums[key] = sums[key].Add(tx.Amount)
	}
	return sortedPoints(sums)
}

// CategoryTrends builds a per-category monthly series over the table's full
// month range. Months with no activity for a category are filled with zero so
// every series covers the same range.
func CategoryTrends(table *models.TransactionTable) []CategorySeries {
	months := make(map[string]bool)
	sums := make(map[string]map[string]decimal.Decimal)
	var categoryOrder []string
	for _, tx := range table.Transactions {
		key := dateutils.MonthKey(tx.Date)
		months[key] = true
		if sums[tx.Category] == nil {
			sums[tx.Category] = make(map[string]decimal.Decimal)
			categoryOrder = append(categoryOrder, tx.Category)
		}
		sums[tx.Category][key] = sums[tx.Category][key].Add(tx.Amount)
	}

	monthKeys := make([]string, 0, len(months))
	for key := range months {
		monthKeys = append(monthKeys, key)
	}
	sort.Strings(monthKeys)

	out := make([]CategorySeries, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		points := make([]MonthlyPoint, len(monthKeys))
		for i, key := range monthKeys {
			points[i] = MonthlyPoint{Month: key, Amount: sums[category][key]}
		}
		out = append(out, CategorySeries{Category: category, Points: points})
	}
	return out
}

// AverageMonthlyNet is the mean of the monthly net amounts, zero when the
// table has no transactions.
func AverageMonthlyNet(table *models.TransactionTable) decimal.Decimal {
	monthly := MonthlyNet(table)
	if len(monthly) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, point := range monthly {
		sum = sum.Add(point.Amount)
	}
	return sum.Div(decimal.NewFromInt(int64(len(monthly))))
}

// SavingsProjection projects the cumulative net position forward by adding
// the average monthly net repeatedly. The result has months+1 values, the
// first being the current position.
func SavingsProjection(table *models.TransactionTable, months int) []decimal.Decimal {
	current := decimal.Zero
	for _, point := range MonthlyNet(table) {
		current = current.Add(point.Amount)
	}
	average := AverageMonthlyNet(table)

	projection := make([]decimal.Decimal, 0, months+1)
	projection = append(projection, current)
	for i := 0; i < months; i++ {
		current = current.Add(average)
		projection = append(projection, current)
	}
	return projection
}

// MonthsToGoal estimates how many months of average net savings are needed to
// reach goal from the current projected position. The second return value is
// false when the average monthly net is zero and the estimate is undefined.
func MonthsToGoal(goal, currentSavings, averageMonthlyNet decimal.Decimal) (decimal.Decimal, bool) {
	if averageMonthlyNet.IsZero() {
		return decimal.Zero, false
	}
	return goal.Sub(currentSavings).Div(averageMonthlyNet), true
}

// BudgetProgress is spent/limit, guarded: a zero (or negative) limit yields
// zero rather than a division fault.
func BudgetProgress(spent, limit decimal.Decimal) decimal.Decimal {
	if limit.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return spent.Div(limit)
}

func sortedPoints(sums map[string]decimal.Decimal) []MonthlyPoint {
	keys := make([]string, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	points := make([]MonthlyPoint, len(keys))
	for i, key := range keys {
		points[i] = MonthlyPoint{Month: key, Amount: sums[key]}
	}
	return points
}
