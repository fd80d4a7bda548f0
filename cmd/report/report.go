// Package report prints analytics for a CSV export on the command line
package report

import (
	"fmt"
	"os"

	"gmartin/finboard/cmd/root"
	"gmartin/finboard/internal/analytics"
	"gmartin/finboard/internal/currencyutils"
	"gmartin/finboard/internal/fileutils"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Print a spending report for a bank CSV export",
	Long: `Report loads a bank CSV export, categorizes it and prints totals,
per-category expenses, monthly net amounts, budget progress and a
savings projection.`,
	RunE: reportFunc,
}

func init() {
	Cmd.Flags().IntVarP(&root.Months, "months", "m", 12, "Projection horizon in months")
	Cmd.Flags().StringVarP(&root.Goal, "goal", "g", "", "Savings goal amount (optional)")
}

func reportFunc(cmd *cobra.Command, args []string) error {
	if !fileutils.FileExists(root.SharedFlags.Input) {
		return fmt.Errorf("input file does not exist: %s", root.SharedFlags.Input)
	}
	if root.Months < 1 {
		return fmt.Errorf("months must be a positive integer")
	}

	sess, err := root.OpenSession()
	if err != nil {
		return err
	}

	in, err := os.Open(root.SharedFlags.Input)
	if err != nil {
		return fmt.Errorf("error opening input file: %w", err)
	}
	defer in.Close()

	if err := sess.LoadCSV(in); err != nil {
		return err
	}
	table := sess.Table()

	totals := analytics.ComputeTotals(table)
	fmt.Printf("Income:   %s\n", currencyutils.FormatAmount(totals.Income))
	fmt.Printf("Expenses: %s\n", currencyutils.FormatAmount(totals.Expenses))
	fmt.Printf("Net:      %s\n", currencyutils.FormatAmount(totals.Net))

	fmt.Println("\nExpenses by category:")
	for _, total := range analytics.ExpenseSummary(table) {
		fmt.Printf("  %-24s %s\n", total.Category, currencyutils.FormatAmount(total.Amount))
	}

	fmt.Println("\nMonthly net:")
	for _, point := range analytics.MonthlyNet(table) {
		fmt.Printf("  %s  %s\n", point.Month, currencyutils.FormatAmount(point.Amount))
	}

	progress := sess.BudgetProgress()
	if len(progress) > 0 {
		fmt.Println("\nBudgets:")
		for _, p := range progress {
			if p.Limit.IsZero() {
				continue
			}
			fmt.Printf("  %-24s %s / %s (%s%%)\n", p.Category,
				currencyutils.FormatAmount(p.Spent), currencyutils.FormatAmount(p.Limit),
				p.Ratio.Mul(decimal.NewFromInt(100)).StringFixed(1))
		}
	}

	average := analytics.AverageMonthlyNet(table)
	projection := analytics.SavingsProjection(table, root.Months)
	fmt.Printf("\nAverage monthly net: %s\n", currencyutils.FormatAmount(average))
	fmt.Printf("Projected savings after %d months: %s\n",
		root.Months, currencyutils.FormatAmount(projection[len(projection)-1]))

	if root.Goal != "" {
		goal, err := decimal.NewFromString(root.Goal)
		if err != nil {
			return fmt.Errorf("goal must be a number: %w", err)
		}
		if months, ok := analytics.MonthsToGoal(goal, projection[0], average); ok {
			fmt.Printf("Months to reach %s: %s\n", currencyutils.FormatAmount(goal), months.StringFixed(1))
		} else {
			fmt.Println("Months to goal: undefined (average monthly net is zero)")
		}
	}
	return nil
}
