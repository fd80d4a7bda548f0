// Package categorize handles transaction categorization commands
package categorize

import (
	"fmt"

	"gmartin/finboard/cmd/root"
	"gmartin/finboard/internal/categorizer"
	"gmartin/finboard/internal/store"
	"gmartin/finboard/internal/textutils"

	"github.com/spf13/cobra"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single transaction description",
	Long: `Categorize matches one transaction description against the keyword
store and prints the category it would be assigned.`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Details, "details", "d", "", "Transaction description to categorize")
	Cmd.MarkFlagRequired("details")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	categoryStore := store.NewCategoryStore(root.Cfg.CategoriesPath(), root.Log)
	if err := categoryStore.Load(); err != nil {
		return fmt.Errorf("error loading categories: %w", err)
	}

	cat := categorizer.New(categoryStore, root.Log)
	category := cat.CategorizeDetails(root.Details)

	fmt.Printf("%s -> %s\n", textutils.Normalize(root.Details), category)
	return nil
}
