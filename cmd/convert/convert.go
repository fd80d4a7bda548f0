// Package convert turns a bank CSV export into a categorized CSV file
package convert

import (
	"fmt"
	"os"

	"gmartin/finboard/cmd/root"
	"gmartin/finboard/internal/fileutils"
	"gmartin/finboard/internal/loader"
	"gmartin/finboard/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a bank CSV export to a categorized CSV file",
	Long: `Convert reads a bank CSV export (standard or Barclays layout),
categorizes every transaction against the category store and writes
the result as a normalized CSV with direction and category columns.`,
	RunE: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) error {
	if !fileutils.FileExists(root.SharedFlags.Input) {
		return fmt.Errorf("input file does not exist: %s", root.SharedFlags.Input)
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

	out := os.Stdout
	if root.SharedFlags.Output != "" {
		out, err = os.Create(root.SharedFlags.Output)
		if err != nil {
			return fmt.Errorf("error creating output file: %w", err)
		}
		defer out.Close()
	}

	if err := loader.WriteCSV(table, out); err != nil {
		return err
	}

	root.Log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: root.SharedFlags.Input},
		logging.Field{Key: logging.FieldCount, Value: table.Len()},
	).Info("Converted CSV file")
	return nil
}
