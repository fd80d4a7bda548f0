// Package batch converts every CSV export in a directory in one run
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gmartin/finboard/cmd/root"
	"gmartin/finboard/internal/fileutils"
	"gmartin/finboard/internal/loader"
	"gmartin/finboard/internal/logging"
	"gmartin/finboard/internal/session"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert every CSV export in a directory",
	Long: `Batch converts all .csv files in the input directory to categorized
CSV files in the output directory, using the same category store for
every file.`,
	RunE: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.InputDir, "input-dir", "d", "", "Directory containing CSV exports")
	Cmd.Flags().StringVarP(&root.OutputDir, "output-dir", "t", "", "Directory for categorized output")
	Cmd.MarkFlagRequired("input-dir")
	Cmd.MarkFlagRequired("output-dir")
}

func batchFunc(cmd *cobra.Command, args []string) error {
	files, err := fileutils.ListFilesWithExtension(root.InputDir, ".csv")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .csv files in %s", root.InputDir)
	}
	if err := fileutils.EnsureDirectoryExists(root.OutputDir); err != nil {
		return err
	}

	sess, err := root.OpenSession()
	if err != nil {
		return err
	}

	converted := 0
	for _, file := range files {
		if err := convertOne(sess, file); err != nil {
			root.Log.WithError(err).WithField(logging.FieldFile, file).Warn("Skipping file")
			continue
		}
		converted++
	}

	root.Log.WithField(logging.FieldCount, converted).Info("Batch conversion finished")
	if converted == 0 {
		return fmt.Errorf("no files converted")
	}
	return nil
}

func convertOne(sess *session.Session, file string) error {
	in, err := os.Open(file)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := sess.LoadCSV(in); err != nil {
		return err
	}

	out, err := os.Create(outputPath(file))
	if err != nil {
		return err
	}
	defer out.Close()

	return loader.WriteCSV(sess.Table(), out)
}

// outputPath maps input/foo.csv to <output-dir>/foo-categorized.csv.
func outputPath(file string) string {
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	return filepath.Join(root.OutputDir, base+"-categorized.csv")
}
