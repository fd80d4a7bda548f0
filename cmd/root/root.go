// Package root contains the root command for the application
package root

import (
	"fmt"

	"gmartin/finboard/internal/budget"
	"gmartin/finboard/internal/config"
	"gmartin/finboard/internal/logging"
	"gmartin/finboard/internal/session"
	"gmartin/finboard/internal/store"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapterFromLogger(nil)

	// Cfg is the resolved application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finboard",
		Short: "A personal finance dashboard for categorizing bank CSV exports.",
		Long: `finboard reads bank CSV exports, categorizes each transaction by
matching keywords against an editable category store, and reports
summaries, trends, budgets and savings projections.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finboard!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
			return nil
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific serve command flags
	Addr string

	// Specific batch command flags
	InputDir  string
	OutputDir string

	// Specific categorize command flags
	Details string

	// Specific report command flags
	Months int
	Goal   string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// OpenSession loads the category store and budget limits named by the
// configuration and wraps them in a fresh session.
func OpenSession() (*session.Session, error) {
	categoryStore := store.NewCategoryStore(Cfg.CategoriesPath(), Log)
	if err := categoryStore.Load(); err != nil {
		return nil, fmt.Errorf("error loading categories: %w", err)
	}
	limits := budget.NewLimits(Cfg.BudgetsPath(), Log)
	if err := limits.Load(); err != nil {
		return nil, fmt.Errorf("error loading budgets: %w", err)
	}
	return session.New(categoryStore, limits, Log), nil
}
