// Package root contains the root command and the shared wiring every
// subcommand uses: configuration, logging, the store, and the
// reconciliation engine.
package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hrushi1881/fintrack/internal/categorizer"
	"github.com/hrushi1881/fintrack/internal/config"
	"github.com/hrushi1881/fintrack/internal/ledger"
	"github.com/hrushi1881/fintrack/internal/logging"
	"github.com/hrushi1881/fintrack/internal/store"
)

var (
	// Cfg is the loaded application configuration, available to all
	// subcommands after PersistentPreRunE.
	Cfg *config.Config

	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.GetLogger()

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "fintrack",
		Short: "A personal-finance ledger with consistent balance reconciliation.",
		Long: `fintrack tracks income and expense transactions, savings goals,
liabilities, and budgets. Every action that moves money runs through one
reconciliation engine so goal balances, liability balances, the emergency
fund, and the transaction log stay mutually consistent.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			logging.SetDefaultLogger(Log)
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to fintrack!")
			Log.Info("Use --help to see available commands")
		},
	}

	// DatabasePath overrides the configured database location when set.
	DatabasePath string
)

// Init initializes the root command and all persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVar(&DatabasePath, "db", "", "Database file (overrides configuration)")
}

// OpenStore opens the SQLite-backed store at the configured (or
// flag-overridden) path.
func OpenStore() (*store.Database, error) {
	path := Cfg.Database.Path
	if DatabasePath != "" {
		path = DatabasePath
	}
	return store.NewDatabase(path)
}

// NewEngine builds a reconciliation engine over the given store. A nil
// confirmer declines all liability overpayments.
func NewEngine(s ledger.Store, confirmer ledger.Confirmer) *ledger.Engine {
	return ledger.NewEngine(s, confirmer, Log)
}

// NewCategorizer builds the advisory categorizer: Gemini-backed when AI is
// enabled and reachable, with the local keyword rules always behind it.
func NewCategorizer(ctx context.Context) *categorizer.Categorizer {
	rules, err := categorizer.LoadRules(Cfg.Categorization.RulesFile)
	if err != nil {
		Log.WithError(err).Warn("Failed to load categorization rules, using defaults")
		rules = categorizer.DefaultRules()
	}

	var aiClient categorizer.AIClient
	if Cfg.GetAIEnabled() {
		client, err := categorizer.NewGeminiClient(ctx, Cfg.GetAIAPIKey(), Cfg.GetAIModel(), Log)
		if err != nil {
			Log.WithError(err).Warn("Gemini client unavailable, using keyword categorization only")
		} else {
			aiClient = client
		}
	}

	return categorizer.New(aiClient, rules, Log)
}
