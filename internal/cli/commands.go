package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avikram/finnavigator/internal/chat"
	"github.com/avikram/finnavigator/internal/config"
	"github.com/avikram/finnavigator/internal/dataflows"
	"github.com/avikram/finnavigator/internal/models"
	"github.com/avikram/finnavigator/internal/planner"
	"github.com/avikram/finnavigator/internal/session"
	"github.com/avikram/finnavigator/internal/tools"
)

const version = "v1.0.0"

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()
	store := config.NewStore(cfg)
	if prefs, err := store.Load(); err == nil {
		cfg.Apply(prefs)
	}

	rootCmd := &cobra.Command{
		Use:   "finnav",
		Short: "FinNavigator - conversational stock analysis",
		Long: `FinNavigator is a conversational financial assistant. It answers questions
about stocks with deterministic technical, fundamental and news analysis
tools, falls back to a language-model agent for everything else, and plans
SIP investments with compound-growth projections.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debugFlag, _ := cmd.Flags().GetBool("debug"); debugFlag {
				cfg.Debug = true
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("failed to create directories: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cfg)
		},
	}

	rootCmd.AddCommand(newAskCmd(cfg))
	rootCmd.AddCommand(newExportCmd(cfg))
	rootCmd.AddCommand(newProjectCmd())
	rootCmd.AddCommand(newConfigCmd(cfg, store))
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode")

	return rootCmd
}

// newAskCmd runs a single analysis turn without the interactive screens. It
// covers the three deterministic intents; conversational fallback needs a
// provider credential and is only available interactively.
func newAskCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [UTTERANCE]",
		Short: "Ask one question about a stock",
		Long: `Run one analysis turn and print the reply.
Example: finnav ask "technical analysis for AAPL"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			utterance := strings.Join(args, " ")

			_, found := chat.ExtractTicker(utterance)
			intent := chat.ClassifyIntent(utterance, found)
			if intent == chat.IntentFallback {
				return fmt.Errorf("could not resolve a stock symbol and intent from %q; use the interactive mode for open questions", utterance)
			}

			suite := tools.NewDefaultSuite(cfg)
			dispatcher := chat.NewDispatcher(suite, noopCompleter{})
			sess := session.New("", "")

			dispatcher.Dispatch(context.Background(), sess, utterance)

			turns := sess.Turns()
			DisplayTurn(turns[len(turns)-1])
			return nil
		},
	}
}

// noopCompleter stands in for the language model in one-shot mode, where the
// deterministic branches never call it.
type noopCompleter struct{}

func (noopCompleter) Converse(ctx context.Context, utterance string, history []models.ChatTurn) string {
	return ""
}

func (noopCompleter) Summarize(ctx context.Context, companyName, article string) string {
	return ""
}

// newExportCmd fetches daily bars and writes them to a CSV under the data
// directory, for offline inspection.
func newExportCmd(cfg *config.Config) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "export [SYMBOL]",
		Short: "Export daily bars for a symbol to CSV",
		Long: `Fetch daily OHLCV bars and write them to data/csv/market/{SYMBOL}/bars.csv.
Example: finnav export AAPL --days=365`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := dataflows.NormalizeSymbol(args[0])
			if err := dataflows.ValidateSymbol(symbol); err != nil {
				return err
			}

			client := dataflows.NewYahooFinanceClient(cfg)
			bars, err := client.GetDailyBars(context.Background(), symbol, days)
			if err != nil {
				return fmt.Errorf("failed to fetch bars for %s: %w", symbol, err)
			}

			manager := dataflows.NewCSVManager(cfg.DataDir)
			if err := manager.WriteBars(symbol, bars); err != nil {
				return err
			}

			fmt.Printf("Exported %d bars for %s\n", len(bars), symbol)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 365, "Number of trailing days to export")

	return cmd
}

// newProjectCmd prints a SIP projection without calling a language model.
func newProjectCmd() *cobra.Command {
	var monthly, rate float64
	var years int

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a SIP corpus",
		Long: `Compute the compound-growth projection for a monthly SIP contribution.
Example: finnav project --monthly=5000 --years=10 --return=12`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.PlanRequest{
				MonthlyAmount:   monthly,
				HorizonYears:    years,
				AnnualReturnPct: rate,
			}
			if err := planner.Validate(req); err != nil {
				return err
			}

			proj := planner.Project(req)
			fmt.Printf("Projected Corpus: ₹%.2f\n", proj.Corpus)
			fmt.Printf("Total Invested:   ₹%.2f\n", proj.Invested)
			fmt.Printf("Wealth Gained:    ₹%.2f\n", proj.Gained)
			return nil
		},
	}

	cmd.Flags().Float64Var(&monthly, "monthly", 5000, "Monthly contribution in INR")
	cmd.Flags().IntVar(&years, "years", 10, "Investment horizon in years")
	cmd.Flags().Float64Var(&rate, "return", 12, "Expected annual return percent")

	return cmd
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("FinNavigator " + version)
			fmt.Println("Conversational stock analysis and SIP planning")
		},
	}
}

// newConfigCmd creates the config command
func newConfigCmd(cfg *config.Config, store *config.Store) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Project dir:      %s\n", cfg.ProjectDir)
			fmt.Printf("Data dir:         %s\n", cfg.DataDir)
			fmt.Printf("Cache dir:        %s\n", cfg.DataCacheDir)
			fmt.Printf("Cache enabled:    %v\n", cfg.CacheEnabled)
			fmt.Printf("LLM provider:     %s\n", valueOrUnset(cfg.LLMProvider))
			fmt.Printf("LLM model:        %s\n", valueOrUnset(cfg.LLMModel))
			fmt.Printf("News locale:      %s/%s\n", cfg.NewsLanguage, cfg.NewsCountry)
			fmt.Printf("Eino debug:       %v (port %d)\n", cfg.EinoDebugEnabled, cfg.EinoDebugPort)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "save",
		Short: "Persist the current provider and locale preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs := config.Preferences{
				LLMProvider:  cfg.LLMProvider,
				LLMModel:     cfg.LLMModel,
				NewsLanguage: cfg.NewsLanguage,
				NewsCountry:  cfg.NewsCountry,
			}
			if err := store.Save(prefs); err != nil {
				return err
			}
			fmt.Printf("Preferences saved to %s\n", store.Path())
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("data directories not writable: %w", err)
			}
			fmt.Println("Configuration OK")
			return nil
		},
	})

	return configCmd
}

func valueOrUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
