package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kirillkom/brandboost/internal/bootstrap"
	"github.com/kirillkom/brandboost/internal/config"
	"github.com/kirillkom/brandboost/internal/core/domain"
	"github.com/kirillkom/brandboost/internal/observability/logging"
)

const serviceName = "brandboost-cli"

var version = "0.1.0"

var (
	verbose     bool
	catalogPath string
	provider    string

	app *bootstrap.App
)

var rootCmd = &cobra.Command{
	Use:   "brandboost",
	Short: "Generate marketing copy for catalog products",
	Long: `BrandBoost generates product descriptions, social posts and email copy
for products in a catalog file, in one of four tones and in English or French.

When the language model is unavailable the pre-written copy for the same
selection is returned instead.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupApp,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "brandboost %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog file (.csv, .xlsx, .yaml); overrides CATALOG_PATH")
	rootCmd.PersistentFlags().StringVar(&provider, "provider", "", "LLM provider (huggingface, openai, gemini, ollama, offline); overrides LLM_PROVIDER")

	rootCmd.AddCommand(productsCmd, generateCmd, versionCmd)
}

func setupApp(cmd *cobra.Command, args []string) error {
	if cmd == versionCmd || app != nil {
		return nil
	}

	_ = godotenv.Load()
	cfg := config.Load()
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}
	if provider != "" {
		cfg.LLMProvider = provider
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	slog.SetDefault(logging.NewTextLogger(os.Stderr, level))

	var err error
	app, err = bootstrap.New(cmd.Context(), cfg, serviceName)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	return nil
}

// exitCode is 2 for bad input and 1 for everything else.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case domain.IsKind(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrMissingField),
		domain.IsKind(err, domain.ErrProductNotFound):
		return 2
	default:
		return 1
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(exitCode(err))
	}
}
