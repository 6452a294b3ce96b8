package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/cleandesk/internal/config"
	"github.com/JaimeStill/cleandesk/internal/infrastructure"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cleandesk",
		Short: "Clean desk compliance review",
		Long: `cleandesk consolidates per-employee clean desk notes, classifies each
note as Pass or Fail with an LLM, and produces a report plus an
acknowledgment PDF for every failed desk.

Configuration is read from cleandesk.toml (or --config), an optional
cleandesk.<CLEANDESK_ENV>.toml overlay, command flags, and CLEANDESK_*
environment variables, in that order of precedence.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default cleandesk.toml if present)")
	rootCmd.PersistentFlags().String("variant", "", "Pipeline variant: ollama, gemini, or strict")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConsolidateCmd(),
		newRunCmd(),
		newReportCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cleandesk version %s\n", version)
		},
	}
}

// setup loads configuration with the command's overrides applied and
// builds the run infrastructure. Logs go to the command's error stream.
func setup(cmd *cobra.Command, overrides *config.Config) (*infrastructure.Infrastructure, error) {
	path, _ := cmd.Flags().GetString("config")
	variant, _ := cmd.Flags().GetString("variant")
	level, _ := cmd.Flags().GetString("log-level")

	overrides.Variant = variant
	overrides.LogLevel = level

	cfg, err := config.Load(path, overrides)
	if err != nil {
		return nil, err
	}

	return infrastructure.New(cfg, cmd.ErrOrStderr())
}
