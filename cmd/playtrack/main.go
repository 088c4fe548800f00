// Package main provides the playtrack CLI, a small tool for replaying
// recorded mini-game session scripts against a platform instance and
// submitting the resulting telemetry payload.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/louisbranch/playtrack/internal/platform/config"
)

var verbose bool

func main() {
	// A local .env is a convenience for development setups; absence is
	// not an error.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		config.Exitf("Error: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "playtrack",
		Short: "Client-side telemetry tooling for the platform's mini-games",
		Long: `playtrack replays recorded mini-game session scripts through the
telemetry tracker and submits the accumulated payload to the platform's
save endpoint, exactly as the embedding pages do.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newReplayCmd())
	root.AddCommand(newGenIDCmd())
	return root
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
