// Package main is the entry point for memorymatch.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/samdwyer/memorymatch/internal/game"
	"github.com/samdwyer/memorymatch/internal/logging"
	"github.com/samdwyer/memorymatch/internal/telemetry"
)

func main() {
	// Load .env before building flag defaults so it can supply them
	envErr := godotenv.Load()

	if err := newRootCmd(envErr).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command; envErr is the result of loading .env.
func newRootCmd(envErr error) *cobra.Command {
	cfg := game.ConfigFromEnv()

	cmd := &cobra.Command{
		Use:   "memorymatch",
		Short: "Two-player memory matching game for the terminal",
		Long: `memorymatch deals face-down cards from a pair file. Players take turns
flipping two cards; a match scores a point and keeps the turn, a mismatch
must be flipped back before the other player goes.

Pair file format: one pair per line, "name1,name2". A line with a single
name pairs the name with itself.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, envErr)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.PairsFile, "pairs", "p", cfg.PairsFile, "Pair file, built-in pairs when empty (env: "+game.EnvPairs+")")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 picks one (env: "+game.EnvSeed+")")
	flags.StringVar(&cfg.PlayerNames[0], "player-one", cfg.PlayerNames[0], "First player's name (env: "+game.EnvPlayerOne+")")
	flags.StringVar(&cfg.PlayerNames[1], "player-two", cfg.PlayerNames[1], "Second player's name (env: "+game.EnvPlayerTwo+")")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Log file (env: "+game.EnvLogFile+")")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (env: "+game.EnvLogLevel+")")
	flags.BoolVar(&cfg.Telemetry, "telemetry", telemetry.Configured(), "Export traces over OTLP (default on when OTEL_EXPORTER_OTLP_ENDPOINT is set)")

	return cmd
}

func run(ctx context.Context, cfg game.Config, envErr error) error {
	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	if envErr != nil {
		// Not fatal - env vars might be set directly
		logger.Debug().Err(envErr).Msg(".env file not loaded")
	}

	g, err := game.New(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Str("pairs", cfg.PairsFile).Msg("failed to initialize game")
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	shutdown := setupTelemetry(ctx, cfg, g.SessionID(), logger)
	defer shutdown()

	if err := g.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("game error")
		return err
	}
	return nil
}

// setupTelemetry starts trace export when enabled. Failure is logged and
// the game runs without observability.
func setupTelemetry(ctx context.Context, cfg game.Config, sessionID string, logger zerolog.Logger) func() {
	if !cfg.Telemetry {
		return func() {}
	}

	shutdown, err := telemetry.Setup(ctx, sessionID)
	if err != nil {
		logger.Warn().Err(err).Msg("telemetry setup failed, continuing without traces")
		return func() {}
	}
	return func() {
		if err := shutdown(ctx); err != nil {
			logger.Warn().Err(err).Msg("error shutting down telemetry")
		}
	}
}
