package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/louisbranch/playtrack/internal/id"
	"github.com/louisbranch/playtrack/internal/platform/config"
	"github.com/louisbranch/playtrack/internal/platform/otel"
	"github.com/louisbranch/playtrack/internal/script"
	"github.com/louisbranch/playtrack/report"
	"github.com/louisbranch/playtrack/track"
)

func newReplayCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay a recorded session script and save its telemetry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			log, err := newLogger()
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer log.Sync()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			shutdown, err := otel.Setup(ctx, "playtrack")
			if err != nil {
				return fmt.Errorf("setup tracing: %w", err)
			}
			defer shutdown(ctx)

			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			if err := fillSession(&s.Session, cfg); err != nil {
				return err
			}

			tracker := track.New(track.WithLogger(log))
			if err := script.Replay(tracker, s); err != nil {
				return err
			}

			log.Info("script replayed",
				zap.String("session_id", s.Session.SessionID),
				zap.String("game", s.Session.Game),
				zap.Int("events", len(s.Events)),
			)

			if dryRun {
				payload, err := tracker.Payload("")
				if err != nil {
					return err
				}
				return printJSON(cmd, payload)
			}

			client := report.New(cfg.BaseURL,
				report.WithTokenSource(report.StaticToken(cfg.CSRFToken)),
				report.WithLogger(log),
			)
			resp, err := client.Save(ctx, tracker, "")
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the payload instead of saving it")
	return cmd
}

// fillSession backfills script session fields from CLI configuration,
// generating a session id when neither source supplies one.
func fillSession(s *script.Session, cfg config.Config) error {
	if s.UserID == "" {
		s.UserID = cfg.UserID
	}
	if s.SessionID == "" {
		s.SessionID = cfg.SessionID
	}
	if s.SessionID == "" {
		generated, err := id.NewID()
		if err != nil {
			return fmt.Errorf("generate session id: %w", err)
		}
		s.SessionID = generated
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
