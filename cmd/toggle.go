package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle [channel-id]",
	Short: "Flip one channel between the two categories",
	Long: `Moves a single text channel to the opposite managed category without
consulting activity. The channel comes from the positional argument or,
when omitted, from TARGET_CHANNEL_ID.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cfg, err := setup(cmd)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			cfg.TargetChannelID = strings.TrimSpace(args[0])
		}
		if err := cfg.RequireTargetChannel(); err != nil {
			return err
		}

		runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log := slog.Default().With("component", "cmd.toggle")
		log.Info("toggling channel", "channel_id", cfg.TargetChannelID, "dry_run", cfg.DryRun)

		if err := s.Toggle(runCtx, cfg.TargetChannelID); err != nil {
			log.Error("toggle failed", "channel_id", cfg.TargetChannelID, "error", err)
			return err
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}
