package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Run the full reset and evaluation passes",
	Long: `Moves every channel out of the trending category back to personal,
re-reads the guild, and promotes channels that received a message during
the most recent activity day.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = args

		s, cfg, err := setup(cmd)
		if err != nil {
			return err
		}

		runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log := slog.Default().With("component", "cmd.sort")
		log.Info("starting sort run", "guild_id", cfg.GuildID, "dry_run", cfg.DryRun)

		if err := s.Run(runCtx); err != nil {
			if errors.Is(err, context.Canceled) {
				log.Warn("sort run interrupted")
				return err
			}
			log.Error("sort run failed", "error", err)
			return err
		}

		log.Info("sort run finished")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sortCmd)
}
