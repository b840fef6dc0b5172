package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nanameru/discord-fire/pkg/config"
	"github.com/nanameru/discord-fire/pkg/logger"
	"github.com/nanameru/discord-fire/pkg/platform/discord"
	"github.com/nanameru/discord-fire/pkg/sorter"
)

// Version information, injected at build time via ldflags.
var (
	Version   = "dev"
	Build     = "unknown"
	BuildTime = "unknown"
)

var dryRunFlag bool

var rootCmd = &cobra.Command{
	Use:   "discord-fire",
	Short: "Sort Discord channels between personal and trending categories",
	Long: `discord-fire reclassifies a guild's text channels between a "personal"
and a "trending" category based on the previous day's message activity,
prefixing trending channel names with a fire marker.

It is meant to run from an external scheduler (cron, systemd timer); each
invocation performs one full pass and exits.`,
	Version:       fmt.Sprintf("%s (build %s, %s)", Version, Build, BuildTime),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&dryRunFlag, "dry-run", false, "log intended actions without applying them")
}

// setup loads configuration, installs the logger, and wires the sorter
// against the live Discord client. Shared by the sort and toggle commands.
func setup(cmd *cobra.Command) (*sorter.Sorter, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = dryRunFlag
	}

	appLogger, err := logger.New(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(appLogger)
	log := slog.Default()

	client, err := discord.New(cfg.BotToken, log)
	if err != nil {
		return nil, nil, err
	}

	s, err := sorter.New(cfg, client, log)
	if err != nil {
		return nil, nil, err
	}

	return s, cfg, nil
}
