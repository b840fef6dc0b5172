// Package config loads the runtime configuration from the process
// environment. A .env file in the working directory is honored for local
// runs; real deployments inject the variables directly.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/nanameru/discord-fire/pkg/marker"
	"github.com/nanameru/discord-fire/pkg/window"
)

const (
	envBotToken           = "DISCORD_BOT_TOKEN"
	envGuildID            = "DISCORD_GUILD_ID"
	envPersonalCategoryID = "PERSONAL_CATEGORY_ID"
	envTrendingCategoryID = "TRENDING_CATEGORY_ID"
	envTargetChannelID    = "TARGET_CHANNEL_ID"
	envDryRun             = "DRY_RUN"
	envTimezone           = "SORT_TIMEZONE"
	envBoundaryHour       = "SORT_BOUNDARY_HOUR"
	envMarker             = "SORT_MARKER"
	envLogFormat          = "DISCORD_FIRE_LOG_FORMAT"
	envLogLevel           = "DISCORD_FIRE_LOG_LEVEL"
)

// Config is the root runtime configuration.
type Config struct {
	BotToken           string
	GuildID            string
	PersonalCategoryID string
	TrendingCategoryID string

	// TargetChannelID is only consulted by the toggle command.
	TargetChannelID string

	DryRun bool

	Timezone     string
	BoundaryHour int
	Marker       string

	Logging LoggingConfig
}

// LoggingConfig controls structured log output format and verbosity.
type LoggingConfig struct {
	Format string
	Level  string
}

// Load reads the environment (plus an optional .env file) and validates
// that every required value is present. All missing variables are reported
// in a single error so a broken deployment is fixed in one pass.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:           strings.TrimSpace(os.Getenv(envBotToken)),
		GuildID:            strings.TrimSpace(os.Getenv(envGuildID)),
		PersonalCategoryID: strings.TrimSpace(os.Getenv(envPersonalCategoryID)),
		TrendingCategoryID: strings.TrimSpace(os.Getenv(envTrendingCategoryID)),
		TargetChannelID:    strings.TrimSpace(os.Getenv(envTargetChannelID)),
		DryRun:             strings.EqualFold(strings.TrimSpace(os.Getenv(envDryRun)), "true"),
		Timezone:           strings.TrimSpace(os.Getenv(envTimezone)),
		Marker:             os.Getenv(envMarker),
		BoundaryHour:       window.DefaultBoundaryHour,
		Logging: LoggingConfig{
			Format: strings.TrimSpace(os.Getenv(envLogFormat)),
			Level:  strings.TrimSpace(os.Getenv(envLogLevel)),
		},
	}

	if cfg.Timezone == "" {
		cfg.Timezone = window.DefaultTimezone
	}
	if cfg.Marker == "" {
		cfg.Marker = marker.DefaultPrefix
	}

	if raw := strings.TrimSpace(os.Getenv(envBoundaryHour)); raw != "" {
		hour, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", envBoundaryHour, err)
		}
		cfg.BoundaryHour = hour
	}

	if missing := cfg.missingRequired(); len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// RequireTargetChannel validates the toggle-only channel identifier.
func (c *Config) RequireTargetChannel() error {
	if c.TargetChannelID == "" {
		return fmt.Errorf("missing required environment variable: %s", envTargetChannelID)
	}

	return nil
}

func (c *Config) missingRequired() []string {
	var missing []string
	if c.BotToken == "" {
		missing = append(missing, envBotToken)
	}
	if c.GuildID == "" {
		missing = append(missing, envGuildID)
	}
	if c.PersonalCategoryID == "" {
		missing = append(missing, envPersonalCategoryID)
	}
	if c.TrendingCategoryID == "" {
		missing = append(missing, envTrendingCategoryID)
	}

	return missing
}
