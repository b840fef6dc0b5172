// Package sorter holds the channel classification passes: the nightly
// reset/evaluate run and the manual single-channel toggle.
package sorter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nanameru/discord-fire/pkg/config"
	"github.com/nanameru/discord-fire/pkg/marker"
	"github.com/nanameru/discord-fire/pkg/platform"
	"github.com/nanameru/discord-fire/pkg/window"
)

// Sorter reclassifies guild channels between the personal and trending
// categories. It holds no channel state of its own; the platform is the
// sole source of truth and every pass re-reads it.
type Sorter struct {
	cfg    *config.Config
	client platform.Client
	codec  *marker.Codec
	calc   *window.Calculator
	log    *slog.Logger

	// now is the clock; tests substitute a fixed instant.
	now func() time.Time
}

// New wires a Sorter from configuration and a platform client.
func New(cfg *config.Config, client platform.Client, log *slog.Logger) (*Sorter, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if client == nil {
		return nil, errors.New("platform client is required")
	}
	if log == nil {
		log = slog.Default()
	}

	codec, err := marker.NewCodec(cfg.Marker)
	if err != nil {
		return nil, err
	}

	calc, err := window.NewCalculator(cfg.Timezone, cfg.BoundaryHour)
	if err != nil {
		return nil, err
	}

	return &Sorter{
		cfg:    cfg,
		client: client,
		codec:  codec,
		calc:   calc,
		log:    log.With("component", "sorter"),
		now:    time.Now,
	}, nil
}

// Run executes the full reclassification: reset everything out of
// trending, then re-read the guild and promote channels with recent
// activity. The re-read between the passes is deliberate; evaluation must
// see the reset moves as the platform recorded them.
func (s *Sorter) Run(ctx context.Context) error {
	win := s.calc.Compute(s.now())
	s.log.Info("activity window computed", "start", win.Start, "end", win.End, "dry_run", s.cfg.DryRun)

	if err := s.reset(ctx); err != nil {
		return err
	}

	return s.evaluate(ctx, win)
}

// reset moves every trending channel back to personal and strips the
// marker from its name.
func (s *Sorter) reset(ctx context.Context) error {
	channels, err := s.client.GuildChannels(ctx, s.cfg.GuildID)
	if err != nil {
		return err
	}

	var examined, moved, renamed int
	for _, ch := range channels {
		if !ch.IsText() || ch.ParentID != s.cfg.TrendingCategoryID {
			continue
		}
		examined++

		newName := s.codec.Remove(ch.Name)
		s.log.Info("[RESET] returning channel to personal",
			"channel_id", ch.ID,
			"old_name", ch.Name, "new_name", newName,
			"old_parent", ch.ParentID, "new_parent", s.cfg.PersonalCategoryID)

		didMove, didRename, err := s.apply(ctx, ch, s.cfg.PersonalCategoryID, newName)
		if err != nil {
			return err
		}
		if didMove {
			moved++
		}
		if didRename {
			renamed++
		}
	}

	s.log.Info("reset pass finished", "examined", examined, "moved", moved, "renamed", renamed)
	return nil
}

// evaluate promotes personal channels with a message inside the window.
func (s *Sorter) evaluate(ctx context.Context, win window.Window) error {
	channels, err := s.client.GuildChannels(ctx, s.cfg.GuildID)
	if err != nil {
		return err
	}

	var examined, moved, renamed int
	for _, ch := range channels {
		if !ch.IsText() || ch.ParentID != s.cfg.PersonalCategoryID {
			continue
		}
		examined++

		ts, ok, err := s.client.LastMessageTime(ctx, ch.ID)
		if err != nil {
			// Transient lookup failure: treat as inactive and keep going.
			s.log.Warn("latest message lookup failed, treating channel as inactive",
				"channel_id", ch.ID, "name", ch.Name, "error", err)
			continue
		}
		if !ok || !win.Contains(ts) {
			continue
		}

		newName := s.codec.Add(ch.Name)
		s.log.Info("[TRENDING] promoting channel",
			"channel_id", ch.ID,
			"old_name", ch.Name, "new_name", newName,
			"old_parent", ch.ParentID, "new_parent", s.cfg.TrendingCategoryID,
			"last_message_at", ts)

		didMove, didRename, err := s.apply(ctx, ch, s.cfg.TrendingCategoryID, newName)
		if err != nil {
			return err
		}
		if didMove {
			moved++
		}
		if didRename {
			renamed++
		}
	}

	s.log.Info("evaluation pass finished", "examined", examined, "moved", moved, "renamed", renamed)
	return nil
}

// Toggle flips one channel between the two categories without consulting
// activity. Channels parented outside both categories are left alone.
func (s *Sorter) Toggle(ctx context.Context, channelID string) error {
	ch, err := s.client.Channel(ctx, channelID)
	if err != nil {
		return err
	}
	if !ch.IsText() {
		return fmt.Errorf("channel %s (%s) is not a text channel", ch.ID, ch.Name)
	}

	var targetParent, newName, direction string
	switch ch.ParentID {
	case s.cfg.PersonalCategoryID:
		targetParent = s.cfg.TrendingCategoryID
		newName = s.codec.Add(ch.Name)
		direction = "personal -> trending"
	case s.cfg.TrendingCategoryID:
		targetParent = s.cfg.PersonalCategoryID
		newName = s.codec.Remove(ch.Name)
		direction = "trending -> personal"
	default:
		s.log.Info("channel is parented outside the managed categories, nothing to do",
			"channel_id", ch.ID, "name", ch.Name, "parent", ch.ParentID)
		return nil
	}

	s.log.Info("[TOGGLE "+direction+"]",
		"channel_id", ch.ID,
		"old_name", ch.Name, "new_name", newName,
		"old_parent", ch.ParentID, "new_parent", targetParent)

	_, _, err = s.apply(ctx, ch, targetParent, newName)
	return err
}

// apply issues the move and rename calls needed to bring ch to the target
// parent and name, skipping whichever is already in place. Under dry-run
// nothing is issued; the caller has already logged the intended action.
func (s *Sorter) apply(ctx context.Context, ch platform.Channel, parentID, name string) (moved, renamed bool, err error) {
	moved = ch.ParentID != parentID
	renamed = ch.Name != name

	if s.cfg.DryRun {
		return moved, renamed, nil
	}

	if moved {
		if err := s.client.MoveChannel(ctx, ch.ID, parentID); err != nil {
			return false, false, err
		}
	}
	if renamed {
		if err := s.client.RenameChannel(ctx, ch.ID, name); err != nil {
			return moved, false, err
		}
	}

	return moved, renamed, nil
}
