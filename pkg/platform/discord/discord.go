// Package discord implements platform.Client on top of the Discord REST
// API via discordgo.
package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/nanameru/discord-fire/pkg/platform"
)

// Client wraps a discordgo session. Only REST endpoints are used; the
// gateway websocket is never opened.
type Client struct {
	session *discordgo.Session
	log     *slog.Logger
}

// New authenticates with the given bot token and returns a Client.
func New(token string, log *slog.Logger) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New("bot token is required")
	}
	if log == nil {
		log = slog.Default()
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("initialize discord session: %w", err)
	}

	return &Client{
		session: session,
		log:     log.With("component", "platform.discord"),
	}, nil
}

// GuildChannels lists every channel in the guild.
func (c *Client) GuildChannels(ctx context.Context, guildID string) ([]platform.Channel, error) {
	raw, err := c.session.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("fetch guild channels: %w", err)
	}

	channels := make([]platform.Channel, 0, len(raw))
	for _, ch := range raw {
		channels = append(channels, fromDiscord(ch))
	}

	return channels, nil
}

// Channel fetches a single channel by id.
func (c *Client) Channel(ctx context.Context, channelID string) (platform.Channel, error) {
	ch, err := c.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		if isNotFound(err) {
			return platform.Channel{}, platform.ErrNotFound
		}
		return platform.Channel{}, fmt.Errorf("fetch channel %s: %w", channelID, err)
	}

	return fromDiscord(ch), nil
}

// LastMessageTime returns the timestamp of the channel's most recent
// message. Channels with no history report ok=false.
func (c *Client) LastMessageTime(ctx context.Context, channelID string) (time.Time, bool, error) {
	messages, err := c.session.ChannelMessages(channelID, 1, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		return time.Time{}, false, fmt.Errorf("fetch latest message of %s: %w", channelID, err)
	}
	if len(messages) == 0 {
		return time.Time{}, false, nil
	}

	return messages[0].Timestamp, true, nil
}

// MoveChannel reparents a channel under the given category.
func (c *Client) MoveChannel(ctx context.Context, channelID, parentID string) error {
	_, err := c.session.ChannelEdit(channelID, &discordgo.ChannelEdit{ParentID: parentID}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("move channel %s: %w", channelID, err)
	}

	return nil
}

// RenameChannel sets a channel's display name.
func (c *Client) RenameChannel(ctx context.Context, channelID, name string) error {
	_, err := c.session.ChannelEdit(channelID, &discordgo.ChannelEdit{Name: name}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("rename channel %s: %w", channelID, err)
	}

	return nil
}

// fromDiscord maps a discordgo channel onto the platform-neutral record.
func fromDiscord(ch *discordgo.Channel) platform.Channel {
	return platform.Channel{
		ID:       ch.ID,
		Name:     ch.Name,
		ParentID: ch.ParentID,
		Kind:     kindOf(ch.Type),
	}
}

func kindOf(t discordgo.ChannelType) platform.Kind {
	switch t {
	case discordgo.ChannelTypeGuildText:
		return platform.KindText
	case discordgo.ChannelTypeGuildCategory:
		return platform.KindCategory
	case discordgo.ChannelTypeGuildVoice:
		return platform.KindVoice
	default:
		return platform.KindUnknown
	}
}

// isNotFound reports whether err is a Discord 404 / unknown-channel error.
func isNotFound(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}
	if restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownChannel {
		return true
	}

	return restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}
