// Package platform defines the chat-platform operations the sorter relies
// on, decoupled from any concrete SDK.
package platform

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a channel lookup finds nothing.
var ErrNotFound = errors.New("channel not found")

// Kind classifies a channel by its platform type.
type Kind int

const (
	KindUnknown Kind = iota
	KindText
	KindCategory
	KindVoice
)

// Channel is the platform-neutral view of a guild channel.
type Channel struct {
	ID       string
	Name     string
	ParentID string
	Kind     Kind
}

// IsText reports whether the channel can hold messages this system acts on.
func (c Channel) IsText() bool {
	return c.Kind == KindText
}

// Client is the external collaborator contract. Implementations issue
// remote calls against the chat platform; all state lives there.
type Client interface {
	// GuildChannels lists every channel in the guild.
	GuildChannels(ctx context.Context, guildID string) ([]Channel, error)

	// Channel fetches a single channel by id. Returns ErrNotFound when
	// the platform has no such channel.
	Channel(ctx context.Context, channelID string) (Channel, error)

	// LastMessageTime returns the timestamp of the channel's most recent
	// message. ok is false when the channel has no message history.
	LastMessageTime(ctx context.Context, channelID string) (ts time.Time, ok bool, err error)

	// MoveChannel reparents a channel under the given category.
	MoveChannel(ctx context.Context, channelID, parentID string) error

	// RenameChannel sets a channel's display name.
	RenameChannel(ctx context.Context, channelID, name string) error
}
