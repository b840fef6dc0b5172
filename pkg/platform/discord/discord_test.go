package discord

import (
	"errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/nanameru/discord-fire/pkg/platform"
)

func TestNewRequiresToken(t *testing.T) {
	if _, err := New("   ", nil); err == nil {
		t.Fatal("expected error for blank token")
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		in   discordgo.ChannelType
		want platform.Kind
	}{
		{discordgo.ChannelTypeGuildText, platform.KindText},
		{discordgo.ChannelTypeGuildCategory, platform.KindCategory},
		{discordgo.ChannelTypeGuildVoice, platform.KindVoice},
		{discordgo.ChannelTypeGuildNews, platform.KindUnknown},
	}

	for _, tc := range cases {
		if got := kindOf(tc.in); got != tc.want {
			t.Fatalf("kindOf(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFromDiscord(t *testing.T) {
	ch := fromDiscord(&discordgo.Channel{
		ID:       "123",
		Name:     "general",
		ParentID: "456",
		Type:     discordgo.ChannelTypeGuildText,
	})

	if ch.ID != "123" || ch.Name != "general" || ch.ParentID != "456" {
		t.Fatalf("fromDiscord = %+v", ch)
	}
	if !ch.IsText() {
		t.Fatal("expected text channel")
	}
}

func TestIsNotFound(t *testing.T) {
	if isNotFound(errors.New("plain")) {
		t.Fatal("plain error must not be a not-found")
	}

	unknownChannel := &discordgo.RESTError{
		Message: &discordgo.APIErrorMessage{Code: discordgo.ErrCodeUnknownChannel},
	}
	if !isNotFound(unknownChannel) {
		t.Fatal("unknown-channel code must be a not-found")
	}

	plain404 := &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusNotFound},
	}
	if !isNotFound(plain404) {
		t.Fatal("HTTP 404 must be a not-found")
	}

	serverErr := &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusInternalServerError},
	}
	if isNotFound(serverErr) {
		t.Fatal("HTTP 500 must not be a not-found")
	}
}
