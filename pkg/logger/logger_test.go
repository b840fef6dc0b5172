package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/nanameru/discord-fire/pkg/config"
)

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(config.LoggingConfig{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if _, err := New(config.LoggingConfig{Level: "loud"}); err == nil {
		t.Fatal("expected error for unsupported level")
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(config.LoggingConfig{Format: "json", Level: "debug"}, &buf)
	if err != nil {
		t.Fatalf("NewWithWriter error: %v", err)
	}

	log.Info("channel moved", "channel_id", "123")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "channel moved" {
		t.Fatalf("msg = %v, want %q", entry["msg"], "channel moved")
	}
	if entry["channel_id"] != "123" {
		t.Fatalf("channel_id = %v, want 123", entry["channel_id"])
	}
}

func TestTextOutputRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(config.LoggingConfig{Format: "text", Level: "warn"}, &buf)
	if err != nil {
		t.Fatalf("NewWithWriter error: %v", err)
	}

	log.Info("suppressed")
	log.Warn("emitted")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Fatalf("info line leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "emitted") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestParseLevelAliases(t *testing.T) {
	level, err := parseLevel("warning")
	if err != nil {
		t.Fatalf("parseLevel error: %v", err)
	}
	if level != slog.LevelWarn {
		t.Fatalf("level = %v, want warn", level)
	}

	level, err = parseLevel("")
	if err != nil {
		t.Fatalf("parseLevel error: %v", err)
	}
	if level != slog.LevelInfo {
		t.Fatalf("default level = %v, want info", level)
	}
}
