package marker

import "testing"

func TestNewCodecRequiresPrefix(t *testing.T) {
	if _, err := NewCodec(""); err == nil {
		t.Fatal("expected error for empty prefix")
	}
}

func TestHas(t *testing.T) {
	codec, err := NewCodec(DefaultPrefix)
	if err != nil {
		t.Fatalf("NewCodec error: %v", err)
	}

	if !codec.Has("🔥-general") {
		t.Fatal("expected marker on 🔥-general")
	}
	if codec.Has("general") {
		t.Fatal("expected no marker on general")
	}
	if codec.Has("general-🔥-chat") {
		t.Fatal("expected interior marker to be ignored")
	}
}

func TestAddRemove(t *testing.T) {
	codec, err := NewCodec(DefaultPrefix)
	if err != nil {
		t.Fatalf("NewCodec error: %v", err)
	}

	cases := []struct {
		name        string
		wantMarked  string
		wantStripped string
	}{
		{"general", "🔥-general", "general"},
		{"🔥-general", "🔥-general", "general"},
		{"", "🔥-", ""},
		{"chat-🔥-inner", "🔥-chat-🔥-inner", "chat-🔥-inner"},
	}

	for _, tc := range cases {
		if got := codec.Add(tc.name); got != tc.wantMarked {
			t.Fatalf("Add(%q) = %q, want %q", tc.name, got, tc.wantMarked)
		}
		if got := codec.Remove(tc.name); got != tc.wantStripped {
			t.Fatalf("Remove(%q) = %q, want %q", tc.name, got, tc.wantStripped)
		}
	}
}

func TestAddRemoveIdempotent(t *testing.T) {
	codec, err := NewCodec(DefaultPrefix)
	if err != nil {
		t.Fatalf("NewCodec error: %v", err)
	}

	names := []string{"general", "🔥-general", "", "日本語", "a-b-c"}
	for _, name := range names {
		if codec.Add(codec.Add(name)) != codec.Add(name) {
			t.Fatalf("Add not idempotent for %q", name)
		}
		if codec.Remove(codec.Remove(name)) != codec.Remove(name) {
			t.Fatalf("Remove not idempotent for %q", name)
		}
		if codec.Remove(codec.Add(name)) != codec.Remove(name) {
			t.Fatalf("Remove(Add(%q)) mismatch", name)
		}
	}
}
