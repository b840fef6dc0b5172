// Package marker implements the name prefix used to flag trending channels.
package marker

import (
	"errors"
	"strings"
)

// DefaultPrefix is the marker applied to trending channel names.
const DefaultPrefix = "🔥-"

// Codec adds and strips a fixed marker prefix on channel display names.
//
// The prefix is carried as explicit configuration so tests can run with
// arbitrary markers. Only a leading occurrence is ever considered.
type Codec struct {
	prefix string
}

// NewCodec constructs a Codec for the given marker prefix.
func NewCodec(prefix string) (*Codec, error) {
	if prefix == "" {
		return nil, errors.New("marker prefix is required")
	}

	return &Codec{prefix: prefix}, nil
}

// Prefix returns the configured marker literal.
func (c *Codec) Prefix() string {
	return c.prefix
}

// Has reports whether name begins with the marker.
func (c *Codec) Has(name string) bool {
	return strings.HasPrefix(name, c.prefix)
}

// Add returns name with the marker prepended. Names already carrying the
// marker are returned unchanged.
func (c *Codec) Add(name string) string {
	if c.Has(name) {
		return name
	}

	return c.prefix + name
}

// Remove returns name with a leading marker stripped. Names without the
// marker are returned unchanged.
func (c *Codec) Remove(name string) string {
	return strings.TrimPrefix(name, c.prefix)
}
