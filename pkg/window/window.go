// Package window computes the rolling activity window used to classify
// channels as trending.
package window

import (
	"fmt"
	"time"
)

const (
	// DefaultTimezone anchors the daily boundary. Asia/Tokyo does not
	// observe DST, so the window is a fixed 24 hours in practice.
	DefaultTimezone = "Asia/Tokyo"

	// DefaultBoundaryHour is the local hour at which one activity day
	// rolls over into the next.
	DefaultBoundaryHour = 4
)

// Window is a half-open instant interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window. The lower bound is
// inclusive, the upper bound exclusive.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Calculator derives the most recent elapsed activity day for a given
// instant, bounded by a fixed local boundary hour.
type Calculator struct {
	loc  *time.Location
	hour int
}

// NewCalculator loads the timezone and validates the boundary hour.
func NewCalculator(timezone string, boundaryHour int) (*Calculator, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}
	if boundaryHour < 0 || boundaryHour > 23 {
		return nil, fmt.Errorf("boundary hour %d out of range", boundaryHour)
	}

	return &Calculator{loc: loc, hour: boundaryHour}, nil
}

// Compute returns the window ending at the most recently elapsed boundary
// hour at or before now. Exactly at the boundary (minute zero) the window
// ends at that instant. The interval spans one local wall-clock day, so a
// DST transition inside it shortens or lengthens the absolute span.
func (c *Calculator) Compute(now time.Time) Window {
	local := now.In(c.loc)

	end := time.Date(local.Year(), local.Month(), local.Day(), c.hour, 0, 0, 0, c.loc)
	if local.Before(end) {
		end = end.AddDate(0, 0, -1)
	}
	start := end.AddDate(0, 0, -1)

	return Window{Start: start, End: end}
}
