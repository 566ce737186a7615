package credential

import (
	"errors"
	"time"
)

// Window is the temporal validity range of a credential: the reservation
// slot widened by a grace period on both sides.
type Window struct {
	from  time.Time
	until time.Time
}

func NewWindow(start, end time.Time, grace time.Duration) (Window, error) {
	if end.Before(start) || end.Equal(start) {
		return Window{}, errors.New("reservation end must be after start")
	}
	if grace < 0 {
		grace = 0
	}
	return Window{
		from:  start.Add(-grace),
		until: end.Add(grace),
	}, nil
}

func ReconstructWindow(from, until time.Time) Window {
	return Window{from: from, until: until}
}

func (w Window) From() time.Time {
	return w.from
}

func (w Window) Until() time.Time {
	return w.until
}

// TooEarly reports whether now is strictly before the window opens.
func (w Window) TooEarly(now time.Time) bool {
	return now.Before(w.from)
}

// Lapsed reports whether now is strictly after the window closes.
func (w Window) Lapsed(now time.Time) bool {
	return now.After(w.until)
}

// Contains is true from validFrom (inclusive) to validUntil (inclusive).
func (w Window) Contains(now time.Time) bool {
	return !w.TooEarly(now) && !w.Lapsed(now)
}
