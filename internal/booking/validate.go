package booking

import (
	"strings"
	"time"
)

const (
	// MaxDuration caps a single booking at 7 days of elapsed time.
	MaxDuration = 168 * time.Hour
	// MaxHorizon is how far past "now" a booking may end.
	MaxHorizon = 365 * 24 * time.Hour
	// MaxNotesLen bounds the free-text notes field.
	MaxNotesLen = 500
)

// validateInterval checks a proposed [start, end) interval against the
// booking policy. Checks run in a fixed order and the first failure wins:
//
//  1. end must be strictly after start
//  2. start must not be in the past
//  3. end must not be more than 365 days after now
//  4. the duration must not exceed 168 hours
//
// now is captured once by the caller so repeated checks within one request
// cannot race the wall clock. The duration bound is elapsed time, not
// calendar days: an interval over by seconds still fails.
func validateInterval(start, end, now time.Time) error {
	if !end.After(start) {
		return ErrEndBeforeStart
	}
	if start.Before(now) {
		return ErrStartTimePast
	}
	if end.After(now.Add(MaxHorizon)) {
		return ErrHorizonExceeded
	}
	if end.Sub(start) > MaxDuration {
		return ErrDurationExceeded
	}
	return nil
}

// sanitizeNotes trims surrounding whitespace and silently truncates to
// MaxNotesLen runes. Notes never fail validation; empty is fine.
func sanitizeNotes(notes string) string {
	notes = strings.TrimSpace(notes)
	runes := []rune(notes)
	if len(runes) > MaxNotesLen {
		return string(runes[:MaxNotesLen])
	}
	return notes
}
