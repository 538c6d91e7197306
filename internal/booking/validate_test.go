package booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestValidateInterval(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  error
	}{
		{
			name:  "valid one hour slot",
			start: testNow.Add(time.Hour),
			end:   testNow.Add(2 * time.Hour),
			want:  nil,
		},
		{
			name:  "end equals start",
			start: testNow.Add(time.Hour),
			end:   testNow.Add(time.Hour),
			want:  ErrEndBeforeStart,
		},
		{
			name:  "end before start",
			start: testNow.Add(2 * time.Hour),
			end:   testNow.Add(time.Hour),
			want:  ErrEndBeforeStart,
		},
		{
			name:  "start in the past",
			start: testNow.Add(-time.Minute),
			end:   testNow.Add(time.Hour),
			want:  ErrStartTimePast,
		},
		{
			name:  "start exactly now is allowed",
			start: testNow,
			end:   testNow.Add(time.Hour),
			want:  nil,
		},
		{
			name:  "end beyond the horizon",
			start: testNow.Add(364 * 24 * time.Hour),
			end:   testNow.Add(MaxHorizon + time.Second),
			want:  ErrHorizonExceeded,
		},
		{
			name:  "end exactly at the horizon is allowed",
			start: testNow.Add(MaxHorizon - time.Hour),
			end:   testNow.Add(MaxHorizon),
			want:  nil,
		},
		{
			name:  "duration over seven days",
			start: testNow.Add(time.Hour),
			end:   testNow.Add(time.Hour + MaxDuration + time.Second),
			want:  ErrDurationExceeded,
		},
		{
			name:  "duration exactly seven days is allowed",
			start: testNow.Add(time.Hour),
			end:   testNow.Add(time.Hour + MaxDuration),
			want:  nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateInterval(tc.start, tc.end, testNow)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

// The order check matters: an interval that is both inverted and in the
// past must report the inverted interval, and a past start that also
// exceeds the horizon must report the past start.
func TestValidateIntervalCheckOrder(t *testing.T) {
	err := validateInterval(testNow.Add(-time.Hour), testNow.Add(-2*time.Hour), testNow)
	assert.ErrorIs(t, err, ErrEndBeforeStart)

	err = validateInterval(testNow.Add(-time.Hour), testNow.Add(MaxHorizon+time.Hour), testNow)
	assert.ErrorIs(t, err, ErrStartTimePast)

	// Beyond the horizon and over the duration cap: horizon wins.
	err = validateInterval(testNow.Add(MaxHorizon), testNow.Add(MaxHorizon+MaxDuration+time.Hour), testNow)
	assert.ErrorIs(t, err, ErrHorizonExceeded)
}

func TestSanitizeNotes(t *testing.T) {
	assert.Equal(t, "hello", sanitizeNotes("  hello  "))
	assert.Equal(t, "", sanitizeNotes("   "))

	long := strings.Repeat("a", MaxNotesLen+100)
	got := sanitizeNotes(long)
	assert.Len(t, []rune(got), MaxNotesLen)

	// Truncation counts runes, not bytes.
	multibyte := strings.Repeat("日", MaxNotesLen+1)
	got = sanitizeNotes(multibyte)
	assert.Len(t, []rune(got), MaxNotesLen)
}
