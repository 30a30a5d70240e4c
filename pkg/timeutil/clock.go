// Package timeutil converts between "HH:MM" clock strings and
// minute-of-day integers on a single 24-hour local clock.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// MinutesPerDay is the length of the planning clock.
	MinutesPerDay = 24 * 60
	// halfDay is the wrap point for Delta.
	halfDay = MinutesPerDay / 2
)

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseMinutes parses "HH:MM" into a minute-of-day in [0,1440). Anything that
// is not a valid clock string, hour or minute out of range included, parses
// as 0; callers treat that as a silent fallback, not an error.
func ParseMinutes(s string) int {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	if h > 23 || mm > 59 {
		return 0
	}
	return h*60 + mm
}

// FormatMinutes renders a minute count as zero-padded "HH:MM". Values outside
// [0,1440), including negatives, are wrapped onto the day first.
func FormatMinutes(minutes int) string {
	minutes = mod(minutes)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Shift moves a clock string by delta minutes, wrapping past midnight.
func Shift(t string, delta int) string {
	return FormatMinutes(ParseMinutes(t) + delta)
}

// Delta returns newT minus oldT in minutes, wrapped into [-720, 720].
// A raw difference beyond twelve hours is assumed to mean the shorter
// direction around the clock; exactly twelve hours stays as given.
func Delta(oldT, newT string) int {
	d := ParseMinutes(newT) - ParseMinutes(oldT)
	if d > halfDay {
		d -= MinutesPerDay
	} else if d < -halfDay {
		d += MinutesPerDay
	}
	return d
}

// Valid reports whether s normalizes to a clock string.
func Valid(s string) bool {
	_, ok := Normalize(s)
	return ok
}

// Normalize canonicalizes free-form user input into "HH:MM". A bare one or
// two digit hour becomes "HH:00"; otherwise the input must be H:MM or HH:MM
// with an hour in [0,23] and a two-digit minute in [00,59]. The second return
// is false for anything else so callers can drop the edit without surfacing
// an error.
func Normalize(s string) (string, bool) {
	s = strings.TrimSpace(s)

	if h, err := strconv.Atoi(s); err == nil && len(s) <= 2 && h >= 0 && h <= 23 {
		return fmt.Sprintf("%02d:00", h), true
	}

	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	if h > 23 || mm > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", h, mm), true
}

// mod wraps any integer onto [0,1440).
func mod(m int) int {
	return ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
}
