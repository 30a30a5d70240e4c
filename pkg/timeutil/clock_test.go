package timeutil

import (
	"testing"
)

func TestParseFormatRoundTrip(t *testing.T) {
	for _, tt := range []string{"00:00", "07:30", "12:00", "23:59"} {
		if got := FormatMinutes(ParseMinutes(tt)); got != tt {
			t.Fatalf("round trip %s: got %s", tt, got)
		}
	}
}

func TestParseMinutesMalformed(t *testing.T) {
	for _, tt := range []string{"", "late", "7", "07:5", "0730", "24:00", "25:00", "12:75"} {
		if got := ParseMinutes(tt); got != 0 {
			t.Fatalf("ParseMinutes(%q) = %d, expected silent 0", tt, got)
		}
	}
}

func TestFormatMinutesWraps(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{1440, "00:00"},
		{1500, "01:00"},
		{-60, "23:00"},
		{-1, "23:59"},
		{2*1440 + 90, "01:30"},
	}
	for _, tt := range tests {
		if got := FormatMinutes(tt.in); got != tt.want {
			t.Fatalf("FormatMinutes(%d) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseOfFormatNormalizes(t *testing.T) {
	for _, m := range []int{-90, -1, 0, 700, 1439, 1440, 3000} {
		want := ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
		if got := ParseMinutes(FormatMinutes(m)); got != want {
			t.Fatalf("ParseMinutes(FormatMinutes(%d)) = %d, want %d", m, got, want)
		}
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		in    string
		delta int
		want  string
	}{
		{"23:00", 120, "01:00"},
		{"07:00", -480, "23:00"},
		{"12:00", 0, "12:00"},
		{"00:30", -60, "23:30"},
	}
	for _, tt := range tests {
		if got := Shift(tt.in, tt.delta); got != tt.want {
			t.Fatalf("Shift(%s, %d) = %s, want %s", tt.in, tt.delta, got, tt.want)
		}
	}
}

func TestDeltaWrapsShortestWay(t *testing.T) {
	tests := []struct {
		oldT, newT string
		want       int
	}{
		{"07:00", "08:00", 60},
		{"08:00", "07:00", -60},
		{"23:00", "01:00", 120},
		{"01:00", "23:00", -120},
		{"07:00", "07:00", 0},
		// exactly twelve hours stays as given, ambiguous by design
		{"00:00", "12:00", 720},
	}
	for _, tt := range tests {
		if got := Delta(tt.oldT, tt.newT); got != tt.want {
			t.Fatalf("Delta(%s, %s) = %d, want %d", tt.oldT, tt.newT, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"7", "07:00", true},
		{"23", "23:00", true},
		{"7:30", "07:30", true},
		{"07:30", "07:30", true},
		{" 9 ", "09:00", true},
		{"7:5", "", false},
		{"24:00", "", false},
		{"12:60", "", false},
		{"123", "", false},
		{"", "", false},
		{"noon", "", false},
	}
	for _, tt := range tests {
		got, ok := Normalize(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("Normalize(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
		if Valid(tt.in) != tt.ok {
			t.Fatalf("Valid(%q) disagrees with Normalize", tt.in)
		}
	}
}
