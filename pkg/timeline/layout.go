// Package timeline turns an unordered mark set into a vertically ordered,
// midnight-aware pixel layout. Everything here is a pure function of the
// marks and the supplied wall-clock time.
package timeline

import (
	"sort"
	"time"

	"github.com/Maksimka101/daily-routine-calendar/pkg/mark"
	"github.com/Maksimka101/daily-routine-calendar/pkg/timeutil"
)

const (
	// PixelsPerHour is the fixed vertical scale.
	PixelsPerHour = 60
	// TopMargin is painted above the first minute of the range.
	TopMargin = 50
	// BottomMargin is painted below the last minute of the range.
	BottomMargin = 50
	// RangePadding widens the visible range on both ends, in minutes.
	RangePadding = 30
	// dayCutoff is the ordering boundary: a middle mark earlier than 06:00
	// counts as belonging to the previous evening, not the next morning.
	dayCutoff = 6 * 60
)

// PlacedMark is a mark with its resolved vertical position.
type PlacedMark struct {
	mark.Mark
	Y int
}

// Layout is the computed render geometry for one mark set.
type Layout struct {
	// Start and End bound the visible range in minutes of day, already
	// padded. End < Start never holds; Wraps marks a range that crosses
	// midnight instead.
	Start int
	End   int
	Wraps bool
	// TotalMinutes is the span of the visible range.
	TotalMinutes int
	// Height is the full pixel height including both margins.
	Height int
	Marks  []PlacedMark
	// NowY is the current-time indicator position, nil when the current
	// time falls outside the visible range.
	NowY *int
}

// Sorted orders marks for rendering: morning template marks first by
// time-of-day, the sleep mark (if present) last, and everything else in
// between chronologically — with times before the day cutoff treated as
// late, so an after-midnight mark follows the evening rather than leading
// the morning.
func Sorted(marks []mark.Mark) []mark.Mark {
	var morning, middle []mark.Mark
	var sleep *mark.Mark
	sleepID := mark.SleepTemplateID()

	for _, m := range marks {
		switch {
		case m.ID == sleepID:
			cp := m
			sleep = &cp
		case mark.IsMorningID(m.ID):
			morning = append(morning, m)
		default:
			middle = append(middle, m)
		}
	}

	sort.SliceStable(morning, func(i, j int) bool {
		return timeutil.ParseMinutes(morning[i].Time) < timeutil.ParseMinutes(morning[j].Time)
	})
	sort.SliceStable(middle, func(i, j int) bool {
		return shiftedKey(middle[i].Time) < shiftedKey(middle[j].Time)
	})

	out := make([]mark.Mark, 0, len(marks))
	out = append(out, morning...)
	out = append(out, middle...)
	if sleep != nil {
		out = append(out, *sleep)
	}
	return out
}

// shiftedKey is the middle-group sort key: before the cutoff counts as the
// previous day's tail.
func shiftedKey(t string) int {
	m := timeutil.ParseMinutes(t)
	if m < dayCutoff {
		return m + timeutil.MinutesPerDay
	}
	return m
}

// Compute lays out the mark set against the given wall-clock time. An empty
// set yields a full-day range with the indicator hidden.
func Compute(marks []mark.Mark, now time.Time) Layout {
	ordered := Sorted(marks)

	l := Layout{Start: 0, End: timeutil.MinutesPerDay}
	if len(ordered) > 0 {
		first := timeutil.ParseMinutes(ordered[0].Time)
		last := timeutil.ParseMinutes(ordered[len(ordered)-1].Time)
		l.Start = max(0, first-RangePadding)
		l.End = min(timeutil.MinutesPerDay, last+RangePadding)
		l.Wraps = l.End < l.Start
	}

	if l.Wraps {
		l.TotalMinutes = (timeutil.MinutesPerDay - l.Start) + l.End
	} else {
		l.TotalMinutes = l.End - l.Start
	}
	l.Height = l.TotalMinutes*PixelsPerHour/60 + TopMargin + BottomMargin

	l.Marks = make([]PlacedMark, 0, len(ordered))
	for _, m := range ordered {
		l.Marks = append(l.Marks, PlacedMark{Mark: m, Y: l.yAt(timeutil.ParseMinutes(m.Time))})
	}

	if len(ordered) > 0 {
		minute := now.Hour()*60 + now.Minute()
		if l.contains(minute) {
			y := l.yAt(minute)
			l.NowY = &y
		}
	}
	return l
}

// minutesFromStart measures t from the range start, following the wrap.
func (l Layout) minutesFromStart(t int) int {
	if l.Wraps && t < l.Start {
		return (timeutil.MinutesPerDay - l.Start) + t
	}
	return t - l.Start
}

func (l Layout) yAt(t int) int {
	return l.minutesFromStart(t)*PixelsPerHour/60 + TopMargin
}

// contains reports whether a minute of day falls inside the visible range.
func (l Layout) contains(t int) bool {
	if l.Wraps {
		return t >= l.Start || t <= l.End
	}
	return t >= l.Start && t <= l.End
}
