package timeline

import (
	"testing"
	"time"

	"github.com/Maksimka101/daily-routine-calendar/pkg/mark"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, time.March, 14, hour, minute, 0, 0, time.UTC)
}

func ids(marks []mark.Mark) []string {
	out := make([]string, len(marks))
	for i, m := range marks {
		out[i] = m.ID
	}
	return out
}

func TestSortedPutsSleepAfterMidnightLast(t *testing.T) {
	marks := []mark.Mark{
		{ID: "sleep", Time: "01:00"},
		{ID: "wake", Time: "07:00"},
		{ID: "breakfast", Time: "07:30"},
		{ID: "dinner", Time: "22:00"},
	}
	got := ids(Sorted(marks))
	want := []string{"wake", "breakfast", "dinner", "sleep"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order %v, want %v", got, want)
		}
	}
}

func TestSortedMiddleUsesDayCutoff(t *testing.T) {
	// an 00:30 user mark belongs after the evening, not before the morning
	marks := []mark.Mark{
		{ID: "night-snack", Time: "00:30"},
		{ID: "wake", Time: "07:00"},
		{ID: "evening-walk", Time: "21:00"},
		{ID: "sleep", Time: "01:00"},
	}
	got := ids(Sorted(marks))
	want := []string{"wake", "evening-walk", "night-snack", "sleep"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order %v, want %v", got, want)
		}
	}
}

func TestSortedMorningByTime(t *testing.T) {
	marks := []mark.Mark{
		{ID: "lunch", Time: "12:00"},
		{ID: "breakfast", Time: "07:30"},
		{ID: "last-coffee", Time: "13:00"},
		{ID: "wake", Time: "07:00"},
	}
	got := ids(Sorted(marks))
	want := []string{"wake", "breakfast", "lunch", "last-coffee"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order %v, want %v", got, want)
		}
	}
}

func TestComputeRangeAndPositions(t *testing.T) {
	marks := []mark.Mark{
		{ID: "wake", Time: "07:00"},
		{ID: "dinner", Time: "19:00"},
	}
	l := Compute(marks, at(12, 0))

	if l.Start != 7*60-30 || l.End != 19*60+30 {
		t.Fatalf("range [%d,%d]", l.Start, l.End)
	}
	if l.Wraps {
		t.Fatal("range must not wrap")
	}
	if l.TotalMinutes != 13*60 {
		t.Fatalf("total %d", l.TotalMinutes)
	}
	if l.Height != 13*60+100 {
		t.Fatalf("height %d", l.Height)
	}

	// wake sits RangePadding minutes into the range
	if l.Marks[0].Y != RangePadding+TopMargin {
		t.Fatalf("wake y %d", l.Marks[0].Y)
	}
	if l.NowY == nil {
		t.Fatal("noon must be in range")
	}
	if want := (12*60 - l.Start) + TopMargin; *l.NowY != want {
		t.Fatalf("now y %d, want %d", *l.NowY, want)
	}
}

func TestComputeClampsRangeToDay(t *testing.T) {
	// "wake" is morning-fixed so it leads the order; padding past either
	// edge clamps instead of wrapping.
	marks := []mark.Mark{
		{ID: "wake", Time: "00:10"},
		{ID: "stretch", Time: "23:50"},
	}
	l := Compute(marks, at(12, 0))
	if l.Start != 0 || l.End != 1440 {
		t.Fatalf("range [%d,%d], want [0,1440]", l.Start, l.End)
	}
	if l.Wraps {
		t.Fatal("clamped range must not wrap")
	}
}

func TestComputeMidnightAdjacentMiddleMarks(t *testing.T) {
	// Two plain marks hugging midnight: 00:10 sorts as the previous day's
	// tail, so the ordered list is [23:50, 00:10] and the range wraps.
	marks := []mark.Mark{
		{ID: "early", Time: "00:10"},
		{ID: "late", Time: "23:50"},
	}
	l := Compute(marks, at(12, 0))

	if l.Marks[0].Time != "23:50" || l.Marks[1].Time != "00:10" {
		t.Fatalf("order %s, %s", l.Marks[0].Time, l.Marks[1].Time)
	}
	if !l.Wraps {
		t.Fatalf("expected wrap, range [%d,%d]", l.Start, l.End)
	}
	if l.Start != 1400 || l.End != 40 {
		t.Fatalf("range [%d,%d], want [1400,40]", l.Start, l.End)
	}
	if l.TotalMinutes != 80 {
		t.Fatalf("total %d, want 80", l.TotalMinutes)
	}
}

func TestComputeWrappingRange(t *testing.T) {
	marks := []mark.Mark{
		{ID: "wake", Time: "09:00"},
		{ID: "sleep", Time: "01:00"},
	}
	l := Compute(marks, at(0, 0))

	if !l.Wraps {
		t.Fatalf("expected wrap, range [%d,%d]", l.Start, l.End)
	}
	if l.Start != 9*60-30 || l.End != 60+30 {
		t.Fatalf("range [%d,%d]", l.Start, l.End)
	}
	if want := (1440 - l.Start) + l.End; l.TotalMinutes != want {
		t.Fatalf("total %d, want %d", l.TotalMinutes, want)
	}

	// midnight is in range on the wrapped side
	if l.NowY == nil {
		t.Fatal("midnight must be in range")
	}
	if want := (1440 - l.Start) + 0 + TopMargin; *l.NowY != want {
		t.Fatalf("now y %d, want %d", *l.NowY, want)
	}

	// the pre-dawn gap is outside the wrapped range
	if out := Compute(marks, at(4, 0)); out.NowY != nil {
		t.Fatal("04:00 must be out of range")
	}
}

func TestComputeNowOutsideRange(t *testing.T) {
	marks := []mark.Mark{
		{ID: "wake", Time: "07:00"},
		{ID: "dinner", Time: "19:00"},
	}
	if l := Compute(marks, at(23, 0)); l.NowY != nil {
		t.Fatal("23:00 must be out of range")
	}
	if l := Compute(marks, at(3, 0)); l.NowY != nil {
		t.Fatal("03:00 must be out of range")
	}
}

func TestComputeEmptySet(t *testing.T) {
	l := Compute(nil, at(12, 0))
	if l.Start != 0 || l.End != 1440 || l.Wraps {
		t.Fatalf("empty range [%d,%d] wraps=%v", l.Start, l.End, l.Wraps)
	}
	if l.TotalMinutes != 1440 || l.Height != 1540 {
		t.Fatalf("total %d height %d", l.TotalMinutes, l.Height)
	}
	if l.NowY != nil {
		t.Fatal("indicator must stay hidden for an empty set")
	}
	if len(l.Marks) != 0 {
		t.Fatalf("unexpected marks: %v", l.Marks)
	}
}
