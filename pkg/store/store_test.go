package store

import (
	"errors"
	"testing"

	"github.com/Maksimka101/daily-routine-calendar/pkg/mark"
	"github.com/Maksimka101/daily-routine-calendar/pkg/schedule"
)

func TestScheduleStoreRoundTrip(t *testing.T) {
	st := NewMemory()

	if got := st.Schedules.GetAll(); len(got) != 0 {
		t.Fatalf("fresh store not empty: %v", got)
	}

	a := schedule.New("Work day", "06:30", "23:00")
	b := schedule.New("Weekend", "09:00", "23:30")
	st.Schedules.Save(a)
	st.Schedules.Save(b)

	all := st.Schedules.GetAll()
	if len(all) != 2 || all[0].ID != a.ID || all[1].ID != b.ID {
		t.Fatalf("unexpected list: %v", all)
	}

	a.Name = "Office day"
	st.Schedules.Save(a)
	if got, ok := st.Schedules.Get(a.ID); !ok || got.Name != "Office day" {
		t.Fatalf("upsert lost the rename: %v", got)
	}
	if len(st.Schedules.GetAll()) != 2 {
		t.Fatal("upsert duplicated the schedule")
	}

	st.Schedules.Delete(a.ID)
	if _, ok := st.Schedules.Get(a.ID); ok {
		t.Fatal("delete did not remove the schedule")
	}
	st.Schedules.Delete("missing") // no-op
	if len(st.Schedules.GetAll()) != 1 {
		t.Fatal("missing-id delete changed the list")
	}
}

func TestMarkStoreScheduleScoping(t *testing.T) {
	st := NewMemory()

	// same template id in two schedules must stay distinct
	st.Marks.SaveMany([]mark.Mark{
		{ID: "wake", ScheduleID: "s1", Time: "07:00"},
		{ID: "wake", ScheduleID: "s2", Time: "09:00"},
		{ID: "u1", ScheduleID: "s1", Time: "13:00"},
	})

	if got := st.Marks.GetByScheduleID("s1"); len(got) != 2 {
		t.Fatalf("expected 2 marks for s1, got %d", len(got))
	}

	st.Marks.Save(mark.Mark{ID: "wake", ScheduleID: "s1", Time: "08:00"})
	for _, m := range st.Marks.GetAll() {
		if m.ID == "wake" && m.ScheduleID == "s2" && m.Time != "09:00" {
			t.Fatalf("update leaked across schedules: %v", m)
		}
	}

	st.Marks.Delete("s1", "wake")
	if got := st.Marks.GetByScheduleID("s2"); len(got) != 1 {
		t.Fatal("delete removed the other schedule's mark")
	}

	st.Marks.DeleteByScheduleID("s1")
	if got := st.Marks.GetByScheduleID("s1"); len(got) != 0 {
		t.Fatalf("cascade left marks behind: %v", got)
	}
}

func TestSettingsStore(t *testing.T) {
	st := NewMemory()

	if got := st.Settings.Get(); got.ActiveScheduleID != "" {
		t.Fatalf("fresh settings not empty: %v", got)
	}
	st.Settings.Save(Settings{ActiveScheduleID: "abc"})
	if got := st.Settings.Get(); got.ActiveScheduleID != "abc" {
		t.Fatalf("settings lost: %v", got)
	}
}

// brokenRecords fails every operation; the stores must absorb that and act
// empty.
type brokenRecords struct{}

func (brokenRecords) Read(string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (brokenRecords) Write(string, []byte) error  { return errors.New("disk on fire") }

func TestStoresAbsorbFailures(t *testing.T) {
	st := New(brokenRecords{})

	if got := st.Schedules.GetAll(); len(got) != 0 {
		t.Fatalf("broken store should read empty, got %v", got)
	}
	st.Schedules.Save(schedule.New("x", "07:00", "22:00")) // must not panic
	if got := st.Marks.GetByScheduleID("any"); len(got) != 0 {
		t.Fatalf("broken store should read empty, got %v", got)
	}
	if got := st.Settings.Get(); got != (Settings{}) {
		t.Fatalf("broken settings should be zero, got %v", got)
	}
}

// corruptRecords returns garbage JSON.
type corruptRecords struct{}

func (corruptRecords) Read(string) ([]byte, error) { return []byte("{not json"), nil }
func (corruptRecords) Write(string, []byte) error  { return nil }

func TestStoresAbsorbCorruptData(t *testing.T) {
	st := New(corruptRecords{})
	if got := st.Schedules.GetAll(); len(got) != 0 {
		t.Fatalf("corrupt record should read empty, got %v", got)
	}
}
