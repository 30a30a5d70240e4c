package store

import (
	"github.com/Maksimka101/daily-routine-calendar/pkg/mark"
)

// MarkStore holds every mark in one flat record; the schedule id is a field
// on the mark, not a partition key.
type MarkStore struct {
	r Records
}

// GetAll returns a snapshot of every mark.
func (s *MarkStore) GetAll() []mark.Mark {
	var all []mark.Mark
	readJSON(s.r, marksKey, &all)
	return all
}

// GetByScheduleID returns the marks belonging to one schedule.
func (s *MarkStore) GetByScheduleID(scheduleID string) []mark.Mark {
	var out []mark.Mark
	for _, m := range s.GetAll() {
		if m.ScheduleID == scheduleID {
			out = append(out, m)
		}
	}
	return out
}

// Save upserts one mark.
func (s *MarkStore) Save(m mark.Mark) {
	s.SaveMany([]mark.Mark{m})
}

// SaveMany upserts a batch of marks in one write.
func (s *MarkStore) SaveMany(marks []mark.Mark) {
	all := s.GetAll()
	for _, m := range marks {
		found := false
		for i := range all {
			if all[i].ID == m.ID && all[i].ScheduleID == m.ScheduleID {
				all[i] = m
				found = true
				break
			}
		}
		if !found {
			all = append(all, m)
		}
	}
	writeJSON(s.r, marksKey, all)
}

// Delete removes a single mark of one schedule. Missing ids are a no-op.
func (s *MarkStore) Delete(scheduleID, id string) {
	all := s.GetAll()
	kept := all[:0]
	for _, m := range all {
		if m.ID != id || m.ScheduleID != scheduleID {
			kept = append(kept, m)
		}
	}
	writeJSON(s.r, marksKey, kept)
}

// DeleteByScheduleID removes every mark belonging to a schedule.
func (s *MarkStore) DeleteByScheduleID(scheduleID string) {
	all := s.GetAll()
	kept := all[:0]
	for _, m := range all {
		if m.ScheduleID != scheduleID {
			kept = append(kept, m)
		}
	}
	writeJSON(s.r, marksKey, kept)
}
