package store

import (
	"github.com/Maksimka101/daily-routine-calendar/pkg/schedule"
)

// ScheduleStore holds the flat list of schedules.
type ScheduleStore struct {
	r Records
}

// GetAll returns a snapshot of every schedule, oldest first.
func (s *ScheduleStore) GetAll() []schedule.Schedule {
	var all []schedule.Schedule
	readJSON(s.r, schedulesKey, &all)
	return all
}

// Get returns the schedule with the given id.
func (s *ScheduleStore) Get(id string) (schedule.Schedule, bool) {
	for _, sc := range s.GetAll() {
		if sc.ID == id {
			return sc, true
		}
	}
	return schedule.Schedule{}, false
}

// Save upserts one schedule, keeping list order for existing ids.
func (s *ScheduleStore) Save(sc schedule.Schedule) {
	all := s.GetAll()
	for i := range all {
		if all[i].ID == sc.ID {
			all[i] = sc
			writeJSON(s.r, schedulesKey, all)
			return
		}
	}
	writeJSON(s.r, schedulesKey, append(all, sc))
}

// Delete removes the schedule with the given id. Missing ids are a no-op.
func (s *ScheduleStore) Delete(id string) {
	all := s.GetAll()
	kept := all[:0]
	for _, sc := range all {
		if sc.ID != id {
			kept = append(kept, sc)
		}
	}
	writeJSON(s.r, schedulesKey, kept)
}
