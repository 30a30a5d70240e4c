package app

import (
	"github.com/Maksimka101/daily-routine-calendar/pkg/schedule"
)

// FindSchedule resolves a CLI reference to a schedule: an empty ref means the
// active schedule, otherwise match by id then by exact name.
func (s *Service) FindSchedule(ref string) (schedule.Schedule, error) {
	if ref == "" {
		return s.ActiveSchedule(), nil
	}
	if sc, ok := s.Stores.Schedules.Get(ref); ok {
		return sc, nil
	}
	for _, sc := range s.Stores.Schedules.GetAll() {
		if sc.Name == ref {
			return sc, nil
		}
	}
	return schedule.Schedule{}, ErrScheduleNotFound
}
