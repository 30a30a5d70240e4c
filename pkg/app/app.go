// Package app provides the planner's business operations over the stores:
// schedule and mark CRUD, default-mark generation, and the repositioning of
// default marks when a schedule's anchors move. Mark reads and conditional
// writes here are not atomic; that is fine for a single local process and
// must become transactional if this ever grows a second writer.
package app

import (
	"errors"

	"github.com/Maksimka101/daily-routine-calendar/pkg/mark"
	"github.com/Maksimka101/daily-routine-calendar/pkg/schedule"
	"github.com/Maksimka101/daily-routine-calendar/pkg/store"
	"github.com/Maksimka101/daily-routine-calendar/pkg/timeutil"
)

var (
	ErrScheduleNotFound = errors.New("app: schedule not found")
	ErrMarkNotFound     = errors.New("app: mark not found")
)

// Service provides high-level operations for schedules and marks. UIs and
// CLIs share it so the default-mark rules live in exactly one place.
type Service struct {
	Stores *store.Stores
}

// New wraps the stores in a Service.
func New(st *store.Stores) *Service {
	return &Service{Stores: st}
}

// Schedules returns every stored schedule.
func (s *Service) Schedules() []schedule.Schedule {
	return s.Stores.Schedules.GetAll()
}

// Schedule returns one schedule by id.
func (s *Service) Schedule(id string) (schedule.Schedule, error) {
	sc, ok := s.Stores.Schedules.Get(id)
	if !ok {
		return schedule.Schedule{}, ErrScheduleNotFound
	}
	return sc, nil
}

// CreateSchedule stores a new schedule seeded with its full default mark set
// and returns both.
func (s *Service) CreateSchedule(name, wakeTime, bedtime string) (schedule.Schedule, []mark.Mark) {
	sc := schedule.New(name, wakeTime, bedtime)
	s.Stores.Schedules.Save(sc)
	marks := s.CreateDefaultMarks(sc.ID, sc.WakeTime, sc.Bedtime)
	return sc, marks
}

// UpdateSchedule applies the non-empty fields to the schedule with the given
// id. When the wake time or bedtime actually changes, every default mark of
// the schedule is shifted by its group's delta; user marks never move.
func (s *Service) UpdateSchedule(id, name, wakeTime, bedtime string) (schedule.Schedule, error) {
	sc, ok := s.Stores.Schedules.Get(id)
	if !ok {
		return schedule.Schedule{}, ErrScheduleNotFound
	}

	oldWake, oldBed := sc.WakeTime, sc.Bedtime
	if name != "" {
		sc.Name = name
	}
	if wakeTime != "" {
		sc.WakeTime = wakeTime
	}
	if bedtime != "" {
		sc.Bedtime = bedtime
	}
	s.Stores.Schedules.Save(sc)

	if sc.WakeTime != oldWake || sc.Bedtime != oldBed {
		s.shiftDefaultMarks(sc.ID, oldWake, sc.WakeTime, oldBed, sc.Bedtime)
	}
	return sc, nil
}

// DeleteSchedule removes a schedule and all of its marks. When the last
// schedule goes away a default one is synthesized so at least one always
// exists.
func (s *Service) DeleteSchedule(id string) {
	s.Stores.Schedules.Delete(id)
	s.Stores.Marks.DeleteByScheduleID(id)
	s.EnsureSchedule()
}

// EnsureSchedule guarantees the at-least-one-schedule invariant, creating
// the default schedule when the store is empty. It returns the first
// schedule either way.
func (s *Service) EnsureSchedule() schedule.Schedule {
	all := s.Stores.Schedules.GetAll()
	if len(all) > 0 {
		return all[0]
	}
	sc, _ := s.CreateSchedule(schedule.DefaultName, schedule.DefaultWakeTime, schedule.DefaultBedtime)
	return sc
}

// CreateDefaultMarks generates and persists the full template-derived mark
// set for a schedule: morning templates offset from the wake time, evening
// templates from the bedtime.
func (s *Service) CreateDefaultMarks(scheduleID, wakeTime, bedtime string) []mark.Mark {
	marks := make([]mark.Mark, 0, len(mark.Templates()))
	for _, t := range mark.MorningTemplates() {
		marks = append(marks, markFromTemplate(scheduleID, t, wakeTime))
	}
	for _, t := range mark.EveningTemplates() {
		marks = append(marks, markFromTemplate(scheduleID, t, bedtime))
	}
	s.Stores.Marks.SaveMany(marks)
	return marks
}

func markFromTemplate(scheduleID string, t mark.Template, anchor string) mark.Mark {
	return mark.Mark{
		ID:          t.ID,
		ScheduleID:  scheduleID,
		Emoji:       t.Emoji,
		Title:       t.Title,
		Description: t.Description,
		Time:        timeutil.Shift(anchor, t.Offset),
	}
}

// shiftDefaultMarks moves the default marks of a schedule after its anchors
// changed. Morning and evening groups shift independently; marks outside the
// template id set are left untouched.
func (s *Service) shiftDefaultMarks(scheduleID, oldWake, newWake, oldBed, newBed string) {
	wakeDelta := timeutil.Delta(oldWake, newWake)
	bedDelta := timeutil.Delta(oldBed, newBed)
	if wakeDelta == 0 && bedDelta == 0 {
		return
	}

	marks := s.Stores.Marks.GetByScheduleID(scheduleID)
	shifted := make([]mark.Mark, 0, len(marks))
	for _, m := range marks {
		var delta int
		switch {
		case mark.IsMorningID(m.ID):
			delta = wakeDelta
		case mark.IsEveningID(m.ID):
			delta = bedDelta
		default:
			continue
		}
		if delta == 0 {
			continue
		}
		m.Time = timeutil.Shift(m.Time, delta)
		shifted = append(shifted, m)
	}
	if len(shifted) > 0 {
		s.Stores.Marks.SaveMany(shifted)
	}
}

// Marks returns the marks of one schedule.
func (s *Service) Marks(scheduleID string) []mark.Mark {
	return s.Stores.Marks.GetByScheduleID(scheduleID)
}

// AddMark stores a new user mark, filling unset fields with the package
// defaults, and returns it.
func (s *Service) AddMark(scheduleID, emoji, title, description, t string) mark.Mark {
	m := mark.New(scheduleID, emoji, title, description, t)
	s.Stores.Marks.Save(m)
	return m
}

// UpdateMark replaces an existing mark. Updating an unknown id is an
// invariant violation, not a user-facing condition: ids always come from a
// freshly loaded list.
func (s *Service) UpdateMark(m mark.Mark) error {
	for _, existing := range s.Stores.Marks.GetByScheduleID(m.ScheduleID) {
		if existing.ID == m.ID {
			m.FillDefaults()
			s.Stores.Marks.Save(m)
			return nil
		}
	}
	return ErrMarkNotFound
}

// DeleteMark removes one mark of a schedule.
func (s *Service) DeleteMark(scheduleID, id string) error {
	for _, existing := range s.Stores.Marks.GetByScheduleID(scheduleID) {
		if existing.ID == id {
			s.Stores.Marks.Delete(scheduleID, id)
			return nil
		}
	}
	return ErrMarkNotFound
}

// ActiveSchedule resolves the schedule the settings point at, falling back
// to the first schedule (and repairing the settings record) when the stored
// id is stale or absent.
func (s *Service) ActiveSchedule() schedule.Schedule {
	settings := s.Stores.Settings.Get()
	if settings.ActiveScheduleID != "" {
		if sc, ok := s.Stores.Schedules.Get(settings.ActiveScheduleID); ok {
			return sc
		}
	}
	sc := s.EnsureSchedule()
	s.Stores.Settings.Save(store.Settings{ActiveScheduleID: sc.ID})
	return sc
}

// SetActiveSchedule remembers which schedule tab is active.
func (s *Service) SetActiveSchedule(id string) error {
	if _, ok := s.Stores.Schedules.Get(id); !ok {
		return ErrScheduleNotFound
	}
	s.Stores.Settings.Save(store.Settings{ActiveScheduleID: id})
	return nil
}
