package set

import (
	"context"
	"errors"
	"fmt"

	"github.com/Maksimka101/daily-routine-calendar/pkg/app"
	"github.com/Maksimka101/daily-routine-calendar/pkg/printers"
	"github.com/Maksimka101/daily-routine-calendar/pkg/timeline"
	"github.com/Maksimka101/daily-routine-calendar/pkg/timeutil"
)

// Set updates a schedule's name or anchors. Retiming shifts the schedule's
// default marks; user marks stay put.
type Set struct {
	Schedule string
	Name     string
	WakeTime string
	Bedtime  string
	ShowID   bool

	Service *app.Service
}

func (s *Set) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not set, no service")
	}

	sc, err := s.Service.FindSchedule(s.Schedule)
	if err != nil {
		return err
	}

	wake := ""
	if s.WakeTime != "" {
		var ok bool
		if wake, ok = timeutil.Normalize(s.WakeTime); !ok {
			return fmt.Errorf("invalid wake time %q", s.WakeTime)
		}
	}
	bed := ""
	if s.Bedtime != "" {
		var ok bool
		if bed, ok = timeutil.Normalize(s.Bedtime); !ok {
			return fmt.Errorf("invalid bedtime %q", s.Bedtime)
		}
	}

	updated, err := s.Service.UpdateSchedule(sc.ID, s.Name, wake, bed)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: s.ShowID}
	pp.ScheduleTitle(updated, false)
	pp.Marks(timeline.Sorted(s.Service.Marks(updated.ID))...)
	return nil
}
