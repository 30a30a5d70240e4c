package create

import (
	"context"
	"errors"
	"fmt"

	"github.com/Maksimka101/daily-routine-calendar/pkg/app"
	"github.com/Maksimka101/daily-routine-calendar/pkg/printers"
	"github.com/Maksimka101/daily-routine-calendar/pkg/schedule"
	"github.com/Maksimka101/daily-routine-calendar/pkg/timeutil"
)

type Create struct {
	Name     string
	WakeTime string
	Bedtime  string
	Activate bool
	ShowID   bool

	Service *app.Service
}

func (c *Create) Do(ctx context.Context) error {
	if c.Service == nil {
		return errors.New("can not create, no service")
	}

	wake := schedule.DefaultWakeTime
	if c.WakeTime != "" {
		var ok bool
		if wake, ok = timeutil.Normalize(c.WakeTime); !ok {
			return fmt.Errorf("invalid wake time %q", c.WakeTime)
		}
	}
	bed := schedule.DefaultBedtime
	if c.Bedtime != "" {
		var ok bool
		if bed, ok = timeutil.Normalize(c.Bedtime); !ok {
			return fmt.Errorf("invalid bedtime %q", c.Bedtime)
		}
	}

	sc, marks := c.Service.CreateSchedule(c.Name, wake, bed)
	if c.Activate {
		if err := c.Service.SetActiveSchedule(sc.ID); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: c.ShowID}
	pp.ScheduleTitle(sc, c.Activate)
	pp.Marks(marks...)
	return nil
}
