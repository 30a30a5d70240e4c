package timeline

import (
	"context"
	"errors"
	"time"

	"github.com/Maksimka101/daily-routine-calendar/pkg/app"
	"github.com/Maksimka101/daily-routine-calendar/pkg/printers"
	layout "github.com/Maksimka101/daily-routine-calendar/pkg/timeline"
)

// Timeline renders a schedule's marks as a vertical rail in the terminal.
type Timeline struct {
	Schedule string
	ShowID   bool

	// Now overrides the wall clock, for tests.
	Now func() time.Time

	Service *app.Service
}

func (t *Timeline) Do(ctx context.Context) error {
	if t.Service == nil {
		return errors.New("can not render, no service")
	}

	sc, err := t.Service.FindSchedule(t.Schedule)
	if err != nil {
		return err
	}

	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	l := layout.Compute(t.Service.Marks(sc.ID), now())

	pp := printers.PrettyPrint{ShowID: t.ShowID}
	pp.NewLine()
	pp.ScheduleTitle(sc, false)
	pp.Timeline(l)
	return nil
}
