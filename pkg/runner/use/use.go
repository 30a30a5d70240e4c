package use

import (
	"context"
	"errors"

	"github.com/Maksimka101/daily-routine-calendar/pkg/app"
	"github.com/Maksimka101/daily-routine-calendar/pkg/printers"
)

// Use switches the active schedule; the choice is remembered across runs.
type Use struct {
	Schedule string

	Service *app.Service
}

func (u *Use) Do(ctx context.Context) error {
	if u.Service == nil {
		return errors.New("can not use, no service")
	}

	sc, err := u.Service.FindSchedule(u.Schedule)
	if err != nil {
		return err
	}
	if err := u.Service.SetActiveSchedule(sc.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.ScheduleTitle(sc, true)
	pp.NewLine()
	return nil
}
