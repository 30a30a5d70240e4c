package rm

import (
	"context"
	"errors"

	"github.com/Maksimka101/daily-routine-calendar/pkg/app"
	"github.com/Maksimka101/daily-routine-calendar/pkg/printers"
)

// Rm deletes a schedule and all of its marks. Deleting the last schedule
// leaves a fresh default one behind.
type Rm struct {
	Schedule string

	Service *app.Service
}

func (r *Rm) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not rm, no service")
	}

	sc, err := r.Service.FindSchedule(r.Schedule)
	if err != nil {
		return err
	}
	r.Service.DeleteSchedule(sc.ID)

	pp := printers.PrettyPrint{}
	pp.Title("Remaining schedules")
	active := r.Service.ActiveSchedule()
	for _, s := range r.Service.Schedules() {
		pp.ScheduleTitle(s, s.ID == active.ID)
	}
	pp.NewLine()
	return nil
}
