package remove

import (
	"context"
	"errors"

	"github.com/Maksimka101/daily-routine-calendar/pkg/app"
	"github.com/Maksimka101/daily-routine-calendar/pkg/printers"
	"github.com/Maksimka101/daily-routine-calendar/pkg/timeline"
)

type Remove struct {
	Schedule string
	MarkID   string
	ShowID   bool

	Service *app.Service
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not remove, no service")
	}

	sc, err := r.Service.FindSchedule(r.Schedule)
	if err != nil {
		return err
	}
	if err := r.Service.DeleteMark(sc.ID, r.MarkID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: r.ShowID}
	pp.ScheduleTitle(sc, false)
	pp.Marks(timeline.Sorted(r.Service.Marks(sc.ID))...)
	return nil
}
