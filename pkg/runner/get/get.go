package get

import (
	"context"
	"errors"

	"github.com/Maksimka101/daily-routine-calendar/pkg/app"
	"github.com/Maksimka101/daily-routine-calendar/pkg/printers"
	"github.com/Maksimka101/daily-routine-calendar/pkg/timeline"
)

type Get struct {
	Schedule string
	All      bool
	ShowID   bool

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()

	active := n.Service.ActiveSchedule()

	if !n.All {
		sc, err := n.Service.FindSchedule(n.Schedule)
		if err != nil {
			return err
		}
		pp.ScheduleTitle(sc, sc.ID == active.ID)
		pp.Marks(timeline.Sorted(n.Service.Marks(sc.ID))...)
		return nil
	}

	for _, sc := range n.Service.Schedules() {
		pp.ScheduleTitle(sc, sc.ID == active.ID)
		pp.Marks(timeline.Sorted(n.Service.Marks(sc.ID))...)
	}
	return nil
}
