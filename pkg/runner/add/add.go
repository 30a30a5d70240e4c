package add

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Maksimka101/daily-routine-calendar/pkg/app"
	"github.com/Maksimka101/daily-routine-calendar/pkg/printers"
	"github.com/Maksimka101/daily-routine-calendar/pkg/timeline"
	"github.com/Maksimka101/daily-routine-calendar/pkg/timeutil"
)

type Add struct {
	Schedule    string
	Emoji       string
	Title       string
	Description string
	Time        string
	// In places the mark relative to the wall clock ("1h30m") when no
	// absolute time is given.
	In     string
	ShowID bool

	// Now overrides the wall clock, for tests.
	Now func() time.Time

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	sc, err := n.Service.FindSchedule(n.Schedule)
	if err != nil {
		return err
	}

	t := ""
	switch {
	case n.Time != "":
		var ok bool
		if t, ok = timeutil.Normalize(n.Time); !ok {
			return fmt.Errorf("invalid time %q", n.Time)
		}
	case n.In != "":
		offset, err := timeutil.ParseOffset(n.In)
		if err != nil {
			return err
		}
		now := time.Now
		if n.Now != nil {
			now = n.Now
		}
		t = timeutil.FormatMinutes(now().Hour()*60 + now().Minute() + offset)
	}

	n.Service.AddMark(sc.ID, n.Emoji, n.Title, n.Description, t)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.ScheduleTitle(sc, false)
	pp.Marks(timeline.Sorted(n.Service.Marks(sc.ID))...)
	return nil
}
