package edit

import (
	"context"
	"errors"
	"fmt"

	"github.com/Maksimka101/daily-routine-calendar/pkg/app"
	"github.com/Maksimka101/daily-routine-calendar/pkg/mark"
	"github.com/Maksimka101/daily-routine-calendar/pkg/printers"
	"github.com/Maksimka101/daily-routine-calendar/pkg/timeline"
	"github.com/Maksimka101/daily-routine-calendar/pkg/timeutil"
)

// Edit rewrites fields of an existing mark. Default marks can be edited too;
// only their times are ever touched automatically.
type Edit struct {
	Schedule    string
	MarkID      string
	Emoji       string
	Title       string
	Description string
	Time        string
	ShowID      bool

	Service *app.Service
}

func (e *Edit) Do(ctx context.Context) error {
	if e.Service == nil {
		return errors.New("can not edit, no service")
	}

	sc, err := e.Service.FindSchedule(e.Schedule)
	if err != nil {
		return err
	}

	var target *mark.Mark
	for _, m := range e.Service.Marks(sc.ID) {
		if m.ID == e.MarkID {
			cp := m
			target = &cp
			break
		}
	}
	if target == nil {
		return app.ErrMarkNotFound
	}

	if e.Emoji != "" {
		target.Emoji = e.Emoji
	}
	if e.Title != "" {
		target.Title = e.Title
	}
	if e.Description != "" {
		target.Description = e.Description
	}
	if e.Time != "" {
		t, ok := timeutil.Normalize(e.Time)
		if !ok {
			return fmt.Errorf("invalid time %q", e.Time)
		}
		target.Time = t
	}

	if err := e.Service.UpdateMark(*target); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: e.ShowID}
	pp.ScheduleTitle(sc, false)
	pp.Marks(timeline.Sorted(e.Service.Marks(sc.ID))...)
	return nil
}
