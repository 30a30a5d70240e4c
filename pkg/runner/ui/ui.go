package ui

import (
	"context"
	"errors"

	"github.com/Maksimka101/daily-routine-calendar/pkg/app"
	"github.com/Maksimka101/daily-routine-calendar/pkg/tui"
)

type UI struct {
	Service *app.Service
}

func (u *UI) Do(ctx context.Context) error {
	if u.Service == nil {
		return errors.New("can not run ui, no service")
	}
	u.Service.EnsureSchedule()
	return tui.Run(u.Service)
}
