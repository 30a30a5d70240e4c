package svgout

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Maksimka101/daily-routine-calendar/pkg/app"
	"github.com/Maksimka101/daily-routine-calendar/pkg/svg"
	"github.com/Maksimka101/daily-routine-calendar/pkg/timeline"
)

// SVG writes a schedule's timeline as an SVG document, to a file or stdout.
type SVG struct {
	Schedule string
	Output   string
	Theme    string

	// Now overrides the wall clock, for tests.
	Now func() time.Time

	Service *app.Service
}

func (s *SVG) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not render, no service")
	}

	sc, err := s.Service.FindSchedule(s.Schedule)
	if err != nil {
		return err
	}

	theme, err := svg.LoadTheme(s.Theme)
	if err != nil {
		return fmt.Errorf("theme %s: %w", s.Theme, err)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	doc := svg.Render(timeline.Compute(s.Service.Marks(sc.ID), now()), theme)

	if s.Output == "" || s.Output == "-" {
		_, err = fmt.Print(doc)
		return err
	}
	return os.WriteFile(s.Output, []byte(doc), 0o644)
}
