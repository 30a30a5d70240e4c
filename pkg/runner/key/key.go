package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Maksimka101/daily-routine-calendar/pkg/mark"
	"github.com/Maksimka101/daily-routine-calendar/pkg/timeutil"
)

// Key prints the legend of default mark templates and their offsets.
type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	k.group(ctx, "Morning (from wake time)", mark.MorningTemplates())
	k.group(ctx, "Evening (from bedtime)", mark.EveningTemplates())
	return nil
}

func (k *Key) group(_ context.Context, title string, templates []mark.Template) {
	bold := color.New(color.Bold, color.Underline)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Id", "Mark", "Title", "Offset")
	for _, t := range templates {
		tbl.AddRow(t.ID, t.Emoji, t.Title, offsetLabel(t.Offset))
	}

	_, _ = bold.Fprintln(color.Output, "\n"+title)
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func offsetLabel(offset int) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return sign + timeutil.FormatMinutes(offset)
}
