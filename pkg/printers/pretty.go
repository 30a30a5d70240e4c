package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/Maksimka101/daily-routine-calendar/pkg/mark"
	"github.com/Maksimka101/daily-routine-calendar/pkg/schedule"
)

type PrettyPrint struct {
	ShowID bool
}

// wide enough for a uuid, template ids just get padded
var spacing = strings.Repeat(" ", 36+2)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// ScheduleTitle prints the schedule header with its anchors.
func (pp *PrettyPrint) ScheduleTitle(s schedule.Schedule, active bool) {
	t := color.New(color.Bold, color.Underline)
	f := color.New(color.Faint)

	if pp.ShowID {
		_, _ = color.New(color.FgHiYellow, color.Italic, color.Faint).Print(padID(s.ID))
	}
	_, _ = t.Print(s.Name)
	_, _ = f.Printf("  %s – %s", s.WakeTime, s.Bedtime)
	if active {
		_, _ = f.Print("  (active)")
	}
	fmt.Println("")
}

// Marks prints a mark list, one line each, in the order given.
func (pp *PrettyPrint) Marks(marks ...mark.Mark) {
	if len(marks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	d := color.New(color.Faint)

	for _, m := range marks {
		if pp.ShowID {
			_, _ = y.Print(padID(m.ID))
		}
		_, _ = t.Printf("%s %s  %s", m.Time, m.Emoji, m.Title)
		if m.Description != "" {
			_, _ = d.Printf("  %s", m.Description)
		}
		fmt.Println("")
	}
	_, _ = t.Println("")
}

func padID(id string) string {
	if len(id) >= len(spacing) {
		return id + " "
	}
	return id + strings.Repeat(" ", len(spacing)-len(id))
}
