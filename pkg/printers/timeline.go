package printers

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/Maksimka101/daily-routine-calendar/pkg/timeline"
)

// linePixels is how many layout pixels one terminal row stands for.
const linePixels = 30

// Timeline renders a computed layout as a vertical rail, gaps proportional
// to the pixel distance between marks. The current-time indicator is drawn
// between the marks it falls between, when visible.
func (pp *PrettyPrint) Timeline(l timeline.Layout) {
	if len(l.Marks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	rail := color.New(color.Faint)
	now := color.New(color.FgHiRed)
	t := color.New()

	prevY := timeline.TopMargin
	nowDrawn := l.NowY == nil
	for _, m := range l.Marks {
		gap := (m.Y - prevY) / linePixels
		for i := 0; i < gap; i++ {
			if !nowDrawn && *l.NowY <= prevY+(i+1)*linePixels {
				_, _ = now.Println("  ├──── now")
				nowDrawn = true
				continue
			}
			_, _ = rail.Println("  │")
		}
		if !nowDrawn && *l.NowY <= m.Y {
			_, _ = now.Println("  ├──── now")
			nowDrawn = true
		}
		_, _ = rail.Print("  ● ")
		_, _ = t.Printf("%s %s  %s", m.Time, m.Emoji, m.Title)
		if pp.ShowID {
			_, _ = rail.Printf("  [%s]", m.ID)
		}
		fmt.Println("")
		prevY = m.Y
	}
	if !nowDrawn {
		_, _ = now.Println("  ├──── now")
	}
	_, _ = t.Println("")
}
