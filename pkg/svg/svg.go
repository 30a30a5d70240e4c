// Package svg renders a computed timeline layout as a standalone SVG
// document with a yaml-configurable theme.
package svg

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Maksimka101/daily-routine-calendar/pkg/timeline"
	"github.com/Maksimka101/daily-routine-calendar/pkg/timeutil"
)

// Theme controls the document's colors and geometry. Zero-valued fields fall
// back to the defaults, so a theme file only needs the overrides.
type Theme struct {
	Background string `yaml:"background"`
	Rail       string `yaml:"rail"`
	MarkFill   string `yaml:"mark_fill"`
	MarkStroke string `yaml:"mark_stroke"`
	Text       string `yaml:"text"`
	Muted      string `yaml:"muted"`
	Now        string `yaml:"now"`
	FontFamily string `yaml:"font_family"`
	FontSize   int    `yaml:"font_size"`
	Width      int    `yaml:"width"`
	RailX      int    `yaml:"rail_x"`
	MarkRadius int    `yaml:"mark_radius"`
}

// DefaultTheme returns the built-in look.
func DefaultTheme() Theme {
	return Theme{
		Background: "#ffffff",
		Rail:       "#d0d4da",
		MarkFill:   "#4285f4",
		MarkStroke: "#1a55b0",
		Text:       "#20242a",
		Muted:      "#8a909a",
		Now:        "#e0453a",
		FontFamily: "Helvetica, Arial, sans-serif",
		FontSize:   14,
		Width:      420,
		RailX:      90,
		MarkRadius: 6,
	}
}

// LoadTheme reads a yaml theme file and overlays it on the defaults. An
// empty path returns the defaults untouched.
func LoadTheme(path string) (Theme, error) {
	th := DefaultTheme()
	if path == "" {
		return th, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return th, err
	}
	var overlay Theme
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return th, err
	}
	th.merge(overlay)
	return th, nil
}

func (t *Theme) merge(o Theme) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&t.Background, o.Background)
	set(&t.Rail, o.Rail)
	set(&t.MarkFill, o.MarkFill)
	set(&t.MarkStroke, o.MarkStroke)
	set(&t.Text, o.Text)
	set(&t.Muted, o.Muted)
	set(&t.Now, o.Now)
	set(&t.FontFamily, o.FontFamily)
	if o.FontSize > 0 {
		t.FontSize = o.FontSize
	}
	if o.Width > 0 {
		t.Width = o.Width
	}
	if o.RailX > 0 {
		t.RailX = o.RailX
	}
	if o.MarkRadius > 0 {
		t.MarkRadius = o.MarkRadius
	}
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Render emits the SVG document for a layout.
func Render(l timeline.Layout, th Theme) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		th.Width, l.Height, th.Width, l.Height)
	fmt.Fprintf(&b, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", th.Width, l.Height, th.Background)

	railTop := timeline.TopMargin
	railBottom := l.Height - timeline.BottomMargin
	fmt.Fprintf(&b, `  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2"/>`+"\n",
		th.RailX, railTop, th.RailX, railBottom, th.Rail)

	// hour ticks along the visible range
	for minute := firstHour(l.Start); tickVisible(l, minute); minute += 60 {
		y := tickY(l, minute)
		fmt.Fprintf(&b, `  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1"/>`+"\n",
			th.RailX-4, y, th.RailX+4, y, th.Rail)
		fmt.Fprintf(&b, `  <text x="%d" y="%d" text-anchor="end" font-family="%s" font-size="%d" fill="%s">%s</text>`+"\n",
			th.RailX-10, y+th.FontSize/3, th.FontFamily, th.FontSize-3, th.Muted,
			timeutil.FormatMinutes(minute))
	}

	for _, m := range l.Marks {
		fmt.Fprintf(&b, `  <circle cx="%d" cy="%d" r="%d" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			th.RailX, m.Y, th.MarkRadius, th.MarkFill, th.MarkStroke)
		label := textEscaper.Replace(strings.TrimSpace(m.Emoji + " " + m.Title))
		fmt.Fprintf(&b, `  <text x="%d" y="%d" font-family="%s" font-size="%d" fill="%s">%s %s</text>`+"\n",
			th.RailX+16, m.Y+th.FontSize/3, th.FontFamily, th.FontSize, th.Text, m.Time, label)
	}

	if l.NowY != nil {
		fmt.Fprintf(&b, `  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2"/>`+"\n",
			th.RailX-8, *l.NowY, th.Width-20, *l.NowY, th.Now)
		fmt.Fprintf(&b, `  <text x="%d" y="%d" text-anchor="end" font-family="%s" font-size="%d" fill="%s">now</text>`+"\n",
			th.Width-20, *l.NowY-4, th.FontFamily, th.FontSize-3, th.Now)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// firstHour rounds up to the first whole hour at or after start.
func firstHour(start int) int {
	if start%60 == 0 {
		return start
	}
	return (start/60 + 1) * 60
}

// tickVisible walks hour ticks through a possibly wrapping range. Minutes
// keep increasing past 1440 while the range wraps.
func tickVisible(l timeline.Layout, minute int) bool {
	if l.Wraps {
		return minute < timeutil.MinutesPerDay+l.End
	}
	return minute <= l.End
}

func tickY(l timeline.Layout, minute int) int {
	return (minute-l.Start)*timeline.PixelsPerHour/60 + timeline.TopMargin
}
