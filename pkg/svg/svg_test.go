package svg

import (
	"strings"
	"testing"
	"time"

	"github.com/Maksimka101/daily-routine-calendar/pkg/mark"
	"github.com/Maksimka101/daily-routine-calendar/pkg/timeline"
)

func render(t *testing.T, marks []mark.Mark, now time.Time) string {
	t.Helper()
	return Render(timeline.Compute(marks, now), DefaultTheme())
}

func TestRenderMarksAndNowLine(t *testing.T) {
	marks := []mark.Mark{
		{ID: "wake", Emoji: "☀️", Title: "Wake up", Time: "07:00"},
		{ID: "dinner", Emoji: "🍽️", Title: "Dinner", Time: "19:00"},
	}
	doc := render(t, marks, time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))

	if got := strings.Count(doc, "<circle"); got != 2 {
		t.Fatalf("expected 2 mark circles, got %d", got)
	}
	if !strings.Contains(doc, "Wake up") || !strings.Contains(doc, "Dinner") {
		t.Fatal("mark labels missing")
	}
	if !strings.Contains(doc, ">now</text>") {
		t.Fatal("now label missing while in range")
	}
	if !strings.HasPrefix(doc, "<svg ") || !strings.HasSuffix(strings.TrimSpace(doc), "</svg>") {
		t.Fatal("not a complete svg document")
	}
}

func TestRenderHidesNowOutOfRange(t *testing.T) {
	marks := []mark.Mark{
		{ID: "wake", Emoji: "☀️", Title: "Wake up", Time: "07:00"},
		{ID: "dinner", Emoji: "🍽️", Title: "Dinner", Time: "19:00"},
	}
	doc := render(t, marks, time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC))
	if strings.Contains(doc, ">now</text>") {
		t.Fatal("now label must be hidden out of range")
	}
}

func TestRenderEscapesLabels(t *testing.T) {
	marks := []mark.Mark{
		{ID: "x", Emoji: "📌", Title: "Tea & <biscuits>", Time: "16:00"},
	}
	doc := render(t, marks, time.Date(2026, 3, 14, 16, 0, 0, 0, time.UTC))
	if strings.Contains(doc, "<biscuits>") {
		t.Fatal("label not escaped")
	}
	if !strings.Contains(doc, "Tea &amp; &lt;biscuits&gt;") {
		t.Fatal("escaped label missing")
	}
}

func TestLoadThemeOverlay(t *testing.T) {
	th, err := LoadTheme("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if th != DefaultTheme() {
		t.Fatalf("empty path must return the defaults, got %+v", th)
	}

	base := DefaultTheme()
	base.merge(Theme{Background: "#000000", FontSize: 18})
	if base.Background != "#000000" || base.FontSize != 18 {
		t.Fatalf("overlay lost: %+v", base)
	}
	if base.Rail != DefaultTheme().Rail {
		t.Fatalf("unset overlay field clobbered: %+v", base)
	}
}
