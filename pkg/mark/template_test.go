package mark

import (
	"testing"
)

func TestTemplateGroups(t *testing.T) {
	if got := len(Templates()); got != 8 {
		t.Fatalf("expected 8 templates, got %d", got)
	}
	for _, tpl := range MorningTemplates() {
		if !IsMorningID(tpl.ID) || IsEveningID(tpl.ID) {
			t.Fatalf("%s misclassified", tpl.ID)
		}
	}
	for _, tpl := range EveningTemplates() {
		if !IsEveningID(tpl.ID) || IsMorningID(tpl.ID) {
			t.Fatalf("%s misclassified", tpl.ID)
		}
	}
}

func TestSleepTemplateIsLastEvening(t *testing.T) {
	if got := SleepTemplateID(); got != "sleep" {
		t.Fatalf("expected sleep anchor, got %s", got)
	}
}

func TestIsDefaultID(t *testing.T) {
	if !IsDefaultID("wake") || !IsDefaultID("sleep") {
		t.Fatal("template ids must be default")
	}
	if IsDefaultID("") || IsDefaultID(NewID()) {
		t.Fatal("generated ids must not be default")
	}
}

func TestNewFillsDefaults(t *testing.T) {
	m := New("sched", "", "", "", "")
	if m.Emoji != DefaultEmoji || m.Title != DefaultTitle || m.Time != DefaultTime {
		t.Fatalf("defaults not applied: %+v", m)
	}
	if m.Description != "" {
		t.Fatalf("description should stay empty, got %q", m.Description)
	}
	if m.ID == "" || m.IsDefault() {
		t.Fatalf("user mark id wrong: %q", m.ID)
	}

	m2 := New("sched", "🐕", "Walk", "around the block", "18:30")
	if m2.Emoji != "🐕" || m2.Title != "Walk" || m2.Time != "18:30" {
		t.Fatalf("explicit fields overridden: %+v", m2)
	}
	if m.ID == m2.ID {
		t.Fatal("ids must be unique")
	}
}
