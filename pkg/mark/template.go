package mark

// Template describes one default mark: its content and a fixed minute offset
// from the schedule anchor it belongs to. Morning templates anchor on wake
// time, evening templates on bedtime. Entries are listed in display order.
type Template struct {
	ID          string
	Emoji       string
	Title       string
	Description string
	Offset      int
}

// MorningTemplates returns the morning group, offsets relative to wake time.
func MorningTemplates() []Template {
	return []Template{
		{ID: "wake", Emoji: "☀️", Title: "Wake up", Description: "Start of the day", Offset: 0},
		{ID: "breakfast", Emoji: "🍳", Title: "Breakfast", Description: "Within half an hour of waking", Offset: 30},
		{ID: "last-coffee", Emoji: "☕", Title: "Last coffee", Description: "No caffeine after this", Offset: 360},
		{ID: "lunch", Emoji: "🥗", Title: "Lunch", Description: "", Offset: 300},
	}
}

// EveningTemplates returns the evening group, offsets relative to bedtime.
// The last entry is the sleep anchor.
func EveningTemplates() []Template {
	return []Template{
		{ID: "gym", Emoji: "🏋️", Title: "Gym", Description: "", Offset: -240},
		{ID: "dinner", Emoji: "🍽️", Title: "Dinner", Description: "Three hours before bed", Offset: -180},
		{ID: "no-screens", Emoji: "📵", Title: "No screens", Description: "Wind down", Offset: -60},
		{ID: "sleep", Emoji: "😴", Title: "Sleep", Description: "End of the day", Offset: 0},
	}
}

// Templates returns both groups in display order, morning first.
func Templates() []Template {
	return append(MorningTemplates(), EveningTemplates()...)
}

// SleepTemplateID is the id of the evening group's designated anchor mark.
func SleepTemplateID() string {
	evening := EveningTemplates()
	return evening[len(evening)-1].ID
}

// IsMorningID reports membership in the morning template group.
func IsMorningID(id string) bool {
	for _, t := range MorningTemplates() {
		if t.ID == id {
			return true
		}
	}
	return false
}

// IsEveningID reports membership in the evening template group.
func IsEveningID(id string) bool {
	for _, t := range EveningTemplates() {
		if t.ID == id {
			return true
		}
	}
	return false
}

// IsDefaultID reports whether id belongs to any template.
func IsDefaultID(id string) bool {
	return IsMorningID(id) || IsEveningID(id)
}
