package mark

import (
	"github.com/google/uuid"
)

// Mark is a single labeled point in time within a schedule. Default marks
// carry a template id from this package; user marks carry a generated one.
type Mark struct {
	ID          string `json:"id"`
	ScheduleID  string `json:"scheduleId"`
	Emoji       string `json:"emoji,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Time        string `json:"time"`
}

// Fallbacks applied to user marks created with missing fields.
const (
	DefaultEmoji = "📌"
	DefaultTitle = "New mark"
	DefaultTime  = "12:00"
)

// New creates a user mark with a fresh id, filling unset fields with the
// package defaults.
func New(scheduleID, emoji, title, description, t string) Mark {
	m := Mark{
		ID:          NewID(),
		ScheduleID:  scheduleID,
		Emoji:       emoji,
		Title:       title,
		Description: description,
		Time:        t,
	}
	m.FillDefaults()
	return m
}

// NewID returns a fresh identifier for a user mark. Collisions are accepted
// as negligible for a single-user store.
func NewID() string {
	return uuid.NewString()
}

// FillDefaults replaces zero-valued presentation fields. Description is left
// alone, empty is a fine description.
func (m *Mark) FillDefaults() {
	if m.Emoji == "" {
		m.Emoji = DefaultEmoji
	}
	if m.Title == "" {
		m.Title = DefaultTitle
	}
	if m.Time == "" {
		m.Time = DefaultTime
	}
}

// IsDefault reports whether the mark was generated from a template.
func (m Mark) IsDefault() bool {
	return IsDefaultID(m.ID)
}
