// Package schedule defines the named daily routine record.
package schedule

import (
	"github.com/google/uuid"
)

// Schedule is a named daily routine anchored by a wake time and a bedtime,
// both "HH:MM" on the local clock.
type Schedule struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	WakeTime string `json:"wakeTime"`
	Bedtime  string `json:"bedtime"`
}

// The schedule synthesized when none exist.
const (
	DefaultName     = "Ordinary day"
	DefaultWakeTime = "07:00"
	DefaultBedtime  = "22:00"
)

// New creates a schedule with a fresh id.
func New(name, wakeTime, bedtime string) Schedule {
	return Schedule{
		ID:       uuid.NewString(),
		Name:     name,
		WakeTime: wakeTime,
		Bedtime:  bedtime,
	}
}

// Default returns a new default schedule.
func Default() Schedule {
	return New(DefaultName, DefaultWakeTime, DefaultBedtime)
}
