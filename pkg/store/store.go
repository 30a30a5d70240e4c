// Package store persists the planner's three records — schedules, marks and
// settings — as JSON values behind a small key-value boundary. Read and write
// failures are logged and absorbed here: callers always receive a well-formed
// (possibly empty) snapshot, so a broken store is indistinguishable from an
// empty one.
package store

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	schedulesKey = "schedules"
	marksKey     = "marks"
	settingsKey  = "settings"
)

// Records is the raw persistence boundary the typed stores sit on. Read
// returns (nil, nil) when the key has never been written.
type Records interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
}

// Stores bundles the three typed stores over one Records backend.
type Stores struct {
	Schedules *ScheduleStore
	Marks     *MarkStore
	Settings  *SettingsStore
}

// New wires the typed stores onto an existing Records backend.
func New(r Records) *Stores {
	return &Stores{
		Schedules: &ScheduleStore{r: r},
		Marks:     &MarkStore{r: r},
		Settings:  &SettingsStore{r: r},
	}
}

// Load creates disk-backed stores using the provided config, falling back to
// LoadConfig when cfg is nil.
func Load(cfg Config) (*Stores, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return New(newDiskRecords(cfg.BasePath())), nil
}

// readJSON unmarshals the record at key into out, absorbing every failure.
// It reports whether out now holds stored data.
func readJSON(r Records, key string, out any) bool {
	data, err := r.Read(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: read %s: %v\n", key, err)
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		fmt.Fprintf(os.Stderr, "store: decode %s: %v\n", key, err)
		return false
	}
	return true
}

// writeJSON marshals v into the record at key, absorbing every failure.
func writeJSON(r Records, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: encode %s: %v\n", key, err)
		return
	}
	if err := r.Write(key, data); err != nil {
		fmt.Fprintf(os.Stderr, "store: write %s: %v\n", key, err)
	}
}
