package store

// Settings is the single process-wide preferences record.
type Settings struct {
	ActiveScheduleID string `json:"activeScheduleId,omitempty"`
}

// SettingsStore holds the settings record.
type SettingsStore struct {
	r Records
}

// Get returns the stored settings, or a zero value when absent.
func (s *SettingsStore) Get() Settings {
	var out Settings
	readJSON(s.r, settingsKey, &out)
	return out
}

// Save replaces the settings record.
func (s *SettingsStore) Save(v Settings) {
	writeJSON(s.r, settingsKey, v)
}
