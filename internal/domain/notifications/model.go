package notifications

import "time"

// Type colors the notification in the feed.
type Type string

const (
	TypeMedication Type = "medication"
	TypeInfo       Type = "info"
	TypeReport     Type = "report"
	TypeSuccess    Type = "success"
	TypeWarning    Type = "warning"
	TypeError      Type = "error"
)

// Notification is one entry of the append-only feed. Only the read flag
// mutates after creation; deletion removes the entry outright.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      Type      `json:"type"`
	Time      string    `json:"time"` // HH:MM display string
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// Settings gates push delivery: per-category enables plus a daily allowed
// window. Outside the window pushes are suppressed, not queued.
type Settings struct {
	Enabled    bool   `json:"enabled"` // platform permission granted
	Medication bool   `json:"medication"`
	Report     bool   `json:"report"`
	Activity   bool   `json:"activity"`
	StartTime  string `json:"start_time"` // HH:MM
	EndTime    string `json:"end_time"`   // HH:MM
}

func DefaultSettings() Settings {
	return Settings{
		Enabled:    false,
		Medication: true,
		Report:     true,
		Activity:   true,
		StartTime:  "08:00",
		EndTime:    "22:00",
	}
}
