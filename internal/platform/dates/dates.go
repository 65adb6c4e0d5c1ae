// Package dates holds the two display formats used everywhere: calendar-day
// keys ("2026-01-22") and clock strings ("14:05"). Records store both as
// plain strings, matching what the UI renders and what gets persisted.
package dates

import "time"

const keyLayout = "2006-01-02"

// Key formats t as a calendar-day string.
func Key(t time.Time) string {
	return t.Format(keyLayout)
}

// Clock formats t as a 24h HH:MM display string.
func Clock(t time.Time) string {
	return t.Format("15:04")
}

// ParseKey parses a calendar-day string.
func ParseKey(s string) (time.Time, error) {
	return time.Parse(keyLayout, s)
}

// MinutesOfDay returns minutes since midnight for HH:MM strings, used by the
// notification window check. Malformed input reports ok=false.
func MinutesOfDay(hhmm string) (int, bool) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
