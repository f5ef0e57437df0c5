package utils

import "time"

// TimeNowUTC returns the current wall clock in UTC.
func TimeNowUTC() time.Time {
	return time.Now().UTC()
}

// FormatISO8601 renders t as an RFC 3339 timestamp in UTC.
func FormatISO8601(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
