// Package biztime centralises time handling. Everything is stored as UTC
// milliseconds since the epoch.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToUnixMilli converts t for storage.
func ToUnixMilli(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

// FromUnixMilli converts a stored value back to a UTC time.
func FromUnixMilli(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
