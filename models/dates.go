package models

import "time"

// Date layouts accepted on request bodies and used in responses
const (
	DateFormat     = "2006-01-02"
	FullDateFormat = "2006-01-02, 15:04"
)

// Dates carry no zone. They are parsed and stored with their wall clock in
// UTC, and formatted back without conversion.

// WallClock returns t's wall clock in its own location, expressed in UTC so it
// compares directly with stored dates.
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// FormatDate renders t with DateFormat in UTC
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateFormat)
}

// FormatFullDate renders t with FullDateFormat in UTC
func FormatFullDate(t time.Time) string {
	return t.UTC().Format(FullDateFormat)
}
