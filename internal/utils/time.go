package utils

import "time"

const (
	layoutDisplay  = "Jan 02, 2006 15:04"
	layoutDayLabel = "Jan 02"
)

// FormatDisplay formats a timestamp the way booking rows show it ("Aug 31, 2026 14:05").
func FormatDisplay(t time.Time) string {
	return t.In(time.Local).Format(layoutDisplay)
}

// FormatDayLabel formats a day for the 7-day trend axis ("Aug 31").
func FormatDayLabel(t time.Time) string {
	return t.In(time.Local).Format(layoutDayLabel)
}
