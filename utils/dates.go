package utils

import (
	"fmt"
	"time"
)

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDateTime parses an ISO-8601-ish date-time string, with or without
// zone and seconds.
func ParseDateTime(value string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", value)
}

// ParseWallClock parses a bare "HH:MM" (or "HH:MM:SS") opening or closing
// time, falling back to the date-time layouts so a full timestamp stays
// accepted.
func ParseWallClock(value string) (time.Time, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return ParseDateTime(value)
}

// ParseDate parses a calendar date, falling back to the date-time layouts
// so a full timestamp is accepted where only a date is required.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return ParseDateTime(value)
}
