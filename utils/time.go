package utils

import (
	"fmt"
	"time"
)

const (
	dbDateTimeLayout = "2006-01-02 15:04:05"
	dateOnlyLayout   = "2006-01-02"
)

// NowDB returns the current time formatted for DATETIME columns.
func NowDB() string {
	return time.Now().Format(dbDateTimeLayout)
}

// FormatDateTimeForDB formats a time for DATETIME columns.
func FormatDateTimeForDB(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dbDateTimeLayout)
}

// ParseUserDate parses incoming user-supplied date/time strings.
func ParseUserDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time string")
	}

	layouts := []string{
		time.RFC3339,
		dbDateTimeLayout,
		dateOnlyLayout,
	}

	for _, layout := range layouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported time format: %s", value)
}
