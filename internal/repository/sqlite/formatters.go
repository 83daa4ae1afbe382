package sqlite

import (
	"time"
)

// dbTimeLayout is fixed width so that string order matches time order
const dbTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// FormatTimeForDB formats t in UTC with nanosecond precision for storage
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(dbTimeLayout)
}

// ParseTimeFromDB parses a timestamp written by FormatTimeForDB.
// Plain RFC3339 values are accepted as well.
func ParseTimeFromDB(s string) (time.Time, error) {
	t, err := time.Parse(dbTimeLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, err
		}
	}
	return t.UTC(), nil
}
