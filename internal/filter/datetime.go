package filter

import (
	"fmt"
	"time"
)

// ParseDate parses a calendar date. Times of day are rejected.
func ParseDate(value string) (time.Time, error) {
	formats := []string{
		"2006-01-02", // Date only
		"2006/01/02", // Date only, slash separated
	}
	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", value)
}

// ParseTimeOfDay parses a wall-clock time and returns it as an offset from midnight.
func ParseTimeOfDay(value string) (time.Duration, error) {
	formats := []string{
		"15:04:05.999999999", // Nanoseconds
		"15:04:05",           // Seconds
		"15:04",              // Minutes
	}
	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second +
				time.Duration(t.Nanosecond()), nil
		}
	}
	return 0, fmt.Errorf("unable to parse time: %s", value)
}

// CombineDateTime places a time of day on a date. A nil time of day means midnight.
func CombineDateTime(date time.Time, timeOfDay *time.Duration) time.Time {
	y, m, d := date.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if timeOfDay == nil {
		return midnight
	}
	return midnight.Add(*timeOfDay)
}
