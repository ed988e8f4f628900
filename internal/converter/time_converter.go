package converter

import (
	"errors"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
)

var errUnrecognizedTime = errors.New("unrecognized time format")

// dateTimeLayouts are tried in order; zone-less values are read as UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	DateTimeLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// ParseDateTime parses an appointment timestamp and normalizes it to UTC.
func ParseDateTime(value string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errUnrecognizedTime
}

// FormatDate renders a nullable date, keeping nil as nil.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

func FormatDateTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}
