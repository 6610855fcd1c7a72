// Package datefmt holds the wire formats for dates: date-only fields travel as
// yyyy-MM-dd, timestamps as yyyy-MM-dd HH:mm:ss.
package datefmt

import "time"

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Date formats a date-only field.
func Date(t time.Time) string {
	return t.Format(DateLayout)
}

// DatePtr formats an optional date-only field, empty when unset.
func DatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return Date(*t)
}

// DateTime formats a timestamp.
func DateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// DateTimePtr formats an optional timestamp, nil when unset so the JSON field
// serializes as null.
func DateTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateTimeLayout)
	return &s
}

// ParseDate parses a yyyy-MM-dd value.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
