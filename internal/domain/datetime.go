package domain

import "time"

// DateTimeLayout is the wire format for every timestamp exchanged with
// clients and the stats service.
const DateTimeLayout = "2006-01-02 15:04:05"

// FormatDateTime renders t in the wire format.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// ParseDateTime parses a wire-format timestamp.
func ParseDateTime(s string) (time.Time, error) {
	return time.Parse(DateTimeLayout, s)
}
