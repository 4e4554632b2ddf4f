package donation

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var errDateFormat = errors.New("invalid date format; expected ISO (YYYY-MM-DD)")

// Time suffixes accepted after the calendar date, separated by 'T' or ' '.
var timeLayouts = []string{
	"15:04",
	"15:04:05",
	"15:04:05.999999999",
	"15:04Z07:00",
	"15:04:05Z07:00",
	"15:04:05.999999999Z07:00",
}

// ParseDate accepts YYYY-MM-DD, optionally followed by an ISO time, and
// returns the calendar date as written (midnight UTC). Any time or offset is dropped.
func ParseDate(raw string) (time.Time, error) {
	if len(raw) < len(DateLayout) {
		return time.Time{}, errDateFormat
	}
	d, err := time.Parse(DateLayout, raw[:len(DateLayout)])
	// year 0 parses but is not a calendar year
	if err != nil || d.Year() < 1 {
		return time.Time{}, errDateFormat
	}
	if rest := raw[len(DateLayout):]; rest != "" {
		if rest[0] != 'T' && rest[0] != ' ' {
			return time.Time{}, errDateFormat
		}
		if !validTime(rest[1:]) {
			return time.Time{}, errDateFormat
		}
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}

func validTime(s string) bool {
	for _, layout := range timeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// FormatDate renders the calendar date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Format(DateLayout)
}
