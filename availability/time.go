package availability

import (
	"fmt"
	"regexp"
	"time"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// IsValidDate reports whether s is a "YYYY-MM-DD" date string that parses
// as a real calendar date.
func IsValidDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsValidTime reports whether s is an "HH:MM" 24-hour clock string.
func IsValidTime(s string) bool {
	return timeRe.MatchString(s)
}

// ToMinutes converts a valid "HH:MM" string to minutes since midnight.
func ToMinutes(t string) int {
	h := int(t[0]-'0')*10 + int(t[1]-'0')
	m := int(t[3]-'0')*10 + int(t[4]-'0')
	return h*60 + m
}

// ToClock converts minutes since midnight back to "HH:MM".
func ToClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// WeekdayOf returns the calendar weekday of a "YYYY-MM-DD" date,
// 0=Sunday .. 6=Saturday. Plain date arithmetic, no timezone conversion.
func WeekdayOf(date string) (int, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, err
	}
	return int(d.Weekday()), nil
}

// DateOf formats a wall-clock instant as "YYYY-MM-DD".
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}
