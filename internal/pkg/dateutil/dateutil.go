package dateutil

import (
	"time"
)

const isoDateLayout = "2006-01-02"

// ParseISODate parses a "YYYY-MM-DD" date string into a day-normalized UTC time.
func ParseISODate(s string) (time.Time, error) {
	return time.Parse(isoDateLayout, s)
}

// FormatISODate renders t as "YYYY-MM-DD".
func FormatISODate(t time.Time) string {
	return t.Format(isoDateLayout)
}

// ISOMonth renders t as "YYYY-MM".
func ISOMonth(t time.Time) string {
	return t.Format("2006-01")
}

// ParseISOMonth parses a "YYYY-MM" string into the first day of that month.
func ParseISOMonth(s string) (time.Time, error) {
	return time.Parse("2006-01", s)
}

// MonthLabel renders t as a human-readable month label, e.g. "January 2024".
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

// Day truncates t to midnight UTC of its calendar day. All day-level
// comparisons in this package go through Day so that two instants on the same
// calendar day compare equal.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// DatesInMonth returns every calendar day of the given month in ascending
// order, from the 1st through the last day inclusive.
func DatesInMonth(year int, month time.Month) []time.Time {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var days []time.Time
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// EffectiveDays returns the calendar days of the month containing monthAnchor
// during which a worker was employed: the intersection of the month with
// [joinDate, leftDate] (leftDate inclusive; open-ended when leftDate is nil).
//
// An unparsable joinDate yields no effective days. An unparsable leftDate is
// ignored and the worker is treated as still employed.
func EffectiveDays(monthAnchor time.Time, joinDate string, leftDate *string) []time.Time {
	join, err := ParseISODate(joinDate)
	if err != nil {
		return nil
	}
	join = Day(join)

	var left *time.Time
	if leftDate != nil && *leftDate != "" {
		if parsed, err := ParseISODate(*leftDate); err == nil {
			d := Day(parsed)
			left = &d
		}
	}

	var days []time.Time
	for _, d := range DatesInMonth(monthAnchor.Year(), monthAnchor.Month()) {
		if d.Before(join) {
			continue
		}
		if left != nil && d.After(*left) {
			continue
		}
		days = append(days, d)
	}
	return days
}

// WorkingDays counts the weekdays (Monday through Friday) of the given month.
func WorkingDays(year int, month time.Month) int {
	count := 0
	for _, d := range DatesInMonth(year, month) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

// WeekdaysInMonth returns the weekday dates of the month containing t.
func WeekdaysInMonth(t time.Time) []time.Time {
	var days []time.Time
	for _, d := range DatesInMonth(t.Year(), t.Month()) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days = append(days, d)
		}
	}
	return days
}
