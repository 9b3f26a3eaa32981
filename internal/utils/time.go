package utils

import (
	"strings"
	"time"
)

// DayName returns the lowercase weekday name for a date, matching the keys
// of a worker's availability map.
func DayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// TimeOfDayTag maps a starting hour to its time-of-day tag:
// morning [6,14), afternoon [14,22), night [22,24) and [0,6).
func TimeOfDayTag(hour int) string {
	switch {
	case hour >= MorningStartHour && hour < AfternoonStartHour:
		return TimeTagMorning
	case hour >= AfternoonStartHour && hour < NightStartHour:
		return TimeTagAfternoon
	default:
		return TimeTagNight
	}
}

// IsValidTimeTag reports whether a string is a recognized time-of-day tag.
func IsValidTimeTag(tag string) bool {
	switch tag {
	case TimeTagMorning, TimeTagAfternoon, TimeTagNight:
		return true
	}
	return false
}

// IsValidDayName reports whether a string is a lowercase weekday name.
func IsValidDayName(day string) bool {
	switch day {
	case "sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday":
		return true
	}
	return false
}

// IsWeekend reports whether a date falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	weekday := t.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// StartOfDay truncates a time to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
