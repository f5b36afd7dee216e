// Package dateutil provides date and clock parsing utilities.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format or a weekday keyword")
	ErrInvalidTimeFormat = errors.New("time must look like 09:00, 9:30pm or 24:00")
)

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseDate parses a date relative to now, in loc. Accepted forms:
//   - Empty string or "today"
//   - "tomorrow", "yesterday"
//   - Weekday names: "monday" through "sunday" (next occurrence, always future)
//   - Next prefixed: "next-monday" through "next-sunday", "next-week"
//   - Absolute date: "2025-01-15" (YYYY-MM-DD)
//
// All inputs are case-insensitive. The result is midnight in loc.
func ParseDate(s string, now time.Time, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	today := TruncateToDay(now.In(loc))
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "next-week":
		return today.AddDate(0, 0, 7), nil
	}

	if strings.HasPrefix(input, "next-") {
		if targetDay, ok := weekdayMap[strings.TrimPrefix(input, "next-")]; ok {
			return nextWeekday(today, targetDay), nil
		}
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}

	if targetDay, ok := weekdayMap[input]; ok {
		return nextWeekday(today, targetDay), nil
	}

	result, err := time.ParseInLocation("2006-01-02", input, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return result, nil
}

// nextWeekday returns the next occurrence of the given weekday after today.
// If today is the target weekday, returns one week from today.
func nextWeekday(today time.Time, target time.Weekday) time.Time {
	daysUntil := int(target) - int(today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDate(0, 0, daysUntil)
}

// ParseClock parses a wall-clock time into minutes since midnight.
// Accepts 24-hour "09:00", "9:00", "24:00" and 12-hour "9am", "9:30 PM".
func ParseClock(s string) (int, error) {
	input := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if input == "" {
		return 0, ErrInvalidTimeFormat
	}

	meridiem := ""
	for _, suffix := range []string{"am", "pm"} {
		if strings.HasSuffix(input, suffix) {
			meridiem = suffix
			input = strings.TrimSuffix(input, suffix)
			break
		}
	}

	hourStr, minStr, hasMinutes := strings.Cut(input, ":")
	if !hasMinutes {
		minStr = "00"
	}
	if len(hourStr) == 0 || len(hourStr) > 2 || len(minStr) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	hour, err1 := strconv.Atoi(hourStr)
	minute, err2 := strconv.Atoi(minStr)
	if err1 != nil || err2 != nil || minute > 59 || hour < 0 || minute < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	switch meridiem {
	case "am", "pm":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		hour %= 12
		if meridiem == "pm" {
			hour += 12
		}
	default:
		if !hasMinutes {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		if hour > 24 || (hour == 24 && minute != 0) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
	}
	return hour*60 + minute, nil
}

// At returns the instant minutes after midnight of day, in day's location.
// 24:00 resolves to the next day's midnight.
func At(day time.Time, minutes int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, day.Location())
}

// MinutesToClock formats minutes since midnight as "HH:MM".
func MinutesToClock(m int) string {
	if m < 0 {
		m = 0
	}
	if m > 24*60 {
		m = 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// WeekRange returns the first and last day of the week containing t, for a
// week beginning on first.
func WeekRange(t time.Time, first time.Weekday) (start, end time.Time) {
	t = TruncateToDay(t)
	offset := (int(t.Weekday()) - int(first) + 7) % 7
	start = t.AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 6)
	return start, end
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
