// Package tzclock converts between UTC instants and a user's local calendar.
// Every function is pure; unknown zone names resolve to UTC.
package tzclock

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	MinutesPerDay = 24 * 60
	DateLayout    = "2006-01-02"
)

var (
	ErrInvalidClock = errors.New("invalid time, use HH:MM")
	ErrInvalidDate  = errors.New("invalid date, use YYYY-MM-DD")
	ErrInvalidSpan  = errors.New("invalid duration, use 90, 45m, 1h 30m or 1:30")

	plainMinutes = regexp.MustCompile(`^(\d+)m?$`)
	hoursMinutes = regexp.MustCompile(`^(\d+)h(?:\s*(\d+)m)?$`)
	colonSpan    = regexp.MustCompile(`^(\d+):(\d{1,2})$`)

	locations sync.Map // zone name -> *time.Location
)

// Location resolves tzName, falling back to UTC when the name is unknown.
func Location(tzName string) *time.Location {
	if cached, ok := locations.Load(tzName); ok {
		return cached.(*time.Location)
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil || tzName == "" || tzName == "Local" {
		loc = time.UTC
	}
	locations.Store(tzName, loc)
	return loc
}

// Known reports whether tzName names a real zone rather than degrading to UTC.
func Known(tzName string) bool {
	if tzName == "" || tzName == "Local" {
		return false
	}
	_, err := time.LoadLocation(tzName)
	return err == nil
}

// OffsetMinutes returns signed minutes east of UTC in tzName at the given instant.
func OffsetMinutes(tzName string, at time.Time) int {
	_, offset := at.In(Location(tzName)).Zone()
	return offset / 60
}

// LocalDate returns the calendar date of instant in tzName, as midnight UTC.
func LocalDate(tzName string, instant time.Time) time.Time {
	y, m, d := instant.In(Location(tzName)).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date truncates any time to its calendar date, as midnight UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayBounds returns the half-open UTC interval [from, to) covering localDate in tzName.
// The offset is taken at the local midnight, so it reflects the zone at read time.
func DayBounds(tzName string, localDate time.Time) (from, to time.Time) {
	midnight := Date(localDate)
	offset := OffsetMinutes(tzName, midnight)
	from = midnight.Add(-time.Duration(offset) * time.Minute)
	to = from.Add(24 * time.Hour)
	return from, to
}

// AddDays moves a local date by n calendar days.
func AddDays(localDate time.Time, n int) time.Time {
	return Date(localDate).AddDate(0, 0, n)
}

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func FormatDate(localDate time.Time) string {
	return localDate.Format(DateLayout)
}

// ClockTime is a wall-clock time of day.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns minutes after midnight.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// MinutesToClockTime normalizes any integer into a time of day, so -30 is 23:30
// and 1500 is 01:00.
func MinutesToClockTime(minutes int) ClockTime {
	m := minutes % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return ClockTime{Hour: m / 60, Minute: m % 60}
}

// ParseClock parses "H:MM" or "HH:MM" into minutes after midnight.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, ErrInvalidClock
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, ErrInvalidClock
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, ErrInvalidClock
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, ErrInvalidClock
	}
	return h*60 + m, nil
}

// ParseDuration reads a span of time as minutes: "90", "45m", "2h",
// "1h 30m" or "1:30". Case and surrounding spaces are ignored.
func ParseDuration(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	var hours, minutes string
	if m := plainMinutes.FindStringSubmatch(s); m != nil {
		minutes = m[1]
	} else if m = hoursMinutes.FindStringSubmatch(s); m != nil {
		hours, minutes = m[1], m[2]
	} else if m = colonSpan.FindStringSubmatch(s); m != nil {
		hours, minutes = m[1], m[2]
	} else {
		return 0, ErrInvalidSpan
	}
	total := 0
	for _, part := range []struct {
		raw  string
		mult int
	}{{hours, 60}, {minutes, 1}} {
		if part.raw == "" {
			continue
		}
		n, err := strconv.Atoi(part.raw)
		if err != nil {
			return 0, ErrInvalidSpan
		}
		total += n * part.mult
	}
	return total, nil
}

func FormatMinutes(minutes int) string {
	return MinutesToClockTime(minutes).String()
}
