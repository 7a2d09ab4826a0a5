// Package biztime provides time helpers anchored to the business timezone.
// Storage and transport always use UTC; the business timezone only decides
// where a calendar day starts and ends when a client sends a bare date.
package biztime

import (
	"fmt"
	"sync/atomic"
	"time"
)

const dateLayout = "2006-01-02"

var location atomic.Pointer[time.Location]

// Init sets the business timezone. An empty name selects UTC.
func Init(tz string) error {
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load business timezone %q: %w", tz, err)
	}
	location.Store(loc)
	return nil
}

// Location returns the business timezone, UTC until Init is called.
func Location() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns 00:00:00 of t's business day, in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, Location()).UTC()
}

// EndOfDayUTC returns the last nanosecond of t's business day, in UTC.
func EndOfDayUTC(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 23, 59, 59, 999999999, Location()).UTC()
}

// ParseRangeStart parses an inclusive lower bound. RFC 3339 timestamps are
// taken as-is; a bare YYYY-MM-DD means the start of that business day.
func ParseRangeStart(s string) (time.Time, error) {
	return parseBound(s, StartOfDayUTC)
}

// ParseRangeEnd parses an inclusive upper bound. RFC 3339 timestamps are
// taken as-is; a bare YYYY-MM-DD means the end of that business day.
func ParseRangeEnd(s string) (time.Time, error) {
	return parseBound(s, EndOfDayUTC)
}

func parseBound(s string, day func(time.Time) time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(dateLayout, s, Location()); err == nil {
		return day(t), nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q: expected RFC 3339 or YYYY-MM-DD", s)
}
