package progress

import (
	"fmt"
	"time"
)

// DayProvider tells which calendar day it currently is in a fixed location.
// Days are represented as midnight UTC of that calendar date, the same shape
// postgres DATE columns scan into.
type DayProvider struct {
	loc *time.Location
	now func() time.Time
}

func NewDayProvider(loc *time.Location, now func() time.Time) *DayProvider {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &DayProvider{
		loc: loc,
		now: now,
	}
}

// NewDayProviderForZone builds a wall-clock provider for an IANA zone name ("UTC", "Local", "Europe/Berlin").
func NewDayProviderForZone(zone string) (*DayProvider, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load day time zone [%s]: %w", zone, err)
	}
	return NewDayProvider(loc, time.Now), nil
}

func (p *DayProvider) Today() time.Time {
	return DateOf(p.now(), p.loc)
}

func (p *DayProvider) Location() *time.Location {
	return p.loc
}

// DateOf returns the calendar date of t as observed in loc.
func DateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	day, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: malformed date [%s]", ErrInvalidInput, s)
	}
	return day, nil
}
