package clock

import (
	"fmt"
	"time"
)

// Clock is the single source of "now" for card expiry checks.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in a fixed location.
type System struct {
	loc *time.Location
}

// NewSystem resolves location by IANA name; an empty name means UTC.
func NewSystem(location string) (*System, error) {
	if location == "" {
		return &System{loc: time.UTC}, nil
	}
	loc, err := time.LoadLocation(location)
	if err != nil {
		return nil, fmt.Errorf("load clock location: %w", err)
	}
	return &System{loc: loc}, nil
}

func (s *System) Now() time.Time {
	return time.Now().In(s.loc)
}

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
