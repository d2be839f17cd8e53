package clock

import (
	"fmt"
	"time"

	"github.com/chronox22/eco-gamer-collective/internal/constants"
)

// Clock resolves "now" and today's day identity in a configured timezone.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// New returns a Clock for the given IANA timezone ("" or "Local" for the system zone).
func New(timezone string) (*Clock, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// Fixed returns a Clock frozen at t, in t's location.
func Fixed(t time.Time) *Clock {
	return &Clock{loc: t.Location(), now: func() time.Time { return t }}
}

// Now returns the current time in the clock's location.
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today returns today's day identity.
func (c *Clock) Today() string {
	return DayIdentity(c.Now())
}

// Location returns the clock's timezone.
func (c *Clock) Location() *time.Location {
	return c.loc
}

// DayIdentity formats the calendar day of t. The result is an equality key
// only; it is never parsed back or compared ordinally.
func DayIdentity(t time.Time) string {
	return t.Format(constants.DayIdentityFormat)
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) at midnight in loc.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}
