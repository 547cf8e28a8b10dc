package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Weekday is a lowercase english weekday name used as a working hours key
type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

// Weekdays lists weekday names indexed by time.Weekday (Sunday first)
var Weekdays = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WeekdayOf returns the weekday name of t in t's own location
func WeekdayOf(t time.Time) Weekday {
	return Weekdays[t.Weekday()]
}

// IsValid returns true for the seven known weekday names
func (w Weekday) IsValid() bool {
	for _, d := range Weekdays {
		if d == w {
			return true
		}
	}
	return false
}

// DayHours is the opening configuration of a single weekday.
// End names the last open hour: an end of "18:00" keeps the 18:00 hour open.
type DayHours struct {
	Enabled bool             `json:"enabled"`
	Start   types.TimeString `json:"start"`
	End     types.TimeString `json:"end"`
}

// Validate checks time formats and that start hour is before end hour for enabled days
func (d DayHours) Validate() error {
	if !d.Enabled {
		return nil
	}
	start, err := types.NewTimeStringFromString(string(d.Start))
	if err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidWorkingHours, err)
	}
	end, err := types.NewTimeStringFromString(string(d.End))
	if err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidWorkingHours, err)
	}
	if start.Hour() >= end.Hour() {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidWorkingHours, d.Start, d.End)
	}
	return nil
}

// WorkingHours maps weekday names to their configuration.
// A nil map means working hours are not configured; a missing day is closed.
type WorkingHours map[Weekday]DayHours

// Day returns the configuration of the weekday
func (w WorkingHours) Day(day Weekday) (DayHours, bool) {
	hours, ok := w[day]
	return hours, ok
}

// Validate checks every configured day, unknown keys included
func (w WorkingHours) Validate() error {
	for day, hours := range w {
		if !day.IsValid() {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidWorkingHours, day)
		}
		if err := hours.Validate(); err != nil {
			return fmt.Errorf("%s: %w", day, err)
		}
	}
	return nil
}
