// Package timeutil provides calendar-day identifiers and the human duration
// grammar shared by the CLI.
package timeutil

import "time"

const layoutDay = "2006-01-02"

// Day identifies one calendar day in the machine's local timezone, as a plain
// "YYYY-MM-DD" string. Days are only ever compared for equality; a Day is
// never interpreted as an instant, which keeps same-day checks immune to
// clock-of-day and DST effects.
type Day string

// DayOf returns the Day containing t, in local time.
func DayOf(t time.Time) Day {
	return Day(t.Local().Format(layoutDay))
}

// Today returns the current local Day.
func Today() Day {
	return DayOf(time.Now())
}

// String returns the raw YYYY-MM-DD form.
func (d Day) String() string {
	return string(d)
}
