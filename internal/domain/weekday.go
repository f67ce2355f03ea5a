package domain

import "time"

// Weekday day of the week used by the schedule grid.
// The enumeration is ISO-style: 0 = Monday ... 6 = Sunday.
// time.Weekday (0 = Sunday) is converted at the boundary via WeekdayFromTime.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Valid returns true if the weekday is within [0, 6]
func (d Weekday) Valid() bool {
	return d >= 0 && d < DaysPerWeek
}

func (d Weekday) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return weekdayNames[d]
}

// WeekdayFromTime converts a time.Time weekday to the 0 = Monday enumeration
func WeekdayFromTime(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % DaysPerWeek)
}

// DaysUntil returns the number of days from d to target, in [0, 6].
// Same day counts as 0.
func (d Weekday) DaysUntil(target Weekday) int {
	dist := int(target) - int(d)
	if dist < 0 {
		dist += DaysPerWeek
	}
	return dist
}

// Midnight truncates t to the start of its calendar day
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
