package training

import "time"

// DateLayout is the calendar date format used for plan, activity and meal dates.
const DateLayout = "2006-01-02"

// Weekday is a Monday-first day of the week (Monday = 0 ... Sunday = 6).
// time.Weekday starts on Sunday, so always convert through WeekdayOf.
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

// DaysInWeek is the number of days covered by a plan.
const DaysInWeek = 7

var weekdayNames = [DaysInWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Weekdays lists every weekday in plan order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "Unknown"
	}
	return weekdayNames[d]
}

// Short returns the three letter label ("Mon", "Tue", ...).
func (d Weekday) Short() string {
	return d.String()[:3]
}

// WeekdayOf maps a time.Weekday (Sunday = 0) onto the Monday-first scheme.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// WeekStart returns the Monday on or before t, truncated to midnight in t's location.
// A Sunday rolls back to the preceding Monday.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(WeekdayOf(day)))
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
