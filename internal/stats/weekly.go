// Package stats derives weekly totals, trends and nutrition sums from plan data.
package stats

import (
	"strconv"
	"strings"

	"runnerspro/internal/training"
)

// WeeklyTotals holds per-weekday sums indexed Monday..Sunday.
type WeeklyTotals struct {
	DistanceByDay [training.DaysInWeek]float64 `json:"distanceByDay"`
	DurationByDay [training.DaysInWeek]int     `json:"durationByDay"`
}

// ComputeWeeklyTotals buckets activities by weekday and sums distance (km) and duration
// (minutes). Missing or unparsable metrics contribute zero; activities with malformed
// dates are skipped.
func ComputeWeeklyTotals(activities []training.Activity) WeeklyTotals {
	var totals WeeklyTotals
	for _, a := range activities {
		date, err := training.ParseDate(a.Date)
		if err != nil {
			continue
		}
		day := training.WeekdayOf(date)
		if a.Metrics == nil {
			continue
		}
		totals.DistanceByDay[day] += atofOrZero(a.Metrics.Distance)
		totals.DurationByDay[day] += atoiOrZero(a.Metrics.Duration)
	}
	return totals
}

// TotalDistance sums the distance over the whole week.
func (w WeeklyTotals) TotalDistance() float64 {
	var sum float64
	for _, d := range w.DistanceByDay {
		sum += d
	}
	return sum
}

// TotalDuration sums the duration over the whole week.
func (w WeeklyTotals) TotalDuration() int {
	var sum int
	for _, d := range w.DurationByDay {
		sum += d
	}
	return sum
}

// ActiveDays counts the weekdays with any distance or duration.
func (w WeeklyTotals) ActiveDays() int {
	n := 0
	for i := range w.DistanceByDay {
		if w.DistanceByDay[i] > 0 || w.DurationByDay[i] > 0 {
			n++
		}
	}
	return n
}

func atofOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func atoiOrZero(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(v)
}
