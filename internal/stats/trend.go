package stats

import (
	"sort"
)

// Point is a dated value in a progress series.
type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Trend summarises a series. Nil fields are placeholders for values that cannot be
// computed (empty series, single point or a zero first value).
type Trend struct {
	Current  *float64 `json:"current"`
	Average  *float64 `json:"average"`
	TrendPct *float64 `json:"trendPct"`
}

// Direction of a trend.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// TrendSummary sorts points by date ascending and computes the current value, the mean
// and the percentage change from the first to the last point. The input is not modified.
func TrendSummary(points []Point) Trend {
	if len(points) == 0 {
		return Trend{}
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	// YYYY-MM-DD dates order lexically.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	var sum float64
	for _, p := range sorted {
		sum += p.Value
	}
	first := sorted[0].Value
	last := sorted[len(sorted)-1].Value
	avg := sum / float64(len(sorted))

	t := Trend{
		Current: &last,
		Average: &avg,
	}
	if len(sorted) < 2 || first == 0 {
		return t
	}
	pct := (last - first) / first * 100
	t.TrendPct = &pct
	return t
}

// Direction reports whether the series went up, down or stayed flat.
func (t Trend) Direction() Direction {
	switch {
	case t.TrendPct == nil || *t.TrendPct == 0:
		return DirectionFlat
	case *t.TrendPct > 0:
		return DirectionUp
	default:
		return DirectionDown
	}
}
