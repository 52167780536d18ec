package pricechart

import (
	"context"
	"testing"

	"github.com/etnz/pricechart/date"
)

// day is the date of the i-th point of test series.
func day(i int) date.Date { return date.New(2025, 1, 1).Add(i) }

// walk returns a deterministic series of n points ending on day(n-1).
func walk(t *testing.T, n int) *Series {
	t.Helper()
	s, err := LoadSeries(context.Background(), RandomWalk{Seed: 42, Count: n, End: day(n - 1)})
	if err != nil {
		t.Fatalf("LoadSeries() error: %v", err)
	}
	return s
}

// ramp returns a series of n points with price 100+i and volume 1000*i.
func ramp(n int) *Series {
	points := make([]Point, n)
	for i := range points {
		points[i] = P(day(i), 100+float64(i), int64(1000*i))
	}
	return NewSeries(points)
}
