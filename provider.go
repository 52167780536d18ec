package pricechart

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/etnz/pricechart/date"
)

// SeriesProvider supplies the points of a series, in chronological order.
//
// It is the seam between the chart and a real data feed.
type SeriesProvider interface {
	Points(ctx context.Context) ([]Point, error)
}

// LoadSeries reads all points from p and builds a Series.
func LoadSeries(ctx context.Context, p SeriesProvider, opts ...SeriesOption) (*Series, error) {
	points, err := p.Points(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load series: %w", err)
	}
	return NewSeries(points, opts...), nil
}

// RandomWalk is a deterministic generator of daily points, a stand-in for a real feed.
//
// The same Seed always produces the same points. Prices follow a random walk
// starting at Start, each step moving by at most Step/2 up or down. Volumes are
// uniform in [500000, 1500000).
type RandomWalk struct {
	Seed  uint64
	Count int       // number of points, 365 by default.
	End   date.Date // date of the last point, today by default.
	Start float64   // initial price, 100 by default.
	Step  float64   // maximum amplitude of a step, 5 by default.
}

// Points implements SeriesProvider.
func (r RandomWalk) Points(ctx context.Context) ([]Point, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.Count <= 0 {
		r.Count = 365
	}
	if r.End.IsZero() {
		r.End = date.Today()
	}
	if r.Start == 0 {
		r.Start = 100
	}
	if r.Step == 0 {
		r.Step = 5
	}

	rng := rand.New(rand.NewPCG(r.Seed, r.Seed^0x9e3779b97f4a7c15))
	points := make([]Point, 0, r.Count)
	val := r.Start
	for i := range r.Count {
		val += (rng.Float64() - 0.5) * r.Step
		points = append(points, Point{
			On:     r.End.Add(i - (r.Count - 1)),
			Price:  val,
			Volume: rng.Int64N(1_000_000) + 500_000,
		})
	}
	return points, nil
}
