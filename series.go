package pricechart

import (
	"cmp"
	"slices"

	"github.com/etnz/pricechart/date"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultFloor is the minimum price of a point, lower values are clamped.
const DefaultFloor = 20.0

// Series is an immutable, chronologically ordered sequence of points.
//
// A Series has an identity, used to key the views derived from it. It is safe to
// share a Series between views and goroutines.
type Series struct {
	id      uuid.UUID
	points  []Point
	floor   float64
	clamped int
}

type seriesConfig struct {
	floor float64
	log   *zap.Logger
}

// SeriesOption configures NewSeries.
type SeriesOption func(*seriesConfig)

// WithFloor sets the minimum price, DefaultFloor by default.
func WithFloor(floor float64) SeriesOption {
	return func(c *seriesConfig) { c.floor = floor }
}

// WithSeriesLogger sets the logger used to report repaired points.
func WithSeriesLogger(l *zap.Logger) SeriesOption {
	return func(c *seriesConfig) { c.log = l }
}

// NewSeries creates a Series from points.
//
// Points are copied. Data quality problems are repaired rather than reported as
// errors: points are sorted by date (stable), missing or below floor prices are
// clamped to the floor and negative volumes are set to 0. Every repair is logged
// as a warning.
func NewSeries(points []Point, opts ...SeriesOption) *Series {
	c := seriesConfig{floor: DefaultFloor, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}

	s := &Series{
		id:     uuid.New(),
		points: slices.Clone(points),
		floor:  c.floor,
	}

	if !slices.IsSortedFunc(s.points, byDate) {
		c.log.Warn("series is not in chronological order, sorting it", zap.Int("points", len(s.points)))
		slices.SortStableFunc(s.points, byDate)
	}

	for i := range s.points {
		p := &s.points[i]
		if !p.valid(s.floor) {
			c.log.Warn("price below floor, clamping",
				zap.Stringer("on", p.On),
				zap.Float64("price", p.Price),
				zap.Float64("floor", s.floor),
			)
			p.Price = s.floor
			s.clamped++
		}
		if p.Volume < 0 {
			c.log.Warn("negative volume, clamping to 0", zap.Stringer("on", p.On), zap.Int64("volume", p.Volume))
			p.Volume = 0
		}
	}
	return s
}

func byDate(a, b Point) int { return cmp.Compare(a.On.Ordinal(), b.On.Ordinal()) }

// ID returns the identity of the series.
func (s *Series) ID() uuid.UUID {
	if s == nil {
		return uuid.Nil
	}
	return s.id
}

// Len returns the number of points, a nil series is empty.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.points)
}

// At returns the i-th point.
func (s *Series) At(i int) Point { return s.points[i] }

// Floor returns the price floor applied to the series.
func (s *Series) Floor() float64 { return s.floor }

// Clamped returns the number of points whose price was clamped to the floor.
func (s *Series) Clamped() int { return s.clamped }

// Range returns the range of dates covered by the series.
func (s *Series) Range() date.Range {
	if s.Len() == 0 {
		return date.Range{}
	}
	return date.Range{From: s.points[0].On, To: s.points[len(s.points)-1].On}
}
