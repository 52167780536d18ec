// Package geometry maps a series of dated prices into pixel space.
//
// x is time (the ordinal position of a point), y is price, inverted so that
// higher prices are drawn higher. The package also computes axis ticks and SVG
// path data for the line and the area under it.
package geometry

import (
	"fmt"
	"math"
	"strings"

	"github.com/etnz/pricechart/date"
)

// Data is the input of a layout: a chronological sequence of dated prices.
type Data interface {
	Len() int
	Price(i int) float64
	Date(i int) date.Date
}

// Viewport is the size of the drawing surface in pixels.
type Viewport struct{ Width, Height float64 }

// Padding is the space between the viewport and the plot, in pixels.
type Padding struct{ Top, Right, Bottom, Left float64 }

// DefaultViewport is the size of a chart when not configured.
var DefaultViewport = Viewport{Width: 800, Height: 400}

// DefaultPadding leaves room for axis labels on the left and bottom.
var DefaultPadding = Padding{Top: 10, Right: 30, Bottom: 24, Left: 56}

// Margin is the fraction of the price range added above and below the data.
const Margin = 0.1

// FlatBand is the half height of the price domain when all prices are equal.
const FlatBand = 1.0

// RelativeFlat is the price range, relative to the prices, under which they count as equal.
const RelativeFlat = 1e-9

// RelativeFlatBand is the minimum half height of a flat domain, relative to the prices.
const RelativeFlatBand = 1e-6

// Rect is a rectangle in pixel space.
type Rect struct{ Left, Top, Right, Bottom float64 }

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Contains reports whether (x, y) is inside r, boundaries included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Point is a position in pixel space.
type Point struct{ X, Y float64 }

// Tick is an axis graduation.
type Tick struct {
	Pos   float64 // pixel coordinate along the axis.
	Value float64 // price for y ticks, point index for x ticks.
	Label string
}

// Layout is the pixel space projection of Data.
type Layout struct {
	Viewport Viewport
	Plot     Rect
	Min, Max float64 // price domain, margins included.
	Points   []Point
	YTicks   []Tick
	XTicks   []Tick
}

type config struct {
	currency string
	yTicks   int
	xTicks   int
}

// Option configures Layout.
type Option func(*config)

// WithCurrency sets the currency used to label y ticks, "USD" by default.
func WithCurrency(code string) Option { return func(c *config) { c.currency = code } }

// WithTicks sets the target number of y ticks and the maximum number of x ticks.
func WithTicks(y, x int) Option {
	return func(c *config) { c.yTicks, c.xTicks = y, x }
}

// New computes the layout of data in a viewport.
//
// An empty data gives an empty layout: the plot area with no point and no tick.
func New(data Data, vp Viewport, pad Padding, opts ...Option) *Layout {
	c := config{currency: "USD", yTicks: 5, xTicks: 6}
	for _, opt := range opts {
		opt(&c)
	}

	l := &Layout{
		Viewport: vp,
		Plot: Rect{
			Left:   pad.Left,
			Top:    pad.Top,
			Right:  max(pad.Left, vp.Width-pad.Right),
			Bottom: max(pad.Top, vp.Height-pad.Bottom),
		},
	}
	n := data.Len()
	if n == 0 {
		return l
	}

	l.Min, l.Max = domain(data)
	l.Points = make([]Point, n)
	for i := range n {
		l.Points[i] = Point{X: l.ScaleX(i, n), Y: l.ScaleY(data.Price(i))}
	}
	l.YTicks = l.yTicks(c.yTicks, c.currency)
	l.XTicks = l.xTicks(data, c.xTicks)
	return l
}

// domain returns the price range of data with margins.
func domain(data Data) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := range data.Len() {
		p := data.Price(i)
		lo, hi = min(lo, p), max(hi, p)
	}
	scale := max(math.Abs(lo), math.Abs(hi))
	if span := hi - lo; span > RelativeFlat*scale && lo-Margin*span < lo {
		return lo - Margin*span, hi + Margin*span
	}
	// all prices are (nearly) equal, use a band instead of a null range.
	// Large prices get a band proportional to their magnitude, FlatBand would be lost to rounding.
	band := max(FlatBand, RelativeFlatBand*scale)
	return lo - band, hi + band
}

// ScaleX returns the x coordinate of the i-th of n points. A single point is centered.
func (l *Layout) ScaleX(i, n int) float64 {
	if n <= 1 {
		return l.Plot.Left + l.Plot.Width()/2
	}
	return l.Plot.Left + l.Plot.Width()*float64(i)/float64(n-1)
}

// ScaleY returns the y coordinate of a price.
func (l *Layout) ScaleY(v float64) float64 {
	if l.Max == l.Min {
		return l.Plot.Top + l.Plot.Height()/2
	}
	return l.Plot.Bottom - l.Plot.Height()*(v-l.Min)/(l.Max-l.Min)
}

// Xs returns the x coordinates of the points, in increasing order.
func (l *Layout) Xs() []float64 {
	xs := make([]float64, len(l.Points))
	for i, p := range l.Points {
		xs[i] = p.X
	}
	return xs
}

// Empty reports whether the layout has no point.
func (l *Layout) Empty() bool { return len(l.Points) == 0 }

// LinePath returns the SVG path data of the price line.
func (l *Layout) LinePath() string {
	var b strings.Builder
	for i, p := range l.Points {
		cmd := 'L'
		if i == 0 {
			cmd = 'M'
		}
		fmt.Fprintf(&b, "%c%.2f %.2f ", cmd, p.X, p.Y)
	}
	return strings.TrimSpace(b.String())
}

// AreaPath returns the SVG path data of the area between the line and the bottom of the plot.
func (l *Layout) AreaPath() string {
	if l.Empty() {
		return ""
	}
	first, last := l.Points[0], l.Points[len(l.Points)-1]
	return fmt.Sprintf("%s L%.2f %.2f L%.2f %.2f Z", l.LinePath(), last.X, l.Plot.Bottom, first.X, l.Plot.Bottom)
}
