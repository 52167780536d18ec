package geometry

import (
	"math"
	"strconv"

	"github.com/Rhymond/go-money"
)

// niceStep returns a round step (1, 2 or 5 times a power of ten) splitting span in about n parts.
func niceStep(span float64, n int) float64 {
	if span <= 0 || n <= 0 {
		return 1
	}
	raw := span / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm < 1.5:
		return mag
	case norm < 3:
		return 2 * mag
	case norm < 7:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// yTicks returns round price graduations inside the domain, labelled as money.
func (l *Layout) yTicks(n int, currency string) []Tick {
	step := niceStep(l.Max-l.Min, n)
	fraction := 0
	if step < 1 {
		fraction = 2
	}
	label := currencyLabel(currency, fraction)

	var ticks []Tick
	// use integer multiples of step to avoid accumulating rounding errors.
	// The count bound stops the loop where first+j no longer changes in float64.
	first := math.Ceil(l.Min / step)
	for j := 0; j <= 2*n+1; j++ {
		v := (first + float64(j)) * step
		if v > l.Max {
			break
		}
		ticks = append(ticks, Tick{Pos: l.ScaleY(v), Value: v, Label: label(v)})
	}
	return ticks
}

// xTicks returns up to n evenly spaced graduations on points, labelled with short dates.
func (l *Layout) xTicks(data Data, n int) []Tick {
	count := len(l.Points)
	n = min(n, count)
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Tick{{Pos: l.Points[0].X, Value: 0, Label: data.Date(0).Short()}}
	}
	ticks := make([]Tick, 0, n)
	previous := -1
	for j := range n {
		i := int(math.Round(float64(j) * float64(count-1) / float64(n-1)))
		if i == previous {
			continue
		}
		previous = i
		ticks = append(ticks, Tick{Pos: l.Points[i].X, Value: float64(i), Label: data.Date(i).Short()})
	}
	return ticks
}

// currencyLabel returns a function formatting prices in currency with 'fraction' digits.
func currencyLabel(currency string, fraction int) func(float64) string {
	// to get a never nil currency I need to call the Money constructor
	cur := money.New(0, currency).Currency()
	f := money.NewFormatter(fraction, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	scale := math.Pow(10, float64(fraction))
	return func(v float64) string {
		minor := math.Round(v * scale)
		if math.Abs(minor) >= math.MaxInt64 {
			// out of int64 range for the formatter.
			return cur.Grapheme + strconv.FormatFloat(v, 'g', 3, 64)
		}
		return f.Format(int64(minor))
	}
}
