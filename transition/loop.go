package transition

import "time"

// Copies is the number of times the content of a loop is repeated.
const Copies = 3

// DefaultLoopPeriod is the time to scroll through two copies of a tape.
const DefaultLoopPeriod = 60 * time.Second

// Triple returns items concatenated Copies times.
func Triple[T any](items []T) []T {
	out := make([]T, 0, Copies*len(items))
	for range Copies {
		out = append(out, items...)
	}
	return out
}

// Loop is a seamless, infinite linear scroll over a tripled sequence of Items items.
//
// Over one Period the sequence moves by exactly two copies (two thirds of its
// length), then wraps. Since the content two copies further is identical, the
// wrap is invisible.
type Loop struct {
	Items  int
	Period time.Duration
}

// phase returns the fraction of the period elapsed, in [0, 1).
func (l Loop) phase(elapsed time.Duration) float64 {
	if l.Period <= 0 {
		return 0
	}
	e := elapsed % l.Period
	if e < 0 {
		e += l.Period
	}
	return float64(e) / float64(l.Period)
}

// Shift returns the scroll position in items, in [0, 2*Items).
func (l Loop) Shift(elapsed time.Duration) float64 {
	return float64((Copies-1)*l.Items) * l.phase(elapsed)
}

// Percent returns the translation as a percentage of the tripled sequence length, in [0, 200/3).
func (l Loop) Percent(elapsed time.Duration) float64 {
	return 100 * float64(Copies-1) / Copies * l.phase(elapsed)
}

// Index returns the index, in the tripled sequence, of the first visible item.
func (l Loop) Index(elapsed time.Duration) int { return int(l.Shift(elapsed)) }

// Visible returns n items of tripled starting at the first visible item.
//
// n is clamped to [0, Items], so that the window never runs past the end of tripled.
func Visible[T any](l Loop, tripled []T, elapsed time.Duration, n int) []T {
	if l.Items == 0 || len(tripled) < Copies*l.Items {
		return nil
	}
	n = max(0, min(n, l.Items))
	i := l.Index(elapsed)
	return tripled[i : i+n]
}
