// Package transition provides the timing of chart animations: easing curves,
// tweens, the mount and draw-in transitions, the seamless loop of a scrolling
// tape, and cancellable repeating tasks driving them.
package transition

import (
	"math"
	"time"
)

// Ease maps a linear progress in [0, 1] to an eased progress.
type Ease func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseOut is a cubic ease-out: fast at the start, slow at the end.
func EaseOut(t float64) float64 { return 1 - math.Pow(1-t, 3) }

// Tween interpolates a value from From to To over Duration.
type Tween struct {
	From, To float64
	Duration time.Duration
	Ease     Ease // Linear when nil.
}

// Progress returns the eased progress in [0, 1] after elapsed.
func (tw Tween) Progress(elapsed time.Duration) float64 {
	if tw.Duration <= 0 || elapsed >= tw.Duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	t := float64(elapsed) / float64(tw.Duration)
	if tw.Ease != nil {
		return tw.Ease(t)
	}
	return t
}

// At returns the value after elapsed.
func (tw Tween) At(elapsed time.Duration) float64 {
	p := tw.Progress(elapsed)
	if p == 1 {
		return tw.To // exact final value.
	}
	return tw.From + (tw.To-tw.From)*p
}

// Done reports whether the tween is complete after elapsed.
func (tw Tween) Done(elapsed time.Duration) bool { return elapsed >= tw.Duration }

const (
	// MountDuration is the duration of the entrance transition.
	MountDuration = 500 * time.Millisecond
	// MountOffset is the initial vertical offset of a mounting chart, in pixels.
	MountOffset = 20.0
	// DrawInDuration is the duration of the area draw-in.
	DrawInDuration = 1500 * time.Millisecond
)

// Mount is the entrance transition of a chart: it fades in while sliding up.
type Mount struct {
	Opacity Tween
	Offset  Tween
}

// NewMount returns the standard entrance transition.
func NewMount() Mount {
	return Mount{
		Opacity: Tween{From: 0, To: 1, Duration: MountDuration, Ease: EaseOut},
		Offset:  Tween{From: MountOffset, To: 0, Duration: MountDuration, Ease: EaseOut},
	}
}

// At returns the opacity and vertical offset after elapsed.
func (m Mount) At(elapsed time.Duration) (opacity, offset float64) {
	return m.Opacity.At(elapsed), m.Offset.At(elapsed)
}

// Done reports whether the transition is complete after elapsed.
func (m Mount) Done(elapsed time.Duration) bool {
	return m.Opacity.Done(elapsed) && m.Offset.Done(elapsed)
}
