package transition

import "sync"

// DrawIns remembers which views have already been drawn in.
//
// A view is drawn in only the first time it is rendered: re-selecting a view
// that was already shown does not replay the animation.
type DrawIns[K comparable] struct {
	mu   sync.Mutex
	seen map[K]bool
}

// Start reports whether a draw-in must play for key, and marks key as drawn.
func (d *DrawIns[K]) Start(key K) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.seen == nil {
		d.seen = make(map[K]bool)
	}
	if d.seen[key] {
		return false
	}
	d.seen[key] = true
	return true
}

// Seen reports whether key was already drawn in.
func (d *DrawIns[K]) Seen(key K) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seen[key]
}

// DrawIn returns the standard draw-in tween, from 0 (nothing drawn) to 1 (fully drawn).
func DrawIn() Tween {
	return Tween{From: 0, To: 1, Duration: DrawInDuration, Ease: EaseOut}
}
