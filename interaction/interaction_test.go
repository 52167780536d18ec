package interaction

import (
	"testing"

	"github.com/etnz/pricechart/date"
	"github.com/etnz/pricechart/geometry"
)

func TestNearest(t *testing.T) {
	xs := []float64{0, 10, 20, 30, 40}
	tests := []struct {
		name   string
		cursor float64
		want   int
	}{
		{"before first", -5, 0},
		{"on first", 0, 0},
		{"closer to left", 14, 1},
		{"closer to right", 16, 2},
		{"exactly on a point", 30, 3},
		{"tie goes to the earlier point", 15, 1},
		{"tie at the start", 5, 0},
		{"tie at the end", 35, 3},
		{"after last", 99, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nearest(xs, tt.cursor); got != tt.want {
				t.Errorf("Nearest(%v) = %d, want %d", tt.cursor, got, tt.want)
			}
		})
	}
}

func TestNearestEmpty(t *testing.T) {
	if got := Nearest(nil, 3); got != -1 {
		t.Errorf("Nearest(nil) = %d, want -1", got)
	}
}

// TestNearestTieBreak checks the tie-break on every pair of a larger, uneven grid.
func TestNearestTieBreak(t *testing.T) {
	xs := []float64{1, 2, 4, 8, 16, 32, 64, 128}
	for i := 0; i+1 < len(xs); i++ {
		mid := (xs[i] + xs[i+1]) / 2
		if got := Nearest(xs, mid); got != i {
			t.Errorf("Nearest(%v) = %d, want %d", mid, got, i)
		}
	}
}

type flat int

func (f flat) Len() int             { return int(f) }
func (f flat) Price(i int) float64  { return float64(i) }
func (f flat) Date(i int) date.Date { return date.New(2025, 1, 1+i) }

func TestLocate(t *testing.T) {
	l := geometry.New(flat(11), geometry.Viewport{Width: 100, Height: 100}, geometry.Padding{})
	if i, ok := Locate(l, 50, 50); !ok || i != 5 {
		t.Errorf("Locate(50, 50) = %d, %v want 5, true", i, ok)
	}
	if i, ok := Locate(l, 150, 50); ok || i != -1 {
		t.Errorf("Locate(150, 50) = %d, %v want -1, false", i, ok)
	}
	if i, ok := Locate(l, 50, -1); ok || i != -1 {
		t.Errorf("Locate(50, -1) = %d, %v want -1, false", i, ok)
	}
	empty := geometry.New(flat(0), geometry.Viewport{Width: 100, Height: 100}, geometry.Padding{})
	if _, ok := Locate(empty, 50, 50); ok {
		t.Errorf("Locate() on empty layout must not find a point")
	}
	if _, ok := Locate(nil, 50, 50); ok {
		t.Errorf("Locate() on nil layout must not find a point")
	}
}

func TestHighlight(t *testing.T) {
	h := NewHighlight(3, 4, 0)
	if h.Core.R != 4 || h.Halo.R != 10 {
		t.Errorf("radii = core %v halo %v, want 4 and 10", h.Core.R, h.Halo.R)
	}
	if h.Halo.Opacity >= h.Core.Opacity {
		t.Errorf("halo must be translucent: %+v", h)
	}
	if h.Halo.X != h.Core.X || h.Halo.Y != h.Core.Y {
		t.Errorf("halo and core must be concentric: %+v", h)
	}
}
