// Package interaction resolves pointer positions against a chart layout.
package interaction

import (
	"slices"

	"github.com/etnz/pricechart/geometry"
)

// Nearest returns the index of the x coordinate closest to cursor, or -1 if xs is empty.
//
// xs must be sorted in increasing order. When cursor is exactly halfway between
// two points, the earlier one wins.
func Nearest(xs []float64, cursor float64) int {
	n := len(xs)
	if n == 0 {
		return -1
	}
	// xs is sorted, so we can use binary search.
	i, found := slices.BinarySearch(xs, cursor)
	switch {
	case found:
		return i
	case i == 0:
		return 0
	case i == n:
		return n - 1
	}
	// Not found: cursor lies between xs[i-1] and xs[i].
	if cursor-xs[i-1] <= xs[i]-cursor {
		return i - 1
	}
	return i
}

// Locate returns the index of the point nearest to the pointer at (x, y) and true,
// or -1 and false when the pointer is outside the plot or the layout is empty.
func Locate(l *geometry.Layout, x, y float64) (int, bool) {
	if l == nil || l.Empty() || !l.Plot.Contains(x, y) {
		return -1, false
	}
	return Nearest(l.Xs(), x), true
}
