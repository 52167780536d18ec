package pricechart

import "strings"

// Window is a named trailing sub-range of a series.
type Window string

const (
	OneMonth  Window = "1M"
	SixMonths Window = "6M"
	OneYear   Window = "1Y" // the full range
)

// DefaultWindow is the window used when none, or an unknown one, is selected.
const DefaultWindow = OneYear

// Windows lists the selectable windows, shortest first.
var Windows = []Window{OneMonth, SixMonths, OneYear}

// ParseWindow returns the window named by s.
//
// Parsing never fails: unknown tokens fall back to the full range.
func ParseWindow(s string) Window {
	switch w := Window(strings.ToUpper(strings.TrimSpace(s))); w {
	case OneMonth, SixMonths, OneYear:
		return w
	default:
		return DefaultWindow
	}
}

// Count returns the number of trailing points in the window, or -1 for all points.
func (w Window) Count() int {
	switch w {
	case OneMonth:
		return 30
	case SixMonths:
		return 180
	default:
		return -1
	}
}

// Label returns a human readable name for the window.
func (w Window) Label() string {
	switch w {
	case OneMonth:
		return "1 Month"
	case SixMonths:
		return "6 Months"
	default:
		return "1 Year"
	}
}

func (w Window) String() string { return string(w) }
