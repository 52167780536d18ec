package date

import (
	"fmt"
	"iter"
)

// Range represents a range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// Days returns the number of days in the range, boundaries included.
func (r Range) Days() int { return r.To.Sub(r.From) + 1 }

// All returns an iterator that yields each date within the range, inclusive.
func (r Range) All() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// String returns a short human label like "Jan 2 - Mar 4, 2025".
func (r Range) String() string {
	if r.From.Year() == r.To.Year() {
		return fmt.Sprintf("%s - %s, %d", r.From.Short(), r.To.Short(), r.To.Year())
	}
	return fmt.Sprintf("%s - %s", r.From.Format("Jan 2, 2006"), r.To.Format("Jan 2, 2006"))
}
