package pricechart

import (
	"iter"
	"sync"

	"github.com/etnz/pricechart/date"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ViewKey identifies a View: the series it comes from and the window selected.
type ViewKey struct {
	Series uuid.UUID
	Window Window
}

// View is a contiguous trailing sub-sequence of a Series.
//
// A View shares the memory of its series, its points must not be modified.
type View struct {
	key    ViewKey
	points []Point
}

// DeriveWindow returns the trailing points of s selected by w, in order.
//
// The view has min(s.Len(), w.Count()) points. An unknown window selects every
// point, an empty or nil series gives an empty view.
func DeriveWindow(s *Series, w Window) View {
	w = ParseWindow(string(w))
	n := s.Len()
	start := 0
	if c := w.Count(); c >= 0 && c < n {
		start = n - c
	}
	var points []Point
	if n > 0 {
		points = s.points[start:n:n]
	}
	return View{key: ViewKey{Series: s.ID(), Window: w}, points: points}
}

// Key returns the identity of the view.
func (v View) Key() ViewKey { return v.key }

// Window returns the window of the view.
func (v View) Window() Window { return v.key.Window }

// Len returns the number of points in the view.
func (v View) Len() int { return len(v.points) }

// At returns the i-th point of the view.
func (v View) At(i int) Point { return v.points[i] }

// Price returns the price of the i-th point.
func (v View) Price(i int) float64 { return v.points[i].Price }

// Date returns the date of the i-th point.
func (v View) Date(i int) date.Date { return v.points[i].On }

// Points returns an iterator over the points of the view.
func (v View) Points() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i, p := range v.points {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Range returns the range of dates covered by the view.
func (v View) Range() date.Range {
	if len(v.points) == 0 {
		return date.Range{}
	}
	return date.Range{From: v.points[0].On, To: v.points[len(v.points)-1].On}
}

// Change returns the price difference between the last and the first point.
func (v View) Change() float64 {
	if len(v.points) == 0 {
		return 0
	}
	return v.points[len(v.points)-1].Price - v.points[0].Price
}

// ChangePercent returns the change relative to the first point.
func (v View) ChangePercent() Percent {
	if len(v.points) == 0 || v.points[0].Price == 0 {
		return 0
	}
	return Percent(100 * v.Change() / v.points[0].Price)
}

// Store memoizes views by key, so that re-selecting a window returns the very
// same view and avoids redundant layout work.
type Store struct {
	mu    sync.Mutex
	views map[ViewKey]View
	log   *zap.Logger
}

// NewStore returns an empty Store. A nil logger is replaced by a no-op one.
func NewStore(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{views: make(map[ViewKey]View), log: log}
}

// Window returns the view of s for w, computing it on first use.
func (st *Store) Window(s *Series, w Window) View {
	key := ViewKey{Series: s.ID(), Window: ParseWindow(string(w))}
	st.mu.Lock()
	defer st.mu.Unlock()
	if v, ok := st.views[key]; ok {
		return v
	}
	v := DeriveWindow(s, w)
	st.views[key] = v
	st.log.Debug("derived window", zap.Stringer("window", key.Window), zap.Int("points", v.Len()))
	return v
}

// Forget drops every view derived from s.
func (st *Store) Forget(s *Series) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for k := range st.views {
		if k.Series == s.ID() {
			delete(st.views, k)
		}
	}
}

// Len returns the number of memoized views.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.views)
}
