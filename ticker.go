package pricechart

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/etnz/pricechart/transition"
	"gopkg.in/yaml.v3"
)

// TickerItem is a quote displayed on a scrolling ticker tape.
type TickerItem struct {
	Symbol        string `yaml:"symbol"`
	Price         string `yaml:"price"`
	Change        string `yaml:"change"`
	ChangePercent string `yaml:"change_percent"`
	Up            bool   `yaml:"up"`
}

// DefaultTickerItems is a static tape used when no item file is given.
var DefaultTickerItems = []TickerItem{
	{"AAPL", "172.45", "+1.23", "+0.72%", true},
	{"GOOGL", "135.80", "-0.54", "-0.40%", false},
	{"TSLA", "245.01", "+5.12", "+2.13%", true},
	{"AMZN", "134.99", "-1.89", "-1.38%", false},
	{"MSFT", "329.87", "+2.50", "+0.76%", true},
	{"NVDA", "460.18", "+10.45", "+2.32%", true},
	{"META", "301.76", "-3.11", "-1.02%", false},
	{"SPY", "450.55", "+0.98", "+0.22%", true},
	{"BTC-USD", "37,450.12", "+850.40", "+2.32%", true},
	{"ETH-USD", "2,050.50", "-25.10", "-1.21%", false},
}

// DecodeTickerItems reads a yaml list of ticker items, in flow or block style:
//
//	[{symbol: AAPL, price: "172.45", change: "+1.23", change_percent: "+0.72%", up: true}]
func DecodeTickerItems(r io.Reader) ([]TickerItem, error) {
	var items []TickerItem
	if err := yaml.NewDecoder(r).Decode(&items); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil // empty file
		}
		return nil, fmt.Errorf("parse ticker items: %w", err)
	}
	for i, it := range items {
		if it.Symbol == "" {
			return nil, fmt.Errorf("parse ticker items: item %d has no symbol", i)
		}
	}
	return items, nil
}

// Tape is a ticker tape scrolling forever over its items.
//
// Items are laid out three times in a row, and the tape scrolls by two copies per
// period before wrapping, so the wrap is invisible.
type Tape struct {
	mu      sync.Mutex
	loop    transition.Loop
	tripled []TickerItem
	elapsed time.Duration
	task    transition.Task
}

// NewTape returns a tape over items. A non positive period uses transition.DefaultLoopPeriod.
func NewTape(items []TickerItem, period time.Duration) *Tape {
	if period <= 0 {
		period = transition.DefaultLoopPeriod
	}
	return &Tape{
		loop:    transition.Loop{Items: len(items), Period: period},
		tripled: transition.Triple(items),
	}
}

// Start scrolls the tape on s, every frame period. Starting a started tape restarts it.
func (t *Tape) Start(s transition.Scheduler, frame time.Duration) {
	t.Stop()
	task := s.Every(frame, func(elapsed time.Duration) bool {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.elapsed = elapsed
		return true
	})
	t.mu.Lock()
	t.task = task
	t.mu.Unlock()
}

// Stop stops scrolling. No frame runs after Stop returns.
func (t *Tape) Stop() {
	t.mu.Lock()
	task := t.task
	t.task = nil
	t.mu.Unlock()
	if task != nil {
		task.Cancel()
	}
}

// Seek moves the tape to the position it has after elapsed.
func (t *Tape) Seek(elapsed time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.elapsed = elapsed
}

// Visible returns the n items currently visible, at most one copy of the items.
func (t *Tape) Visible(n int) []TickerItem {
	t.mu.Lock()
	defer t.mu.Unlock()
	return transition.Visible(t.loop, t.tripled, t.elapsed, n)
}

// Offset returns the translation of the tape as a percentage of its tripled length.
func (t *Tape) Offset() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loop.Percent(t.elapsed)
}

// Len returns the number of items in the tripled tape.
func (t *Tape) Len() int { return len(t.tripled) }

// At returns the i-th item of the tripled tape.
func (t *Tape) At(i int) TickerItem { return t.tripled[i] }
