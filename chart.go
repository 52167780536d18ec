package pricechart

import (
	"context"
	"sync"
	"time"

	"github.com/etnz/pricechart/date"
	"github.com/etnz/pricechart/geometry"
	"github.com/etnz/pricechart/interaction"
	"github.com/etnz/pricechart/transition"
	"go.uber.org/zap"
)

// DefaultSeed is the seed of the series generated when a chart has none.
const DefaultSeed = 1

// Props are the inputs of a chart, supplied by the surrounding application.
type Props struct {
	Title       string
	Description string
	Series      *Series // a seeded RandomWalk when nil.
	Currency    string  // DefaultCurrency when empty.
	Class       string  // passed through to renderers untouched.

	// OnPointSelected is called when the pointer activates a new point.
	OnPointSelected func(PointInfo)
}

// Frame is a snapshot of everything a renderer needs to draw a chart.
type Frame struct {
	Title       string
	Description string
	Class       string
	Currency    string
	Window      Window
	Windows     []Window
	Range       date.Range
	Change      Money
	ChangePct   Percent
	Last        Money
	Layout      *geometry.Layout
	State       ChartState

	Active    *PointInfo
	Tooltip   []TooltipRow // empty when no point is active.
	Highlight *interaction.Highlight

	Opacity float64 // entrance transition, 0 to 1.
	OffsetY float64 // entrance transition, in pixels.
	Draw    float64 // draw-in progress of the area, 0 to 1.
}

type chartConfig struct {
	viewport  geometry.Viewport
	padding   geometry.Padding
	scheduler transition.Scheduler
	log       *zap.Logger
	window    Window
	store     *Store
}

// ChartOption configures NewChart.
type ChartOption func(*chartConfig)

// WithViewport sets the size of the chart, geometry.DefaultViewport by default.
func WithViewport(vp geometry.Viewport) ChartOption {
	return func(c *chartConfig) { c.viewport = vp }
}

// WithPadding sets the padding around the plot, geometry.DefaultPadding by default.
func WithPadding(p geometry.Padding) ChartOption {
	return func(c *chartConfig) { c.padding = p }
}

// WithScheduler sets the scheduler driving animations, a TickerScheduler by default.
func WithScheduler(s transition.Scheduler) ChartOption {
	return func(c *chartConfig) { c.scheduler = s }
}

// WithLogger sets the logger of the chart.
func WithLogger(l *zap.Logger) ChartOption {
	return func(c *chartConfig) { c.log = l }
}

// WithInitialWindow sets the window selected at mount, DefaultWindow by default.
func WithInitialWindow(w Window) ChartOption {
	return func(c *chartConfig) { c.window = w }
}

// WithStore shares a view Store between charts.
func WithStore(st *Store) ChartOption {
	return func(c *chartConfig) { c.store = st }
}

// Chart is a chart instance: it owns a ChartState and reacts to user events.
//
// Event methods are meant to be called from a single goroutine, animation
// frames run on the scheduler and are serialized with them.
type Chart struct {
	mu    sync.Mutex
	props Props
	cfg   chartConfig

	series *Series
	state  ChartState
	view   View
	layout *geometry.Layout

	drawIns transition.DrawIns[ViewKey]
	mount   transition.Task
	drawIn  transition.Task

	opacity, offset, draw float64

	mounted, unmounted bool
}

// NewChart creates a chart instance. Nothing is animated until Mount.
func NewChart(props Props, opts ...ChartOption) *Chart {
	cfg := chartConfig{
		viewport: geometry.DefaultViewport,
		padding:  geometry.DefaultPadding,
		window:   DefaultWindow,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.scheduler == nil {
		cfg.scheduler = transition.NewTickerScheduler()
	}
	if cfg.store == nil {
		cfg.store = NewStore(cfg.log)
	}
	if props.Currency == "" {
		props.Currency = DefaultCurrency
	}

	c := &Chart{props: props, cfg: cfg, series: props.Series}
	if c.series == nil {
		// RandomWalk never fails with a live context.
		c.series, _ = LoadSeries(context.Background(), RandomWalk{Seed: DefaultSeed}, WithSeriesLogger(cfg.log))
	}
	c.state = InitialState(cfg.window)
	c.offset = transition.MountOffset
	c.relayout()
	return c
}

// relayout derives the view of the selected window and lays it out. c.mu must be held.
func (c *Chart) relayout() {
	c.view = c.cfg.store.Window(c.series, c.state.Window)
	c.layout = geometry.New(c.view, c.cfg.viewport, c.cfg.padding, geometry.WithCurrency(c.props.Currency))
}

// Mount starts the entrance transition and the draw-in of the initial view.
//
// Mount is effective only once per instance.
func (c *Chart) Mount() {
	c.mu.Lock()
	if c.mounted || c.unmounted {
		c.mu.Unlock()
		return
	}
	c.mounted = true
	c.cfg.log.Info("chart mounted",
		zap.String("title", c.props.Title),
		zap.Stringer("window", c.state.Window),
		zap.Int("points", c.view.Len()),
	)
	key := c.view.Key()
	c.mu.Unlock()

	mount := transition.NewMount()
	c.startTask(&c.mount, func(elapsed time.Duration) bool {
		c.opacity, c.offset = mount.At(elapsed)
		if mount.Done(elapsed) {
			c.state = Reduce(c.state, Mounted{})
			return false
		}
		return true
	})
	c.startDrawIn(key)
}

// startTask schedules fn under the chart lock, and stores the task in slot.
// The task stops by itself when the chart is unmounted.
func (c *Chart) startTask(slot *transition.Task, fn func(time.Duration) bool) {
	task := c.cfg.scheduler.Every(transition.FramePeriod, func(elapsed time.Duration) bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.unmounted {
			return false
		}
		return fn(elapsed)
	})
	c.mu.Lock()
	*slot = task
	c.mu.Unlock()
}

// startDrawIn plays the draw-in of the view identified by key, unless it was already played.
func (c *Chart) startDrawIn(key ViewKey) {
	if !c.drawIns.Start(key) {
		c.mu.Lock()
		c.draw = 1
		c.mu.Unlock()
		return
	}
	c.mu.Lock()
	previous := c.drawIn
	c.draw = 0
	c.mu.Unlock()
	if previous != nil {
		previous.Cancel()
	}

	tw := transition.DrawIn()
	c.startTask(&c.drawIn, func(elapsed time.Duration) bool {
		if c.view.Key() != key {
			return false // another window was selected meanwhile.
		}
		c.draw = tw.At(elapsed)
		return !tw.Done(elapsed)
	})
}

// SelectWindow selects the window named token. Unknown tokens select the full range.
func (c *Chart) SelectWindow(token string) {
	c.mu.Lock()
	if c.unmounted {
		c.mu.Unlock()
		return
	}
	previous := c.state.Window
	c.state = Reduce(c.state, WindowChosen{ParseWindow(token)})
	if c.state.Window == previous {
		c.mu.Unlock()
		return
	}
	c.relayout()
	c.state = Reduce(c.state, LaidOut{})
	key := c.view.Key()
	mounted := c.mounted
	c.cfg.log.Debug("window selected",
		zap.String("token", token),
		zap.Stringer("window", c.state.Window),
		zap.Int("points", c.view.Len()),
	)
	c.mu.Unlock()

	if mounted {
		c.startDrawIn(key)
	}
}

// PointerMove tracks the pointer at (x, y) in viewport coordinates.
//
// Inside the plot the nearest point becomes active, outside no point is.
func (c *Chart) PointerMove(x, y float64) {
	c.mu.Lock()
	if c.unmounted {
		c.mu.Unlock()
		return
	}
	i, _ := interaction.Locate(c.layout, x, y)
	previous := c.state.Active
	c.state = Reduce(c.state, PointerAt{Index: i})
	notify := c.props.OnPointSelected
	var info PointInfo
	if i >= 0 && i != previous && notify != nil {
		info = c.view.At(i).Info()
	} else {
		notify = nil
	}
	c.mu.Unlock()

	// called unlocked, the callback may call back into the chart.
	if notify != nil {
		notify(info)
	}
}

// PointerLeave clears the active point.
func (c *Chart) PointerLeave() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unmounted {
		return
	}
	c.state = Reduce(c.state, PointerLeft{})
}

// State returns the current state.
func (c *Chart) State() ChartState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// View returns the current view.
func (c *Chart) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Frame returns a snapshot of the chart, ready to be rendered.
func (c *Chart) Frame() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	f := Frame{
		Title:       c.props.Title,
		Description: c.props.Description,
		Class:       c.props.Class,
		Currency:    c.props.Currency,
		Window:      c.state.Window,
		Windows:     Windows,
		Range:       c.view.Range(),
		Change:      M(c.view.Change(), c.props.Currency),
		ChangePct:   c.view.ChangePercent(),
		Layout:      c.layout,
		State:       c.state,
		Opacity:     c.opacity,
		OffsetY:     c.offset,
		Draw:        c.draw,
	}
	if n := c.view.Len(); n > 0 {
		f.Last = M(c.view.Price(n-1), c.props.Currency)
	}
	if i := c.state.Active; i >= 0 && i < c.view.Len() {
		info := c.view.At(i).Info()
		f.Active = &info
		f.Tooltip = info.Tooltip(c.props.Currency)
		p := c.layout.Points[i]
		h := interaction.NewHighlight(p.X, p.Y, interaction.BaseRadius)
		f.Highlight = &h
	}
	return f
}

// Unmount destroys the chart: running animations are cancelled and pointer
// events are ignored from now on. No animation frame runs after Unmount returns.
func (c *Chart) Unmount() {
	c.mu.Lock()
	if c.unmounted {
		c.mu.Unlock()
		return
	}
	c.unmounted = true
	tasks := []transition.Task{c.mount, c.drawIn}
	c.mu.Unlock()

	// cancel unlocked, running frames need the lock to finish.
	for _, t := range tasks {
		if t != nil {
			t.Cancel()
		}
	}
	c.cfg.log.Info("chart unmounted", zap.String("title", c.props.Title))
}
