package pricechart

// Phase is the lifecycle phase of a chart instance.
type Phase int

const (
	Mounting       Phase = iota // the entrance transition is running.
	Idle                        // nothing pending.
	WindowSelected              // a new window was selected, its view is not laid out yet.
)

func (p Phase) String() string {
	switch p {
	case Mounting:
		return "mounting"
	case Idle:
		return "idle"
	case WindowSelected:
		return "window-selected"
	default:
		return "unknown"
	}
}

// Hover is the pointer state of a chart, orthogonal to its Phase.
type Hover int

const (
	HoverNone Hover = iota
	PointActive
)

// ChartState is the reactive state of a chart instance.
//
// It is an immutable value: use Reduce to compute the next state.
type ChartState struct {
	Phase  Phase
	Window Window
	Active int // index of the active point in the current view, -1 for none.
}

// InitialState returns the state of a chart before it is mounted.
func InitialState(w Window) ChartState {
	return ChartState{Phase: Mounting, Window: ParseWindow(string(w)), Active: -1}
}

// Hover returns the pointer state.
func (s ChartState) Hover() Hover {
	if s.Active >= 0 {
		return PointActive
	}
	return HoverNone
}

// Event is something that happened to a chart.
type Event interface{ event() }

// Mounted is sent when the entrance transition completes.
type Mounted struct{}

// WindowChosen is sent when the user selects a window.
type WindowChosen struct{ Window Window }

// LaidOut is sent when the view of the selected window has been laid out.
type LaidOut struct{}

// PointerAt is sent when the pointer moves, with the index of the nearest point or -1 when the pointer is out of the plot.
type PointerAt struct{ Index int }

// PointerLeft is sent when the pointer leaves the chart.
type PointerLeft struct{}

func (Mounted) event()      {}
func (WindowChosen) event() {}
func (LaidOut) event()      {}
func (PointerAt) event()    {}
func (PointerLeft) event()  {}

// Reduce returns the state following s after e.
//
// It is a pure function: the same state and event always give the same result.
func Reduce(s ChartState, e Event) ChartState {
	switch e := e.(type) {
	case Mounted:
		if s.Phase == Mounting {
			s.Phase = Idle
		}
	case WindowChosen:
		w := ParseWindow(string(e.Window))
		if w == s.Window {
			return s
		}
		s.Window = w
		// indexes are relative to the view, the old one is meaningless now.
		s.Active = -1
		if s.Phase != Mounting {
			s.Phase = WindowSelected
		}
	case LaidOut:
		if s.Phase == WindowSelected {
			s.Phase = Idle
		}
	case PointerAt:
		s.Active = max(e.Index, -1)
	case PointerLeft:
		s.Active = -1
	}
	return s
}
