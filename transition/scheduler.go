package transition

import (
	"sync"
	"time"
)

// FramePeriod is the default period of animation frames (60 fps).
const FramePeriod = time.Second / 60

// Forever is an elapsed time after which every finite transition is complete.
const Forever = time.Duration(1<<62 - 1)

// Frame is called on every tick of a task with the time elapsed since the task
// started. It returns false to stop the task.
type Frame func(elapsed time.Duration) bool

// Task is a running repeating task.
type Task interface {
	// Cancel stops the task. When Cancel returns, the frame function is not
	// running and will never be called again. It must not be called from the
	// task's own frame function, which should return false instead.
	Cancel()
}

// Scheduler starts repeating tasks.
type Scheduler interface {
	Every(period time.Duration, fn Frame) Task
}

// TickerScheduler runs tasks on their own goroutine, driven by a time.Ticker.
type TickerScheduler struct{}

// NewTickerScheduler returns a scheduler driven by wall clock time.
func NewTickerScheduler() *TickerScheduler { return &TickerScheduler{} }

type tickerTask struct {
	once sync.Once
	stop chan struct{}
	done chan struct{}
}

// Every implements Scheduler.
func (*TickerScheduler) Every(period time.Duration, fn Frame) Task {
	t := &tickerTask{stop: make(chan struct{}), done: make(chan struct{})}
	start := time.Now()
	ticker := time.NewTicker(period)
	go func() {
		defer close(t.done)
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case now := <-ticker.C:
				// a cancel and a tick can be ready together, cancel wins.
				select {
				case <-t.stop:
					return
				default:
				}
				if !fn(now.Sub(start)) {
					return
				}
			}
		}
	}()
	return t
}

func (t *tickerTask) Cancel() {
	t.once.Do(func() { close(t.stop) })
	<-t.done
}

// Immediate is a Scheduler that completes tasks synchronously: the frame function
// is called once with Forever, as if the animation had already ended.
//
// It is used when there is no display to animate, like rendering a single frame.
type Immediate struct{}

// Every implements Scheduler.
func (Immediate) Every(_ time.Duration, fn Frame) Task {
	fn(Forever)
	return noTask{}
}

type noTask struct{}

func (noTask) Cancel() {}

// ManualScheduler is a Scheduler whose time only advances on demand.
//
// It is meant for tests: Advance fires every due frame synchronously.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	tasks []*manualTask
}

type manualTask struct {
	s       *ManualScheduler
	period  time.Duration
	start   time.Duration
	next    time.Duration
	fn      Frame
	stopped bool
}

// Every implements Scheduler.
func (s *ManualScheduler) Every(period time.Duration, fn Frame) Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTask{s: s, period: period, start: s.now, next: s.now + period, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the time forward by d, calling every frame due on the way, in time order.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	end := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		var due *manualTask
		for _, t := range s.tasks {
			if !t.stopped && t.next <= end && (due == nil || t.next < due.next) {
				due = t
			}
		}
		if due == nil {
			s.now = end
			s.mu.Unlock()
			return
		}
		s.now = due.next
		due.next += due.period
		elapsed := s.now - due.start
		s.mu.Unlock()

		// frames run unlocked, they may start or cancel tasks.
		if !due.fn(elapsed) {
			due.Cancel()
		}
	}
}

// Pending returns the number of tasks still running.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (t *manualTask) Cancel() {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	t.stopped = true
}
