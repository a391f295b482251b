package quickswipe

import (
	"cmp"
	"slices"
	"sync"
	"time"
)

// Timer is a pending delayed callback.
type Timer interface {
	// Stop cancels the callback. It reports false if the callback already
	// ran or was already stopped.
	Stop() bool
}

// Scheduler runs delayed callbacks on the goroutine that processes input.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// FrameScheduler is a Scheduler driven by the caller's frame loop: callbacks
// run inside Advance, on the caller's goroutine, in due order.
//
// There is no background clock. Call Advance once per tick with the elapsed
// time.
type FrameScheduler struct {
	now    time.Duration
	seq    uint64
	timers []*frameTimer
}

type frameTimer struct {
	due     time.Duration
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

func (t *frameTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// NewFrameScheduler returns a scheduler at time zero.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// AfterFunc schedules fn to run once d has elapsed.
func (s *FrameScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	s.seq++
	t := &frameTimer{due: s.now + d, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by dt and runs every callback that became
// due. Callbacks scheduled by a running callback run in the same call if they
// are already due.
func (s *FrameScheduler) Advance(dt time.Duration) {
	s.now += dt
	for {
		s.compact()
		if len(s.timers) == 0 {
			return
		}
		slices.SortStableFunc(s.timers, func(a, b *frameTimer) int {
			if c := cmp.Compare(a.due, b.due); c != 0 {
				return c
			}
			return cmp.Compare(a.seq, b.seq)
		})
		next := s.timers[0]
		if next.due > s.now {
			return
		}
		next.fired = true
		s.timers = s.timers[1:]
		next.fn()
	}
}

// Now returns the scheduler's clock.
func (s *FrameScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of callbacks waiting to run.
func (s *FrameScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (s *FrameScheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}

// TimerSlot holds at most one pending callback. Scheduling into an occupied
// slot cancels the previous callback first.
type TimerSlot struct {
	sched Scheduler
	timer Timer
	gen   uint64
}

// NewTimerSlot returns an empty slot backed by sched. A nil scheduler makes
// every Schedule a no-op.
func NewTimerSlot(sched Scheduler) TimerSlot {
	return TimerSlot{sched: sched}
}

// Schedule replaces any pending callback with fn, due after d.
func (s *TimerSlot) Schedule(d time.Duration, fn func()) {
	s.Cancel()
	if s.sched == nil {
		return
	}
	s.gen++
	gen := s.gen
	s.timer = s.sched.AfterFunc(d, func() {
		if s.gen == gen {
			s.timer = nil
		}
		fn()
	})
}

// Cancel drops the pending callback, if any.
func (s *TimerSlot) Cancel() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Pending reports whether a callback is waiting in the slot.
func (s *TimerSlot) Pending() bool {
	return s.timer != nil
}

// Executor runs fire-and-forget work off the input goroutine.
type Executor interface {
	Submit(fn func())
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(fn func())

// Submit calls f(fn).
func (f ExecutorFunc) Submit(fn func()) {
	f(fn)
}

// InlineExecutor runs submitted work synchronously on the caller.
var InlineExecutor Executor = ExecutorFunc(func(fn func()) { fn() })

// SerialExecutor runs submitted work on a single background goroutine in
// submission order. Submit never blocks.
type SerialExecutor struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool
	done   chan struct{}
}

// NewSerialExecutor starts the worker goroutine.
func NewSerialExecutor() *SerialExecutor {
	e := &SerialExecutor{done: make(chan struct{})}
	e.cond = sync.NewCond(&e.mu)
	go e.run()
	return e
}

// Submit queues fn. Work submitted after Close is dropped.
func (e *SerialExecutor) Submit(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.queue = append(e.queue, fn)
	e.cond.Signal()
}

// Close stops accepting work and waits for queued work to drain.
func (e *SerialExecutor) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		<-e.done
		return
	}
	e.closed = true
	e.cond.Signal()
	e.mu.Unlock()
	<-e.done
}

func (e *SerialExecutor) run() {
	defer close(e.done)
	for {
		e.mu.Lock()
		for len(e.queue) == 0 && !e.closed {
			e.cond.Wait()
		}
		if len(e.queue) == 0 {
			e.mu.Unlock()
			return
		}
		fn := e.queue[0]
		e.queue[0] = nil
		e.queue = e.queue[1:]
		e.mu.Unlock()
		fn()
	}
}
