package quickswipe

import "log/slog"

// SessionFunc describes the touch sequence that begins with down.
type SessionFunc func(down *MotionEvent) SessionConfig

// Router owns the consumer for the current touch sequence. Each down creates
// a fresh Consumer; when the previous one still holds a handler it is told to
// hand its animation off first so the new gesture can continue it.
//
// Router is an EventSink and can be fed directly by a TouchSource.
type Router struct {
	opts       Options
	sessionFor SessionFunc
	log        *slog.Logger

	current *Consumer

	inject      injectState
	injectQueue []MotionEvent
	runner      *GestureRunner
}

// NewRouter creates a router. Every consumer it creates shares opts.Shared
// (allocated here when nil).
func NewRouter(opts Options, sessionFor SessionFunc) (*Router, error) {
	switch {
	case opts.NewHandler == nil:
		return nil, ErrNoHandlerFactory
	case opts.Platform == nil:
		return nil, ErrNoPlatform
	case opts.Scheduler == nil:
		return nil, ErrNoScheduler
	}
	if opts.Shared == nil {
		opts.Shared = NewSharedState()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	r := &Router{
		opts:       opts,
		sessionFor: sessionFor,
		log:        opts.Logger,
	}
	r.inject.reset()
	return r, nil
}

// Current returns the consumer of the running touch sequence, or nil.
func (r *Router) Current() *Consumer {
	return r.current
}

// Shared returns the state shared by all consumers of this router.
func (r *Router) Shared() *SharedState {
	return r.opts.Shared
}

// OnMotionEvent routes ev to the current consumer, creating one on down.
func (r *Router) OnMotionEvent(ev *MotionEvent) {
	if ev.Action == ActionDown {
		r.newConsumer(ev)
	}
	if r.current != nil {
		r.current.OnMotionEvent(ev)
	}
}

func (r *Router) newConsumer(ev *MotionEvent) {
	if prev := r.current; prev != nil && prev.UseSharedSwipeState() {
		prev.OnConsumerAboutToBeSwitched()
	} else {
		// Only a predecessor holding a handler can be continued.
		r.opts.Shared.ClearAllState()
	}
	opts := r.opts
	userComplete := opts.OnComplete
	opts.OnComplete = func(c *Consumer) {
		r.consumerInactive(c)
		if userComplete != nil {
			userComplete(c)
		}
	}
	var session SessionConfig
	if r.sessionFor != nil {
		session = r.sessionFor(ev)
	}
	c, err := NewConsumer(opts, session)
	if err != nil {
		r.log.Error("create consumer", "err", err)
		r.current = nil
		return
	}
	r.current = c
}

func (r *Router) consumerInactive(c *Consumer) {
	if r.current == c {
		r.current = nil
	}
}

// SetGestureRunner attaches a scripted runner. It is stepped from Update.
func (r *Router) SetGestureRunner(runner *GestureRunner) {
	r.runner = runner
}

// Update steps the attached runner and delivers at most one injected event.
// It reports whether an injected event was delivered; callers polling real
// input should skip it on those frames.
func (r *Router) Update() bool {
	if r.runner != nil {
		r.runner.step(r)
	}
	return r.processInjectedInput()
}
