package quickswipe

import (
	"errors"
	"log/slog"
	"math"
)

var (
	ErrNoHandlerFactory = errors.New("quickswipe: handler factory is required")
	ErrNoPlatform       = errors.New("quickswipe: platform is required")
	ErrNoScheduler      = errors.New("quickswipe: scheduler is required")
)

// SessionConfig describes where a touch sequence started.
type SessionConfig struct {
	// SwipeTouchRegion is the swipe-trigger rectangle. A second finger landing
	// outside it before the gesture is claimed cancels the gesture.
	SwipeTouchRegion Rect
	// DeferredDownTarget defers the animation start until the pilfer slop is
	// passed (e.g. the touch began over the back button).
	DeferredDownTarget     bool
	DisableHorizontalSwipe bool
	Edge                   NavEdge
	Mode                   NavMode
	RunningTaskID          int

	// SuppressInput, when set and reporting true, makes the consumer ignore
	// events entirely (e.g. a full-screen video owns the foreground).
	SuppressInput func() bool
	// RearmOnPointerDown selects secondary-pointer-downs that re-arm tracking
	// like a fresh down. Nil uses IsForwardedDown.
	RearmOnPointerDown func(ev *MotionEvent) bool
}

// IsForwardedDown reports whether ev is a pointer down forwarded by the
// owning window from a mouse-class device rather than a new finger.
func IsForwardedDown(ev *MotionEvent) bool {
	return ev.Source == SourceMouse
}

// Options wires a Consumer to its collaborators.
type Options struct {
	Config     Config
	Shared     *SharedState
	Platform   Platform
	NewHandler HandlerFactory
	Scheduler  Scheduler
	// Executor issues the animation start request. Nil runs it inline.
	Executor  Executor
	Preloader TaskPreloader
	Store     GestureStore
	Logger    *slog.Logger
	// OnComplete is invoked once when the consumer releases its handler.
	OnComplete func(*Consumer)
}

// Consumer interprets the pointer stream of one touch sequence that started
// over another app and turns it into a swipe-navigation gesture, driving an
// InteractionHandler while it runs.
//
// All methods must be called from the input goroutine.
type Consumer struct {
	cfg     Config
	session SessionConfig
	slop    Slop
	log     *slog.Logger

	shared     *SharedState
	platform   Platform
	newHandler HandlerFactory
	exec       Executor
	preloader  TaskPreloader
	store      GestureStore
	onComplete func(*Consumer)

	dispatcher CachedEventDispatcher
	listeners  *ListenerSet
	pause      *MotionPauseDetector
	velocity   *VelocityTracker
	handler    InteractionHandler
	safetyNet  TimerSlot

	gs                gestureSession
	deferredDown      bool
	disableHorizontal bool
	completed         bool
}

// NewConsumer creates the consumer for a touch sequence. Continuation state is
// read from opts.Shared: when an animation is already running the slops start
// passed and the deferred-start and horizontal-swipe restrictions are lifted.
func NewConsumer(opts Options, session SessionConfig) (*Consumer, error) {
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
	if opts.Executor == nil {
		opts.Executor = InlineExecutor
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if session.RearmOnPointerDown == nil {
		session.RearmOnPointerDown = IsForwardedDown
	}

	continuing := opts.Shared.ActiveListener() != nil
	c := &Consumer{
		cfg:        opts.Config,
		session:    session,
		slop:       opts.Config.Slop(),
		log:        opts.Logger.With("consumer", "other_activity"),
		shared:     opts.Shared,
		platform:   opts.Platform,
		newHandler: opts.NewHandler,
		exec:       opts.Executor,
		preloader:  opts.Preloader,
		store:      opts.Store,
		onComplete: opts.OnComplete,
		pause:      NewMotionPauseDetector(opts.Config.Pause, opts.Scheduler),
		velocity:   NewVelocityTracker(),
		safetyNet:  NewTimerSlot(opts.Scheduler),
		gs:         newGestureSession(continuing),

		deferredDown:      !continuing && session.DeferredDownTarget,
		disableHorizontal: !continuing && session.DisableHorizontalSwipe,
	}
	return c, nil
}

// Type returns TypeOtherActivity.
func (c *Consumer) Type() ConsumerType {
	return TypeOtherActivity
}

// UseSharedSwipeState reports whether the consumer holds a handler and must
// hand its state off before being replaced.
func (c *Consumer) UseSharedSwipeState() bool {
	return c.handler != nil
}

// AllowInterceptByParent reports whether the gesture can still be claimed by
// another consumer.
func (c *Consumer) AllowInterceptByParent() bool {
	return !c.gs.pilferSlopPassed
}

// OnMotionEvent processes one event. Events after the sequence finished are
// ignored.
func (c *Consumer) OnMotionEvent(ev *MotionEvent) {
	if c.velocity == nil {
		return
	}
	if c.session.SuppressInput != nil && c.session.SuppressInput() {
		return
	}

	// Proxy events to the previewed screen.
	if c.gs.moveSlopPassed && c.handler != nil && !c.dispatcher.HasConsumer() {
		c.dispatcher.SetConsumer(c.handler.EventDispatcher(c.session.Edge))
	}
	edgeFlags := ev.EdgeFlags
	ev.EdgeFlags = edgeFlags | EdgeNavBar
	c.dispatcher.DispatchEvent(ev)
	ev.EdgeFlags = edgeFlags

	c.velocity.AddMovement(ev)
	if ev.Action == ActionPointerUp {
		c.velocity.Clear()
		c.pause.Clear()
	}

	switch ev.Action {
	case ActionDown:
		c.onDown(ev)
	case ActionPointerDown:
		if c.session.RearmOnPointerDown(ev) {
			c.onDown(ev)
			break
		}
		if !c.gs.pilferSlopPassed {
			// Multi-touch before the gesture is claimed.
			if !c.session.SwipeTouchRegion.ContainsPoint(ev.ActionPos()) {
				c.forceCancelGesture(ev)
			}
		}
	case ActionPointerUp:
		idx := ev.ActionIndex
		if ev.PointerID(idx) == c.gs.activePointerID {
			newIdx := 0
			if idx == 0 {
				newIdx = 1
			}
			if newIdx < ev.PointerCount() {
				c.gs.retarget(ev.PointerID(newIdx), ev.Pos(newIdx))
			}
		}
	case ActionMove:
		c.onMove(ev)
	case ActionCancel, ActionUp:
		c.finishTouchTracking(ev)
	}
}

func (c *Consumer) onDown(ev *MotionEvent) {
	c.gs.start(ev.PointerID(0), ev.Pos(0))
	// Start the animation on down to give the handler the most time to
	// draw, unless the touch started over a deferred-start target.
	if !c.deferredDown {
		c.startTouchTracking(ev.EventTime)
	}
}

func (c *Consumer) onMove(ev *MotionEvent) {
	idx := ev.FindPointerIndex(c.gs.activePointerID)
	if idx < 0 {
		return
	}
	c.gs.last = ev.Pos(idx)
	displacement := c.displacement(c.gs.last)
	delta := c.gs.delta()

	if !c.gs.moveSlopPassed && !c.deferredDown {
		if c.slop.PassedMove(displacement) {
			debugCheckActivePointer(c.cfg.Debug, c.gs.activePointerID, "move slop")
			c.gs.passMoveSlop(displacement, c.slop)
		}
	}

	if !c.gs.pilferSlopPassed && c.slop.PassedPilfer(delta.X, delta.Y) {
		if c.disableHorizontal && math.Abs(delta.X) > math.Abs(delta.Y) {
			// Horizontal gestures are not allowed in this region.
			c.forceCancelGesture(ev)
			return
		}
		c.gs.pilferSlopPassed = true
		if c.deferredDown {
			c.startTouchTracking(ev.EventTime)
		}
		if !c.gs.moveSlopPassed {
			c.gs.passMoveSlop(displacement, c.slop)
		}
		debugCheckSlopOrder(c.cfg.Debug, &c.gs)
		c.notifyGestureStarted(ev)
	}

	if c.handler == nil {
		return
	}
	if c.gs.moveSlopPassed {
		c.handler.UpdateDisplacement(displacement - c.gs.startDisplacement)
	}
	if c.session.Mode == NavModeNoButton {
		horizontalDist := math.Abs(delta.X)
		upDist := -displacement
		likelyNewTask := horizontalDist > upDist
		c.pause.SetDisallowPause(upDist < c.cfg.PauseMinDisplacement || likelyNewTask)
		c.pause.AddPosition(displacement, ev.EventTime)
		c.handler.SetIsLikelyToStartNewTask(likelyNewTask)
	}
}

func (c *Consumer) displacement(pos Vec2) float64 {
	return Displacement(c.session.Edge, c.gs.down, pos)
}

// forceCancelGesture runs the finishing path with a synthesized cancel. The
// caller's event is left untouched.
func (c *Consumer) forceCancelGesture(ev *MotionEvent) {
	c.log.Debug("forceCancel", "action", ev.Action, "pointer", c.gs.activePointerID)
	cancel := *ev
	cancel.Action = ActionCancel
	c.finishTouchTracking(&cancel)
}

func (c *Consumer) notifyGestureStarted(ev *MotionEvent) {
	c.log.Debug("startQuickstep", "pointer", c.gs.activePointerID)
	if c.handler == nil {
		return
	}
	c.platform.PilferPointers()
	c.platform.CloseOverlays()
	c.platform.CloseSystemWindows(CloseReasonRecents)

	// Notify the handler that the gesture has actually started.
	c.handler.OnGestureStarted()
	c.emit(GestureEvent{Type: GestureStarted, EventTime: ev.EventTime})
}

func (c *Consumer) startTouchTracking(touchTimeMs int64) {
	if c.handler != nil {
		c.log.Debug("startRecentsAnimation skipped, handler already active")
		return
	}
	c.log.Debug("startRecentsAnimation", "time", touchTimeMs)
	listeners := c.shared.ActiveListener()
	h := c.newHandler(HandlerParams{
		TouchTimeMs:   touchTimeMs,
		Continuing:    listeners != nil,
		RunningTaskID: c.session.RunningTaskID,
	})

	if c.preloader != nil {
		c.preloader.PreloadTasks()
	}
	c.handler = h
	h.SetGestureEndCallback(c.onInteractionGestureFinished)
	c.pause.SetOnMotionPauseListener(h)
	h.InitWhenReady()

	if listeners != nil {
		listeners.AddListener(h)
		c.shared.ApplyActiveAnimationState(h)
		c.notifyGestureStarted(&MotionEvent{EventTime: touchTimeMs})
		return
	}
	fresh := c.shared.NewListenerSet()
	fresh.AddListener(h)
	c.listeners = fresh
	platform := c.platform
	c.exec.Submit(func() { platform.StartRecentsAnimation(fresh) })
}

// finishTouchTracking ends the touch sequence. The handler's animation may
// still be running afterwards.
func (c *Consumer) finishTouchTracking(ev *MotionEvent) {
	if c.gs.moveSlopPassed && c.handler != nil {
		if ev.Action == ActionCancel {
			c.handler.OnGestureCancelled()
			c.emit(GestureEvent{Type: GestureCancelled, EventTime: ev.EventTime})
		} else {
			velocity, velocityVec := ResolveVelocity(c.velocity, c.gs.activePointerID,
				c.session.Edge, c.cfg.MaxFlingVelocity)
			displacement := c.displacement(c.upPosition(ev)) - c.gs.startDisplacement
			c.log.Debug("gestureEnded", "velocity", velocity, "displacement", displacement)
			c.handler.UpdateDisplacement(displacement)
			c.handler.OnGestureEnded(velocity, velocityVec, c.gs.down)
			c.emit(GestureEvent{
				Type:         GestureEnded,
				EventTime:    ev.EventTime,
				Displacement: displacement,
				Velocity:     velocity,
				VelocityVec:  velocityVec,
			})
		}
	} else {
		// Tracking may have started on down without the gesture ever
		// starting; clean up immediately.
		if ev.Action == ActionCancel {
			c.emit(GestureEvent{Type: GestureCancelled, EventTime: ev.EventTime})
		}
		c.handOff(false)
		c.onInteractionGestureFinished()

		// The platform may handle the up before the deferred animation start
		// request lands; cancel whatever it started after a short delay.
		c.safetyNet.Schedule(c.cfg.SafetyNetDelay, c.cancelRecentsAnimation)
	}
	c.velocity = nil
	c.pause.Clear()
}

// upPosition returns where the active pointer lifted, falling back to the
// last tracked position when the event no longer carries it.
func (c *Consumer) upPosition(ev *MotionEvent) Vec2 {
	if idx := ev.FindPointerIndex(c.gs.activePointerID); idx >= 0 {
		return ev.Pos(idx)
	}
	return c.gs.last
}

func (c *Consumer) cancelRecentsAnimation() {
	active := c.shared.ActiveListener()
	if active != nil && active != c.listeners {
		c.log.Debug("safetyNetCancel skipped, animation owned by a newer session")
		return
	}
	c.log.Debug("safetyNetCancel")
	c.platform.CancelRecentsAnimation(true)
	if active != nil {
		active.OnAnimationCanceled()
	}
}

// OnConsumerAboutToBeSwitched is called when this consumer's input is about
// to be taken over by another consumer. The pending safety-net cancellation
// is dropped, and an active handler records where its animation is heading
// into the shared state before it is suspended or reset.
func (c *Consumer) OnConsumerAboutToBeSwitched() {
	c.handOff(true)
}

func (c *Consumer) handOff(notify bool) {
	c.safetyNet.Cancel()
	if c.handler == nil {
		return
	}
	c.removeListener()
	target, ok := c.handler.GestureEndTarget()
	c.shared.CanGestureBeContinued = ok && target.CanBeContinued
	c.shared.GoingToHome = ok && target.IsHome
	c.log.Debug("handoff", "continued", c.shared.CanGestureBeContinued, "home", c.shared.GoingToHome)
	if notify {
		c.emit(GestureEvent{
			Type:      GestureHandoff,
			Continued: c.shared.CanGestureBeContinued,
			GoingHome: c.shared.GoingToHome,
		})
	}
	if c.shared.CanGestureBeContinued {
		c.handler.CancelCurrentAnimation(c.shared)
	} else {
		c.handler.Reset()
	}
}

func (c *Consumer) onInteractionGestureFinished() {
	c.removeListener()
	c.handler = nil
	c.pause.Clear()
	if c.completed {
		return
	}
	c.completed = true
	c.emit(GestureEvent{Type: GestureFinished})
	if c.onComplete != nil {
		c.onComplete(c)
	}
}

func (c *Consumer) removeListener() {
	if c.handler == nil {
		return
	}
	c.shared.ActiveListener().RemoveListener(c.handler)
}

func (c *Consumer) emit(e GestureEvent) {
	if c.store == nil {
		return
	}
	e.Edge = c.session.Edge
	if e.DownPos == (Vec2{}) {
		e.DownPos = c.gs.down
	}
	c.store.EmitGesture(e)
}
