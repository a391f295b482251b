package quickswipe

// CloseReasonRecents is passed to Platform.CloseSystemWindows when a swipe
// is claimed.
const CloseReasonRecents = "recentapps"

// maxCachedEvents bounds the replay buffer of a CachedEventDispatcher.
const maxCachedEvents = 256

// GestureEndTarget describes where a finished gesture is animating to.
type GestureEndTarget struct {
	Name           string
	CanBeContinued bool // a successor session may pick the animation up mid-flight
	IsHome         bool
}

// AnimationController controls a running window-transform animation.
type AnimationController interface {
	// Finish ends the animation, leaving the home screen on top when toHome
	// is set and returning to the app otherwise.
	Finish(toHome bool)
}

// AnimationTargets is delivered when the system animation starts.
type AnimationTargets struct {
	Controller AnimationController
	TaskIDs    []int
}

// AnimationListener receives the system animation lifecycle.
type AnimationListener interface {
	OnAnimationStart(targets AnimationTargets)
	OnAnimationCanceled()
}

// EventDispatcher receives raw events proxied to the previewed screen.
type EventDispatcher interface {
	DispatchEvent(ev *MotionEvent)
}

// EventDispatcherFunc adapts a function to EventDispatcher.
type EventDispatcherFunc func(ev *MotionEvent)

// DispatchEvent calls f(ev).
func (f EventDispatcherFunc) DispatchEvent(ev *MotionEvent) {
	f(ev)
}

// InteractionHandler drives the window-transform animation for one gesture.
// It is created by the Consumer, owned by it while active, and released once
// the handler invokes its gesture end callback.
type InteractionHandler interface {
	AnimationListener
	PauseListener

	// InitWhenReady prepares the handler's visuals.
	InitWhenReady()
	// SetGestureEndCallback registers the single "gesture fully finished"
	// notification back into the consumer.
	SetGestureEndCallback(fn func())

	OnGestureStarted()
	UpdateDisplacement(displacement float64)
	SetIsLikelyToStartNewTask(likely bool)
	OnGestureEnded(velocity float64, velocityVec Vec2, downPos Vec2)
	OnGestureCancelled()

	// CancelCurrentAnimation suspends the handler so a successor session can
	// continue the animation through shared.
	CancelCurrentAnimation(shared *SharedState)
	Reset()
	// GestureEndTarget reports the target the animation is heading to, if
	// one was chosen.
	GestureEndTarget() (GestureEndTarget, bool)

	// EventDispatcher returns the previewed screen's event surface.
	EventDispatcher(edge NavEdge) EventDispatcher
}

// HandlerParams is passed to a HandlerFactory.
type HandlerParams struct {
	TouchTimeMs   int64
	Continuing    bool
	RunningTaskID int
}

// HandlerFactory creates the interaction handler for a session.
type HandlerFactory func(p HandlerParams) InteractionHandler

// Platform is the system surface the consumer talks to.
type Platform interface {
	// StartRecentsAnimation asks the system to start the window-transform
	// animation. Lifecycle callbacks are delivered to listeners on the
	// input goroutine.
	StartRecentsAnimation(listeners *ListenerSet)
	CancelRecentsAnimation(restoreHomeStack bool)
	// PilferPointers steals the pointer stream from the region's default
	// consumer.
	PilferPointers()
	CloseSystemWindows(reason string)
	CloseOverlays()
}

// TaskPreloader warms the task list when tracking starts.
type TaskPreloader interface {
	PreloadTasks()
}

// CachedEventDispatcher forwards events to a consumer bound late. Events
// dispatched before the consumer is bound are copied and replayed in order
// on SetConsumer.
type CachedEventDispatcher struct {
	consumer EventDispatcher
	cache    []MotionEvent
}

// HasConsumer reports whether a consumer is bound.
func (d *CachedEventDispatcher) HasConsumer() bool {
	return d.consumer != nil
}

// SetConsumer binds c and replays the cached events into it.
func (d *CachedEventDispatcher) SetConsumer(c EventDispatcher) {
	d.consumer = c
	if c == nil {
		return
	}
	for i := range d.cache {
		c.DispatchEvent(&d.cache[i])
	}
	d.cache = nil
}

// DispatchEvent forwards ev or caches a copy of it.
func (d *CachedEventDispatcher) DispatchEvent(ev *MotionEvent) {
	if d.consumer != nil {
		d.consumer.DispatchEvent(ev)
		return
	}
	if len(d.cache) < maxCachedEvents {
		d.cache = append(d.cache, ev.Clone())
	}
}
