package quickswipe

// SharedState carries a gesture across input sessions. It outlives any one
// Consumer: the active ListenerSet is the continuation target, and the two
// flags are written by a session that is replaced mid-flight.
//
// SharedState is touched only from the input goroutine. A predecessor session
// relinquishes its listener registration before the successor reads it.
type SharedState struct {
	active      *ListenerSet
	lastTargets *AnimationTargets

	CanGestureBeContinued bool
	GoingToHome           bool
}

// NewSharedState returns an empty shared state.
func NewSharedState() *SharedState {
	return &SharedState{}
}

// ActiveListener returns the listener set of the running animation, or nil.
func (s *SharedState) ActiveListener() *ListenerSet {
	return s.active
}

// NewListenerSet makes a fresh listener set the active one, dropping any
// previous animation state.
func (s *SharedState) NewListenerSet() *ListenerSet {
	s.clearListenerState()
	ls := &ListenerSet{shared: s}
	s.active = ls
	return ls
}

// ApplyActiveAnimationState hands the last delivered animation targets to a
// listener joining a running animation.
func (s *SharedState) ApplyActiveAnimationState(l AnimationListener) {
	if s.lastTargets != nil {
		l.OnAnimationStart(*s.lastTargets)
	}
}

// ClearAllState drops the active animation and resets the continuation flags.
func (s *SharedState) ClearAllState() {
	s.clearListenerState()
	s.CanGestureBeContinued = false
	s.GoingToHome = false
}

func (s *SharedState) clearListenerState() {
	s.active = nil
	s.lastTargets = nil
}

func (s *SharedState) onAnimationStart(ls *ListenerSet, t AnimationTargets) {
	if ls == s.active {
		s.lastTargets = &t
	}
}

func (s *SharedState) onAnimationEnded(ls *ListenerSet) {
	if ls == s.active {
		s.clearListenerState()
	}
}

// ListenerSet fans the system animation lifecycle out to every handler
// attached to one animation. Handlers of successive sessions join the same
// set when a gesture is continued.
type ListenerSet struct {
	shared    *SharedState
	listeners []AnimationListener
}

// AddListener attaches l. Adding the same listener twice is a no-op.
func (ls *ListenerSet) AddListener(l AnimationListener) {
	for _, x := range ls.listeners {
		if x == l {
			return
		}
	}
	ls.listeners = append(ls.listeners, l)
}

// RemoveListener detaches l. Removing an absent or nil listener is a no-op.
func (ls *ListenerSet) RemoveListener(l AnimationListener) {
	if ls == nil || l == nil {
		return
	}
	for i, x := range ls.listeners {
		if x == l {
			copy(ls.listeners[i:], ls.listeners[i+1:])
			ls.listeners[len(ls.listeners)-1] = nil
			ls.listeners = ls.listeners[:len(ls.listeners)-1]
			return
		}
	}
}

// Len returns the number of attached listeners.
func (ls *ListenerSet) Len() int {
	return len(ls.listeners)
}

// OnAnimationStart records the targets for late joiners and forwards them.
// The controller handed to listeners clears the shared state when finished.
func (ls *ListenerSet) OnAnimationStart(t AnimationTargets) {
	if t.Controller != nil {
		t.Controller = &finishingController{inner: t.Controller, set: ls}
	}
	ls.shared.onAnimationStart(ls, t)
	for _, l := range ls.snapshot() {
		l.OnAnimationStart(t)
	}
}

// OnAnimationCanceled forwards the cancellation and clears the shared state.
func (ls *ListenerSet) OnAnimationCanceled() {
	ls.shared.onAnimationEnded(ls)
	for _, l := range ls.snapshot() {
		l.OnAnimationCanceled()
	}
}

func (ls *ListenerSet) snapshot() []AnimationListener {
	return append([]AnimationListener(nil), ls.listeners...)
}

type finishingController struct {
	inner AnimationController
	set   *ListenerSet
}

func (c *finishingController) Finish(toHome bool) {
	c.set.shared.onAnimationEnded(c.set)
	c.inner.Finish(toHome)
}
