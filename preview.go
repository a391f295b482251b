package quickswipe

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// End targets chosen by PreviewHandler.
var (
	TargetHome     = GestureEndTarget{Name: "home", CanBeContinued: true, IsHome: true}
	TargetRecents  = GestureEndTarget{Name: "recents", CanBeContinued: true}
	TargetNewTask  = GestureEndTarget{Name: "new_task"}
	TargetLastTask = GestureEndTarget{Name: "last_task"}
)

// PreviewConfig tunes a PreviewHandler.
type PreviewConfig struct {
	// TransitionLength is the upward displacement (px) at which progress
	// reaches 1.
	TransitionLength float64
	// FlingThreshold is the axis speed (px/s) above which the fling
	// direction alone selects the end target.
	FlingThreshold float64
	// SettleDuration is the length in seconds of the settle animation.
	SettleDuration float32
	// RecentsProgress is where the recents target settles.
	RecentsProgress float64
}

// DefaultPreviewConfig returns a configuration sized for a phone display.
func DefaultPreviewConfig() PreviewConfig {
	return PreviewConfig{
		TransitionLength: 800,
		FlingThreshold:   1000,
		SettleDuration:   0.25,
		RecentsProgress:  0.6,
	}
}

// PreviewHandler is a self-contained InteractionHandler that maps the swipe
// displacement onto a 0..1 progress value and settles it with a tween once
// the gesture ends. It is what the demo renders, and a reference for
// platform handlers.
//
// There is no global animation manager; callers advance it with Update.
type PreviewHandler struct {
	cfg    PreviewConfig
	params HandlerParams

	controller  AnimationController
	endCallback func()
	callbackRun bool

	progress      float64
	paused        bool
	likelyNewTask bool
	started       bool

	target    GestureEndTarget
	hasTarget bool
	tween     *gween.Tween
	settled   bool
	proxied   int
}

// NewPreviewHandler creates a handler for one session.
func NewPreviewHandler(cfg PreviewConfig, params HandlerParams) *PreviewHandler {
	return &PreviewHandler{cfg: cfg, params: params}
}

// PreviewHandlerFactory returns a HandlerFactory creating PreviewHandlers.
// onCreate, when non-nil, observes every handler created.
func PreviewHandlerFactory(cfg PreviewConfig, onCreate func(*PreviewHandler)) HandlerFactory {
	return func(p HandlerParams) InteractionHandler {
		h := NewPreviewHandler(cfg, p)
		if onCreate != nil {
			onCreate(h)
		}
		return h
	}
}

// Progress returns the current transition progress.
func (h *PreviewHandler) Progress() float64 { return h.progress }

// Started reports whether the gesture was claimed.
func (h *PreviewHandler) Started() bool { return h.started }

// Settled reports whether the settle animation has completed.
func (h *PreviewHandler) Settled() bool { return h.settled }

// Proxied returns how many events were proxied to the previewed screen.
func (h *PreviewHandler) Proxied() int { return h.proxied }

// Params returns the parameters the handler was created with.
func (h *PreviewHandler) Params() HandlerParams { return h.params }

// InitWhenReady is a no-op; the handler needs no deferred setup.
func (h *PreviewHandler) InitWhenReady() {}

// SetGestureEndCallback sets the callback run once the gesture has settled.
func (h *PreviewHandler) SetGestureEndCallback(fn func()) {
	h.endCallback = fn
}

// OnAnimationStart records the controller and finishes it if already settled.
func (h *PreviewHandler) OnAnimationStart(t AnimationTargets) {
	h.controller = t.Controller
	if h.settled {
		h.finishController()
	}
}

// OnAnimationCanceled drops the controller and any settle animation.
func (h *PreviewHandler) OnAnimationCanceled() {
	h.controller = nil
	h.tween = nil
	h.runEndCallback()
}

// OnMotionPauseChanged records whether the finger is paused.
func (h *PreviewHandler) OnMotionPauseChanged(paused bool) {
	h.paused = paused
}

// OnGestureStarted marks the gesture as started.
func (h *PreviewHandler) OnGestureStarted() {
	h.started = true
}

// UpdateDisplacement maps the displacement to preview progress.
func (h *PreviewHandler) UpdateDisplacement(displacement float64) {
	if h.hasTarget {
		return
	}
	h.progress = clamp(-displacement/h.cfg.TransitionLength, 0, 1)
}

// SetIsLikelyToStartNewTask records the likely-new-task hint.
func (h *PreviewHandler) SetIsLikelyToStartNewTask(likely bool) {
	h.likelyNewTask = likely
}

// OnGestureEnded picks an end target and starts settling toward it.
func (h *PreviewHandler) OnGestureEnded(velocity float64, _ Vec2, _ Vec2) {
	h.settleTo(h.chooseTarget(velocity))
}

// OnGestureCancelled settles back to the last task.
func (h *PreviewHandler) OnGestureCancelled() {
	h.settleTo(TargetLastTask)
}

// chooseTarget picks the end target from the release velocity (negative is
// toward the content) and the state at release.
func (h *PreviewHandler) chooseTarget(velocity float64) GestureEndTarget {
	if math.Abs(velocity) > h.cfg.FlingThreshold {
		if velocity > 0 {
			return TargetLastTask
		}
		if h.likelyNewTask {
			return TargetNewTask
		}
		return TargetHome
	}
	switch {
	case h.paused:
		return TargetRecents
	case h.likelyNewTask:
		return TargetNewTask
	case h.progress >= 0.5:
		return TargetHome
	default:
		return TargetLastTask
	}
}

func (h *PreviewHandler) settleTo(target GestureEndTarget) {
	h.target = target
	h.hasTarget = true
	end := 0.0
	switch target {
	case TargetHome, TargetNewTask:
		end = 1
	case TargetRecents:
		end = h.cfg.RecentsProgress
	}
	h.tween = gween.New(float32(h.progress), float32(end), h.cfg.SettleDuration, ease.OutQuad)
}

// Update advances the settle animation by dt seconds. When it completes the
// animation controller is finished and the gesture end callback runs.
func (h *PreviewHandler) Update(dt float32) {
	if h.tween == nil {
		return
	}
	val, finished := h.tween.Update(dt)
	h.progress = float64(val)
	if !finished {
		return
	}
	h.tween = nil
	h.settled = true
	h.finishController()
}

func (h *PreviewHandler) finishController() {
	if h.controller != nil {
		c := h.controller
		h.controller = nil
		c.Finish(h.target.IsHome)
	}
	h.runEndCallback()
}

func (h *PreviewHandler) runEndCallback() {
	if h.callbackRun || h.endCallback == nil {
		return
	}
	h.callbackRun = true
	h.endCallback()
}

// CancelCurrentAnimation stops the settle animation without finishing the
// system animation, leaving it for the successor session.
func (h *PreviewHandler) CancelCurrentAnimation(_ *SharedState) {
	h.tween = nil
	h.controller = nil
	h.runEndCallback()
}

// Reset returns to the app immediately.
func (h *PreviewHandler) Reset() {
	h.tween = nil
	h.progress = 0
	h.target = TargetLastTask
	h.finishController()
}

// GestureEndTarget returns the chosen end target, if one was picked.
func (h *PreviewHandler) GestureEndTarget() (GestureEndTarget, bool) {
	return h.target, h.hasTarget
}

// EventDispatcher returns a dispatcher that counts proxied events.
func (h *PreviewHandler) EventDispatcher(_ NavEdge) EventDispatcher {
	return EventDispatcherFunc(func(*MotionEvent) { h.proxied++ })
}
