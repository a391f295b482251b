// Package quickswipe recognizes the system swipe-navigation gesture that
// starts over an app's content and drives the window transition animation
// while the finger is down.
//
// # Quick start
//
// A [Router] owns one [Consumer] per touch sequence. Feed it events from a
// [TouchSource] (ebiten input) or from your own platform layer:
//
//	cfg, err := quickswipe.LoadConfig()
//	// ...
//	router, err := quickswipe.NewRouter(quickswipe.Options{
//		Config:     cfg,
//		Platform:   platform,
//		Scheduler:  sched,
//		NewHandler: quickswipe.PreviewHandlerFactory(quickswipe.DefaultPreviewConfig(), nil),
//	}, func(*quickswipe.MotionEvent) quickswipe.SessionConfig {
//		return quickswipe.SessionConfig{Edge: quickswipe.NavEdgeBottom}
//	})
//
//	func (g *Game) Update() error {
//		g.sched.Advance(time.Second / 60)
//		if !g.router.Update() {
//			g.source.Poll(g.router)
//		}
//		return nil
//	}
//
// # Slops
//
// Two thresholds gate a gesture. The move slop is a linear distance along
// the navigation axis; once passed, displacement is reported to the
// [InteractionHandler] relative to the point of passing. The pilfer slop is a
// 2D radius (TouchSlopRatio times the move slop); once passed, the gesture is
// claimed from the window below and the handler is told it started.
//
// # Continuation
//
// When a new touch lands while the previous gesture's animation is still
// running, the previous consumer records the animation's end target in the
// [SharedState] and suspends its handler. The next consumer joins the same
// [ListenerSet] with both slops already passed.
//
// # Timing
//
// Deferred work (the force-pause alarm, the safety-net cancel after a tap)
// runs on a [Scheduler]. [FrameScheduler] runs callbacks from the caller's
// frame loop; there is no background clock.
//
// # Configuration
//
// [LoadConfig] reads QUICKSWIPE_* environment variables over the defaults,
// e.g. QUICKSWIPE_TOUCH_SLOP, QUICKSWIPE_SAFETY_NET_DELAY and
// QUICKSWIPE_PAUSE_SPEED_FAST.
//
// # Testing
//
// Router exposes InjectDown, InjectMove, InjectSwipe and friends, and
// [LoadGestureScript] sequences them from JSON for scripted tests.
// Gesture lifecycle events can be mirrored into an ECS world with the
// quickswipe/ecs adapter.
package quickswipe
