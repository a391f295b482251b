package quickswipe

// gestureSession is the per-touch-sequence record owned by a Consumer.
type gestureSession struct {
	activePointerID int
	down            Vec2
	last            Vec2

	// moveSlopPassed is set once the axis displacement exceeds the move slop;
	// displacement is reported to the handler from then on.
	moveSlopPassed bool
	// pilferSlopPassed is set once the 2D delta reaches the pilfer radius and
	// the gesture is claimed from the region's default consumer.
	pilferSlopPassed bool

	startDisplacement float64
}

func newGestureSession(continuing bool) gestureSession {
	return gestureSession{
		activePointerID:  InvalidPointerID,
		moveSlopPassed:   continuing,
		pilferSlopPassed: continuing,
	}
}

// start seeds the session at a fresh down.
func (s *gestureSession) start(pointerID int, pos Vec2) {
	s.activePointerID = pointerID
	s.down = pos
	s.last = pos
}

// retarget hands tracking to another pointer. The down position is re-based
// so the accumulated delta carries over and displacement stays continuous.
func (s *gestureSession) retarget(pointerID int, pos Vec2) {
	s.down = pos.Sub(s.last.Sub(s.down))
	s.last = pos
	s.activePointerID = pointerID
}

func (s *gestureSession) passMoveSlop(displacement float64, slop Slop) {
	s.moveSlopPassed = true
	s.startDisplacement = slop.StartDisplacement(displacement)
}

func (s *gestureSession) delta() Vec2 {
	return s.last.Sub(s.down)
}
