package quickswipe

import "fmt"

// debugCheckActivePointer panics when the slop is confirmed without a tracked
// pointer. Only called in debug mode; release builds tolerate the state.
func debugCheckActivePointer(debug bool, pointerID int, op string) {
	if debug && pointerID == InvalidPointerID {
		panic(fmt.Sprintf("quickswipe debug: %s with no active pointer", op))
	}
}

// debugCheckSlopOrder panics when the pilfer slop is confirmed while the move
// slop is still pending.
func debugCheckSlopOrder(debug bool, s *gestureSession) {
	if debug && s.pilferSlopPassed && !s.moveSlopPassed {
		panic("quickswipe debug: pilfer slop passed before move slop")
	}
}
