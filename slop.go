package quickswipe

import "math"

// DefaultTouchSlopRatio scales the move slop into the pilfer slop radius.
const DefaultTouchSlopRatio = 3

// velocityUnits is the window velocity is reported over: pixels per second.
const velocityUnits = 1000

// SquaredHypot returns dx*dx + dy*dy.
func SquaredHypot(dx, dy float64) float64 {
	return dx*dx + dy*dy
}

// Slop holds the two gesture thresholds. Move is a linear distance along the
// navigation axis; Pilfer is a 2D radius, always compared squared.
type Slop struct {
	Move   float64
	Pilfer float64
}

// NewSlop builds the thresholds from the platform touch slop and the ratio
// between the pilfer radius and the move distance.
func NewSlop(touchSlop, ratio float64) Slop {
	return Slop{Move: touchSlop, Pilfer: ratio * touchSlop}
}

// PilferSquared returns the squared pilfer radius.
func (s Slop) PilferSquared() float64 {
	return s.Pilfer * s.Pilfer
}

// PassedMove reports whether an axis displacement exceeds the move slop.
func (s Slop) PassedMove(displacement float64) bool {
	return math.Abs(displacement) > s.Move
}

// PassedPilfer reports whether the 2D delta reaches the pilfer radius.
func (s Slop) PassedPilfer(dx, dy float64) bool {
	return SquaredHypot(dx, dy) >= s.PilferSquared()
}

// StartDisplacement returns the offset subtracted from every later
// displacement report once the move slop is passed. It never lies past the
// first passing sample, so the first report never exceeds what the user moved.
func (s Slop) StartDisplacement(displacement float64) float64 {
	return math.Min(displacement, -s.Move)
}

// Displacement projects the motion from down to cur onto the navigation
// axis. Right and left edges use X (left inverted); every other edge uses Y.
// Every displacement consumer goes through here so sign and axis agree.
func Displacement(edge NavEdge, down, cur Vec2) float64 {
	switch edge {
	case NavEdgeRight:
		return cur.X - down.X
	case NavEdgeLeft:
		return down.X - cur.X
	default:
		return cur.Y - down.Y
	}
}

// ResolveVelocity computes the fling velocity of pointerID over one second,
// capped at maxFling. The scalar follows the same axis and sign rule as
// Displacement; the vector is the raw (x, y) velocity.
func ResolveVelocity(t *VelocityTracker, pointerID int, edge NavEdge, maxFling float64) (float64, Vec2) {
	t.ComputeCurrentVelocity(velocityUnits, maxFling)
	v := Vec2{X: t.XVelocity(pointerID), Y: t.YVelocity(pointerID)}
	return axisVelocity(edge, v), v
}

func axisVelocity(edge NavEdge, v Vec2) float64 {
	switch edge {
	case NavEdgeRight:
		return v.X
	case NavEdgeLeft:
		return -v.X
	default:
		return v.Y
	}
}
