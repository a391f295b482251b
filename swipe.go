package quickswipe

// Vec2 is a 2D vector used for positions, deltas and velocities throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsPoint is Contains for a Vec2.
func (r Rect) ContainsPoint(p Vec2) bool {
	return r.Contains(p.X, p.Y)
}

// NavEdge identifies the screen edge the navigation bar (and therefore the
// swipe) originates from. It selects the displacement axis and sign.
type NavEdge uint8

const (
	NavEdgeBottom NavEdge = iota // portrait nav bar; displacement along Y
	NavEdgeRight                 // landscape, bar on the right; displacement along +X
	NavEdgeLeft                  // seascape, bar on the left; displacement along -X
	NavEdgeTop                   // displacement along Y
)

func (e NavEdge) String() string {
	switch e {
	case NavEdgeBottom:
		return "bottom"
	case NavEdgeRight:
		return "right"
	case NavEdgeLeft:
		return "left"
	case NavEdgeTop:
		return "top"
	default:
		return "unknown"
	}
}

// NavMode is the system navigation mode.
type NavMode uint8

const (
	NavModeThreeButtons NavMode = iota // classic back/home/recents buttons
	NavModeTwoButtons                  // pill + back button
	NavModeNoButton                    // fully gestural navigation
)

func (m NavMode) String() string {
	switch m {
	case NavModeThreeButtons:
		return "three_buttons"
	case NavModeTwoButtons:
		return "two_buttons"
	case NavModeNoButton:
		return "no_button"
	default:
		return "unknown"
	}
}

// ConsumerType identifies the kind of input consumer.
type ConsumerType uint8

const (
	TypeNone          ConsumerType = iota // no consumer active
	TypeOtherActivity                     // swipe over an app other than the home screen
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
