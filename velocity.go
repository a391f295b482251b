package quickswipe

import "math"

const (
	velocityHistorySize = 20
	velocityDegree      = 2
	velocityHorizonMs   = 100 // samples older than this are not part of the fling
	pointerStoppedMs    = 40  // a gap this long means the pointer stopped moving
)

type velocitySample struct {
	t    int64
	x, y float64
}

// VelocityTracker estimates per-pointer velocity from the movement history of
// a gesture using a least squares fit of a 2nd order polynomial over the
// most recent samples.
//
// Up, PointerUp and Cancel carry no movement and are ignored; Down starts a
// fresh history and PointerDown starts a fresh trace for the new pointer.
type VelocityTracker struct {
	tracks    map[int][]velocitySample
	velocity  map[int]Vec2
	lastTime  int64
	hasSample bool
}

// NewVelocityTracker returns an empty tracker.
func NewVelocityTracker() *VelocityTracker {
	return &VelocityTracker{
		tracks:   make(map[int][]velocitySample),
		velocity: make(map[int]Vec2),
	}
}

// Clear drops all history. Safe on a nil tracker.
func (t *VelocityTracker) Clear() {
	if t == nil {
		return
	}
	clear(t.tracks)
	clear(t.velocity)
	t.hasSample = false
}

// AddMovement records the pointer positions carried by ev.
func (t *VelocityTracker) AddMovement(ev *MotionEvent) {
	if t == nil {
		return
	}
	switch ev.Action {
	case ActionDown:
		t.Clear()
	case ActionPointerDown:
		delete(t.tracks, ev.PointerID(ev.ActionIndex))
	case ActionMove:
	default:
		return
	}

	if t.hasSample && ev.EventTime-t.lastTime >= pointerStoppedMs {
		clear(t.tracks)
	}
	t.lastTime = ev.EventTime
	t.hasSample = true

	for _, p := range ev.Pointers {
		s := append(t.tracks[p.ID], velocitySample{t: ev.EventTime, x: p.X, y: p.Y})
		if len(s) > velocityHistorySize {
			s = s[len(s)-velocityHistorySize:]
		}
		t.tracks[p.ID] = s
	}
}

// ComputeCurrentVelocity computes the velocity of every tracked pointer in
// pixels per `units` milliseconds (1000 gives pixels per second), clamped to
// +/- maxVelocity.
func (t *VelocityTracker) ComputeCurrentVelocity(units, maxVelocity float64) {
	if t == nil {
		return
	}
	clear(t.velocity)
	for id, samples := range t.tracks {
		vx, vy := estimateVelocity(samples)
		t.velocity[id] = Vec2{
			X: clamp(vx*units, -maxVelocity, maxVelocity),
			Y: clamp(vy*units, -maxVelocity, maxVelocity),
		}
	}
}

// XVelocity returns the last computed X velocity for pointer id.
func (t *VelocityTracker) XVelocity(id int) float64 {
	if t == nil {
		return 0
	}
	return t.velocity[id].X
}

// YVelocity returns the last computed Y velocity for pointer id.
func (t *VelocityTracker) YVelocity(id int) float64 {
	if t == nil {
		return 0
	}
	return t.velocity[id].Y
}

// estimateVelocity returns the velocity in pixels per millisecond at the
// newest sample.
func estimateVelocity(samples []velocitySample) (float64, float64) {
	if len(samples) < 2 {
		return 0, 0
	}
	newest := samples[len(samples)-1]
	var ts, xs, ys []float64
	for i := len(samples) - 1; i >= 0; i-- {
		s := samples[i]
		age := newest.t - s.t
		if age > velocityHorizonMs {
			break
		}
		ts = append(ts, float64(-age))
		xs = append(xs, s.x)
		ys = append(ys, s.y)
	}
	degree := min(velocityDegree, len(ts)-1)
	if degree < 1 {
		return 0, 0
	}
	bx, okx := polyFit(ts, xs, degree)
	by, oky := polyFit(ts, ys, degree)
	var vx, vy float64
	if okx {
		vx = bx[1]
	}
	if oky {
		vy = by[1]
	}
	return vx, vy
}

// polyFit computes the least squares polynomial fit of the given degree for
// the points (X, Y) and returns its coefficients, lowest order first. It
// reports false when the data is insufficient or contradicting.
func polyFit(X, Y []float64, degree int) ([]float64, bool) {
	m := len(X)
	n := degree + 1
	if m < n {
		return nil, false
	}

	// Columns of the Vandermonde matrix: a[j][i] = X[i]^j.
	a := make([][]float64, n)
	for j := range a {
		a[j] = make([]float64, m)
		for i, x := range X {
			if j == 0 {
				a[j][i] = 1
			} else {
				a[j][i] = a[j-1][i] * x
			}
		}
	}

	// Modified Gram-Schmidt: A = Q*R with orthonormal Q columns.
	q := make([][]float64, n)
	r := make([][]float64, n)
	for j := 0; j < n; j++ {
		q[j] = append([]float64(nil), a[j]...)
		for h := 0; h < j; h++ {
			d := dot(q[j], q[h])
			for i := range q[j] {
				q[j][i] -= d * q[h][i]
			}
		}
		norm := math.Sqrt(dot(q[j], q[j]))
		if norm < 1e-6 {
			return nil, false
		}
		for i := range q[j] {
			q[j][i] /= norm
		}
		r[j] = make([]float64, n)
		for h := j; h < n; h++ {
			r[j][h] = dot(q[j], a[h])
		}
	}

	// R is upper triangular: solve R*B = Qt*Y from the bottom up.
	b := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		b[i] = dot(q[i], Y)
		for j := n - 1; j > i; j-- {
			b[i] -= r[i][j] * b[j]
		}
		b[i] /= r[i][i]
	}
	return b, true
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
