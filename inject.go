package quickswipe

// injectFrameMs is the synthetic time step between injected events.
const injectFrameMs = 16

// injectState tracks the synthetic pointers that are down while events are
// being queued, so each queued event carries the full pointer set.
type injectState struct {
	pointers []Pointer
	clock    int64
}

func (s *injectState) reset() {
	s.pointers = s.pointers[:0]
}

func (s *injectState) nextID() int {
	id := 0
	for s.indexOf(id) >= 0 {
		id++
	}
	return id
}

func (s *injectState) indexOf(id int) int {
	for i, p := range s.pointers {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (r *Router) queue(action Action, actionIndex int) {
	r.inject.clock += injectFrameMs
	ptrs := make([]Pointer, len(r.inject.pointers))
	copy(ptrs, r.inject.pointers)
	r.injectQueue = append(r.injectQueue, MotionEvent{
		Action:      action,
		ActionIndex: actionIndex,
		Pointers:    ptrs,
		EventTime:   r.inject.clock,
		Source:      SourceTouchscreen,
	})
}

// InjectDown queues the first pointer of a new touch sequence at (x, y).
// Any synthetic pointers still down are dropped.
func (r *Router) InjectDown(x, y float64) {
	r.inject.reset()
	r.inject.pointers = append(r.inject.pointers, Pointer{ID: 0, X: x, Y: y})
	r.queue(ActionDown, 0)
}

// InjectMove queues a move of the primary pointer to (x, y). Other pointers
// keep their positions.
func (r *Router) InjectMove(x, y float64) {
	if len(r.inject.pointers) == 0 {
		return
	}
	r.inject.pointers[0].X, r.inject.pointers[0].Y = x, y
	r.queue(ActionMove, 0)
}

// InjectPointerMove queues a move of pointer id to (x, y).
func (r *Router) InjectPointerMove(id int, x, y float64) {
	i := r.inject.indexOf(id)
	if i < 0 {
		return
	}
	r.inject.pointers[i].X, r.inject.pointers[i].Y = x, y
	r.queue(ActionMove, i)
}

// InjectPointerDown queues a secondary pointer at (x, y) and returns its id.
func (r *Router) InjectPointerDown(x, y float64) int {
	id := r.inject.nextID()
	r.inject.pointers = append(r.inject.pointers, Pointer{ID: id, X: x, Y: y})
	r.queue(ActionPointerDown, len(r.inject.pointers)-1)
	return id
}

// InjectPointerUp queues the lift of pointer id while others stay down.
func (r *Router) InjectPointerUp(id int) {
	i := r.inject.indexOf(id)
	if i < 0 {
		return
	}
	r.queue(ActionPointerUp, i)
	r.inject.pointers = append(r.inject.pointers[:i], r.inject.pointers[i+1:]...)
}

// InjectUp queues the end of the touch sequence with the primary pointer
// lifting at (x, y).
func (r *Router) InjectUp(x, y float64) {
	if len(r.inject.pointers) == 0 {
		r.inject.pointers = append(r.inject.pointers, Pointer{})
	}
	r.inject.pointers = r.inject.pointers[:1]
	r.inject.pointers[0].X, r.inject.pointers[0].Y = x, y
	r.queue(ActionUp, 0)
	r.inject.reset()
}

// InjectCancel queues a platform cancel of the touch sequence.
func (r *Router) InjectCancel() {
	if len(r.inject.pointers) == 0 {
		return
	}
	r.queue(ActionCancel, 0)
	r.inject.reset()
}

// InjectTap queues a down followed by an up at the same position. Consumes
// two frames.
func (r *Router) InjectTap(x, y float64) {
	r.InjectDown(x, y)
	r.InjectUp(x, y)
}

// InjectSwipe queues a full swipe: down at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and up at (toX, toY).
// The sequence consumes frames frames; the minimum is 2.
func (r *Router) InjectSwipe(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	r.InjectDown(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		r.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	r.InjectUp(toX, toY)
}

// processInjectedInput pops one queued event and routes it. Returns true if
// an event was delivered.
func (r *Router) processInjectedInput() bool {
	if len(r.injectQueue) == 0 {
		return false
	}
	ev := r.injectQueue[0]
	copy(r.injectQueue, r.injectQueue[1:])
	r.injectQueue = r.injectQueue[:len(r.injectQueue)-1]

	r.OnMotionEvent(&ev)
	return true
}
