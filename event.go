package quickswipe

// Action is the masked action of a MotionEvent.
type Action uint8

const (
	ActionDown        Action = iota // first pointer went down
	ActionUp                        // last pointer went up
	ActionMove                      // one or more pointers moved
	ActionCancel                    // the sequence was aborted
	ActionPointerDown               // a secondary pointer went down
	ActionPointerUp                 // a secondary pointer went up
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionUp:
		return "up"
	case ActionMove:
		return "move"
	case ActionCancel:
		return "cancel"
	case ActionPointerDown:
		return "pointer_down"
	case ActionPointerUp:
		return "pointer_up"
	default:
		return "unknown"
	}
}

// InvalidPointerID marks "no pointer tracked".
const InvalidPointerID = -1

// EdgeNavBar is OR-ed into MotionEvent.EdgeFlags for events proxied to the
// previewed screen, marking them as originating from the navigation edge.
const EdgeNavBar uint32 = 1 << 8

// SourceClass is the input device class that produced an event.
type SourceClass uint32

const (
	SourceUnknown     SourceClass = 0
	SourceTouchscreen SourceClass = 0x1002
	SourceMouse       SourceClass = 0x2002
	SourceStylus      SourceClass = 0x4002
)

// Pointer is one pointer's sample inside a MotionEvent.
type Pointer struct {
	ID   int
	X, Y float64
}

// MotionEvent is one entry of the ordered pointer event stream. Pointers
// holds every pointer currently down; for ActionPointerDown/ActionPointerUp
// ActionIndex selects the pointer that changed state.
type MotionEvent struct {
	Action      Action
	ActionIndex int
	Pointers    []Pointer
	EventTime   int64 // milliseconds
	EdgeFlags   uint32
	Source      SourceClass
}

// PointerCount returns the number of pointers in the event.
func (e *MotionEvent) PointerCount() int {
	return len(e.Pointers)
}

// PointerID returns the id of the pointer at index i, or InvalidPointerID.
func (e *MotionEvent) PointerID(i int) int {
	if i < 0 || i >= len(e.Pointers) {
		return InvalidPointerID
	}
	return e.Pointers[i].ID
}

// Pos returns the position of the pointer at index i. Out-of-range indexes
// return the zero vector.
func (e *MotionEvent) Pos(i int) Vec2 {
	if i < 0 || i >= len(e.Pointers) {
		return Vec2{}
	}
	p := e.Pointers[i]
	return Vec2{X: p.X, Y: p.Y}
}

// ActionPos returns the position of the pointer at ActionIndex.
func (e *MotionEvent) ActionPos() Vec2 {
	return e.Pos(e.ActionIndex)
}

// FindPointerIndex returns the index of the pointer with the given id, or -1.
func (e *MotionEvent) FindPointerIndex(id int) int {
	for i := range e.Pointers {
		if e.Pointers[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the event.
func (e *MotionEvent) Clone() MotionEvent {
	c := *e
	c.Pointers = append([]Pointer(nil), e.Pointers...)
	return c
}

// EventSink receives motion events in arrival order.
type EventSink interface {
	OnMotionEvent(ev *MotionEvent)
}
