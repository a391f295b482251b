package quickswipe

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// touchReader is the subset of ebiten's input API polled by TouchSource.
type touchReader interface {
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
	CursorPosition() (int, int)
	MousePressed() bool
}

type ebitenReader struct{}

func (ebitenReader) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

func (ebitenReader) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

func (ebitenReader) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (ebitenReader) MousePressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// touchKey identifies a physical contact. The mouse is a single contact.
type touchKey struct {
	mouse bool
	id    ebiten.TouchID
}

type trackedTouch struct {
	key touchKey
	ptr Pointer
}

// TouchSource converts ebiten's polled touch and mouse state into a
// MotionEvent stream. Call Poll once per frame from the game's Update.
//
// Pointer ids are the smallest ids not in use when a contact lands, so a
// sequence always starts at pointer 0.
type TouchSource struct {
	// Mouse makes the left mouse button act as a pointer.
	Mouse bool

	reader  touchReader
	now     func() int64
	tracked []trackedTouch
	idBuf   []ebiten.TouchID
}

// NewTouchSource creates a source reading ebiten's global input state.
func NewTouchSource() *TouchSource {
	return &TouchSource{
		reader: ebitenReader{},
		now:    func() int64 { return time.Now().UnixMilli() },
	}
}

// Poll diffs the current contacts against the previous frame and delivers
// the resulting events to sink: one move for every contact that moved, then
// lifts, then new contacts.
func (s *TouchSource) Poll(sink EventSink) {
	now := s.now()
	current := s.readContacts()

	moved := false
	for i := range s.tracked {
		pos, ok := current[s.tracked[i].key]
		if !ok {
			continue
		}
		if s.tracked[i].ptr.X != pos.X || s.tracked[i].ptr.Y != pos.Y {
			s.tracked[i].ptr.X, s.tracked[i].ptr.Y = pos.X, pos.Y
			moved = true
		}
	}
	if moved {
		sink.OnMotionEvent(s.event(ActionMove, 0, now))
	}

	for i := 0; i < len(s.tracked); {
		if _, ok := current[s.tracked[i].key]; ok {
			i++
			continue
		}
		action := ActionPointerUp
		if len(s.tracked) == 1 {
			action = ActionUp
		}
		sink.OnMotionEvent(s.event(action, i, now))
		s.tracked = slices.Delete(s.tracked, i, i+1)
	}

	var fresh []touchKey
	for key := range current {
		if s.indexOf(key) < 0 {
			fresh = append(fresh, key)
		}
	}
	slices.SortFunc(fresh, func(a, b touchKey) int {
		if a.mouse != b.mouse {
			if a.mouse {
				return 1
			}
			return -1
		}
		return int(a.id) - int(b.id)
	})
	for _, key := range fresh {
		pos := current[key]
		s.tracked = append(s.tracked, trackedTouch{
			key: key,
			ptr: Pointer{ID: s.nextID(), X: pos.X, Y: pos.Y},
		})
		action := ActionPointerDown
		if len(s.tracked) == 1 {
			action = ActionDown
		}
		sink.OnMotionEvent(s.event(action, len(s.tracked)-1, now))
	}
}

func (s *TouchSource) readContacts() map[touchKey]Vec2 {
	s.idBuf = s.reader.AppendTouchIDs(s.idBuf[:0])
	current := make(map[touchKey]Vec2, len(s.idBuf)+1)
	for _, id := range s.idBuf {
		x, y := s.reader.TouchPosition(id)
		current[touchKey{id: id}] = Vec2{X: float64(x), Y: float64(y)}
	}
	if s.Mouse && s.reader.MousePressed() {
		x, y := s.reader.CursorPosition()
		current[touchKey{mouse: true}] = Vec2{X: float64(x), Y: float64(y)}
	}
	return current
}

func (s *TouchSource) event(action Action, actionIndex int, now int64) *MotionEvent {
	ptrs := make([]Pointer, len(s.tracked))
	for i, t := range s.tracked {
		ptrs[i] = t.ptr
	}
	source := SourceTouchscreen
	if s.tracked[actionIndex].key.mouse {
		source = SourceMouse
	}
	return &MotionEvent{
		Action:      action,
		ActionIndex: actionIndex,
		Pointers:    ptrs,
		EventTime:   now,
		Source:      source,
	}
}

func (s *TouchSource) indexOf(key touchKey) int {
	for i, t := range s.tracked {
		if t.key == key {
			return i
		}
	}
	return -1
}

func (s *TouchSource) nextID() int {
	id := 0
	for {
		used := false
		for _, t := range s.tracked {
			if t.ptr.ID == id {
				used = true
				break
			}
		}
		if !used {
			return id
		}
		id++
	}
}
