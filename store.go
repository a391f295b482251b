package quickswipe

// GestureStore is the interface for optional event sinks (for example an
// ECS world). When set on a Consumer, lifecycle events are forwarded to it.
type GestureStore interface {
	EmitGesture(event GestureEvent)
}

// GestureEventType identifies a gesture lifecycle event.
type GestureEventType uint8

const (
	GestureStarted   GestureEventType = iota // pilfer slop passed and the gesture was claimed
	GestureEnded                             // the user lifted with the gesture armed
	GestureCancelled                         // cancelled by the platform or by contention
	GestureFinished                          // the consumer released its handler
	GestureHandoff                           // the consumer was replaced mid-flight
)

func (t GestureEventType) String() string {
	switch t {
	case GestureStarted:
		return "started"
	case GestureEnded:
		return "ended"
	case GestureCancelled:
		return "cancelled"
	case GestureFinished:
		return "finished"
	case GestureHandoff:
		return "handoff"
	default:
		return "unknown"
	}
}

// GestureEvent carries gesture data for stores.
type GestureEvent struct {
	Type         GestureEventType
	Edge         NavEdge
	EventTime    int64
	DownPos      Vec2
	Displacement float64
	// Valid for GestureEnded.
	Velocity    float64
	VelocityVec Vec2
	// Valid for GestureHandoff.
	Continued bool
	GoingHome bool
}
