package ecs

import (
	"github.com/phanxgames/quickswipe"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for gesture lifecycle events.
var GestureEventType = events.NewEventType[quickswipe.GestureEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates a GestureStore backed by a Donburi world. Events
// are queued on GestureEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) quickswipe.GestureStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitGesture(event quickswipe.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
