// Package ecs provides ECS adapters for corridor.
package ecs

import (
	"github.com/phanxgames/corridor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// NavigationEventType is the Donburi event type for corridor navigation
// events. Subscribe to this in your ECS systems to receive overlay and pinch
// events.
var NavigationEventType = events.NewEventType[corridor.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Navigation
// events are published to NavigationEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) corridor.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Emit(event corridor.Event) {
	NavigationEventType.Publish(s.world, event)
}
