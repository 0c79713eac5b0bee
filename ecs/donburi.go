package ecs

import (
	"github.com/phanxgames/panzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TransformEventType carries every engine notification. A NotifyTransform
// event holds the transform just applied and, for double activation, the
// transition the sink was asked to animate. A NotifyActivation event follows
// the transform that pushed the target across scale 1 and reports the new
// Active flag.
var TransformEventType = events.NewEventType[panzoom.TransformEvent]()

// worldStore queues engine notifications on a world. They are delivered
// when the world's events are processed, not while the engine runs.
type worldStore struct {
	world donburi.World
}

// NewDonburiStore returns an EventStore that publishes to TransformEventType
// on world.
func NewDonburiStore(world donburi.World) panzoom.EventStore {
	return &worldStore{world: world}
}

func (s *worldStore) EmitEvent(event panzoom.TransformEvent) {
	TransformEventType.Publish(s.world, event)
}

// OnActivation subscribes fn to activation crossings only, which is what
// systems toggling a "zoomed" affordance need.
func OnActivation(world donburi.World, fn func(target string, active bool)) {
	TransformEventType.Subscribe(world, func(_ donburi.World, ev panzoom.TransformEvent) {
		if ev.Type == panzoom.NotifyActivation {
			fn(ev.Target, ev.Active)
		}
	})
}
