package ecs

import (
	"github.com/phanxgames/swipe"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SwipeKind identifies which detector callback produced a SwipeEvent.
type SwipeKind uint8

const (
	SwipeLeft  SwipeKind = iota // leftward swipe past the threshold
	SwipeRight                  // rightward swipe past the threshold
	SwipeEnd                    // any gesture end
)

func (k SwipeKind) String() string {
	switch k {
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	case SwipeEnd:
		return "end"
	}
	return "unknown"
}

// SwipeEvent is published for every detector callback.
type SwipeEvent struct {
	Kind    SwipeKind
	Surface string // name given to NewDonburiConfig
}

// SwipeEventType is the Donburi event type for swipe events.
var SwipeEventType = events.NewEventType[SwipeEvent]()

// NewDonburiConfig returns a detector configuration that publishes every
// callback to SwipeEventType in world. Events are queued; systems receive
// them on ProcessEvents. For one gesture the direction event is always
// queued before the end event.
func NewDonburiConfig(world donburi.World, surface string) swipe.Config {
	publish := func(kind SwipeKind) swipe.Callback {
		return func() {
			SwipeEventType.Publish(world, SwipeEvent{Kind: kind, Surface: surface})
		}
	}
	return swipe.Config{
		LeftCallback:  publish(SwipeLeft),
		RightCallback: publish(SwipeRight),
		EndCallback:   publish(SwipeEnd),
	}
}
