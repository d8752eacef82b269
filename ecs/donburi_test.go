package ecs

import (
	"testing"

	"github.com/phanxgames/swipe"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

var touchDevice = swipe.Platform{TouchStart: true, MaxTouchPoints: 5, PointerEvents: true}

func gesture(el *swipe.Element, fromX, toX float64) {
	el.Dispatch(swipe.Event{Type: swipe.EventPointerDown, PointerType: swipe.PointerTouch, ClientX: fromX})
	el.Dispatch(swipe.Event{Type: swipe.EventPointerUp, PointerType: swipe.PointerTouch, ClientX: toX})
}

func TestNewDonburiConfig(t *testing.T) {
	world := donburi.NewWorld()
	cfg := NewDonburiConfig(world, "gallery")
	if cfg.LeftCallback == nil || cfg.RightCallback == nil || cfg.EndCallback == nil {
		t.Fatal("expected all callbacks set")
	}
}

func TestDonburiConfig_PublishesSwipes(t *testing.T) {
	world := donburi.NewWorld()
	el := swipe.NewElement("gallery")
	swipe.New(el, touchDevice, NewDonburiConfig(world, "gallery"))

	var received []SwipeEvent
	SwipeEventType.Subscribe(world, func(w donburi.World, e SwipeEvent) {
		received = append(received, e)
	})

	gesture(el, 100, 300)
	gesture(el, 300, 100)
	gesture(el, 100, 110)

	// Events are queued until processed.
	SwipeEventType.ProcessEvents(world)

	want := []SwipeKind{SwipeRight, SwipeEnd, SwipeLeft, SwipeEnd, SwipeEnd}
	if len(received) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(received), received)
	}
	for i, k := range want {
		if received[i].Kind != k {
			t.Errorf("event %d kind = %v, want %v", i, received[i].Kind, k)
		}
		if received[i].Surface != "gallery" {
			t.Errorf("event %d surface = %q", i, received[i].Surface)
		}
	}
}

func TestDonburiConfig_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	cfg := NewDonburiConfig(world, "s")

	var count1, count2 int
	SwipeEventType.Subscribe(world, func(w donburi.World, e SwipeEvent) {
		count1++
	})
	SwipeEventType.Subscribe(world, func(w donburi.World, e SwipeEvent) {
		count2++
	})

	cfg.EndCallback()
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestSwipeKindString(t *testing.T) {
	tests := []struct {
		kind SwipeKind
		want string
	}{
		{SwipeLeft, "left"},
		{SwipeRight, "right"},
		{SwipeEnd, "end"},
		{SwipeKind(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
