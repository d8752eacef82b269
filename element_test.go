package swipe

import "testing"

func TestElementDispatchOrder(t *testing.T) {
	el := NewElement("e")
	var order []int
	el.On(EventPointerDown, ".a", func(Event) { order = append(order, 1) })
	el.On(EventPointerDown, ".b", func(Event) { order = append(order, 2) })
	el.On(EventPointerDown, ".a", func(Event) { order = append(order, 3) })

	el.Dispatch(Event{Type: EventPointerDown})

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("order = %v, want [1 2 3]", order)
	}
}

func TestElementDispatchOnlyMatchingType(t *testing.T) {
	el := NewElement("e")
	var downs, ups int
	el.On(EventPointerDown, ".a", func(Event) { downs++ })
	el.On(EventPointerUp, ".a", func(Event) { ups++ })

	el.Dispatch(Event{Type: EventPointerUp})
	el.Dispatch(Event{Type: EventPointerUp})

	if downs != 0 || ups != 2 {
		t.Errorf("downs=%d ups=%d, want 0 and 2", downs, ups)
	}
}

func TestElementOffNamespace(t *testing.T) {
	el := NewElement("e")
	var a, b int
	el.On(EventTouchStart, ".a", func(Event) { a++ })
	el.On(EventTouchEnd, ".a", func(Event) { a++ })
	el.On(EventTouchStart, ".b", func(Event) { b++ })

	el.Off(".a")

	if el.ListenerCount(EventTouchStart) != 1 || el.ListenerCount(EventTouchEnd) != 0 {
		t.Fatalf("listener counts after Off: start=%d end=%d",
			el.ListenerCount(EventTouchStart), el.ListenerCount(EventTouchEnd))
	}
	el.Dispatch(Event{Type: EventTouchStart})
	el.Dispatch(Event{Type: EventTouchEnd})
	if a != 0 || b != 1 {
		t.Errorf("a=%d b=%d, want 0 and 1", a, b)
	}

	// Unknown namespace is a no-op.
	el.Off(".missing")
	if el.ListenerCount(EventTouchStart) != 1 {
		t.Error("Off of unknown namespace removed listeners")
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	el := NewElement("e")
	var a, b int
	h := el.On(EventPointerUp, ".x", func(Event) { a++ })
	el.On(EventPointerUp, ".x", func(Event) { b++ })

	h.Remove()
	el.Dispatch(Event{Type: EventPointerUp})

	if a != 0 || b != 1 {
		t.Errorf("a=%d b=%d, want 0 and 1", a, b)
	}

	// Removing twice and removing a zero handle are safe.
	h.Remove()
	CallbackHandle{}.Remove()
}

func TestElementRemoveDuringDispatch(t *testing.T) {
	el := NewElement("e")
	var calls int
	var h CallbackHandle
	h = el.On(EventPointerDown, ".x", func(Event) {
		calls++
		h.Remove()
	})
	el.On(EventPointerDown, ".x", func(Event) { calls++ })

	el.Dispatch(Event{Type: EventPointerDown})
	if calls != 2 {
		t.Fatalf("calls = %d after first dispatch, want 2", calls)
	}
	el.Dispatch(Event{Type: EventPointerDown})
	if calls != 3 {
		t.Errorf("calls = %d after second dispatch, want 3", calls)
	}
}

func TestElementNilHandlerIgnored(t *testing.T) {
	el := NewElement("e")
	h := el.On(EventPointerDown, ".x", nil)
	if el.ListenerCount(EventPointerDown) != 0 {
		t.Error("nil handler should not be registered")
	}
	h.Remove()
}

func TestElementClasses(t *testing.T) {
	var el Element
	if el.HasClass("pointer-event") {
		t.Error("zero element should have no classes")
	}
	el.AddClass("pointer-event")
	if !el.HasClass("pointer-event") {
		t.Error("expected class after AddClass")
	}
	el.RemoveClass("pointer-event")
	if el.HasClass("pointer-event") {
		t.Error("expected class removed")
	}
}

func TestElementImplementsSurface(t *testing.T) {
	var _ Surface = NewElement("e")
	var _ Dispatcher = NewElement("e")
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{EventPointerDown, "pointerdown"},
		{EventPointerUp, "pointerup"},
		{EventPointerMove, "pointermove"},
		{EventTouchStart, "touchstart"},
		{EventTouchMove, "touchmove"},
		{EventTouchEnd, "touchend"},
		{EventType(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if tt.want == "unknown" {
				return
			}
			if got, ok := ParseEventType(tt.want); !ok || got != tt.typ {
				t.Errorf("ParseEventType(%q) = %v, %v", tt.want, got, ok)
			}
		})
	}
	if _, ok := ParseEventType("click"); ok {
		t.Error("ParseEventType should reject unknown names")
	}
}
