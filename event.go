package swipe

// EventType identifies a kind of input event delivered to a Surface.
type EventType uint8

const (
	EventPointerDown EventType = iota // fires when a pointer makes contact or a button is pressed
	EventPointerUp                    // fires when a pointer lifts or a button is released
	EventPointerMove                  // fires when a pressed pointer moves
	EventTouchStart                   // fires when a finger touches the surface
	EventTouchMove                    // fires when any active finger moves
	EventTouchEnd                     // fires when a finger leaves the surface
)

var eventTypeNames = [...]string{
	EventPointerDown: "pointerdown",
	EventPointerUp:   "pointerup",
	EventPointerMove: "pointermove",
	EventTouchStart:  "touchstart",
	EventTouchMove:   "touchmove",
	EventTouchEnd:    "touchend",
}

// String returns the DOM-style name of the event type, e.g. "pointerdown".
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// ParseEventType maps a DOM-style event name back to its EventType.
func ParseEventType(name string) (EventType, bool) {
	for i, n := range eventTypeNames {
		if n == name {
			return EventType(i), true
		}
	}
	return 0, false
}

// PointerType identifies the device that produced a pointer event.
type PointerType string

const (
	PointerMouse PointerType = "mouse"
	PointerPen   PointerType = "pen"
	PointerTouch PointerType = "touch"
)

// Touch is a single finger contact.
type Touch struct {
	ID      int
	ClientX float64
	ClientY float64
}

// Event is an input event as seen by Surface listeners.
//
// Pointer events carry ClientX/ClientY and PointerType. Touch events carry
// the ordered list of contacts still on the surface in Touches; for
// EventTouchEnd the lifted finger is no longer part of that list.
type Event struct {
	Type        EventType
	PointerType PointerType
	PointerID   int
	ClientX     float64
	ClientY     float64
	Touches     []Touch
}

// isPenOrTouch reports whether a pointer event came from a pen or finger.
func (e Event) isPenOrTouch() bool {
	return e.PointerType == PointerPen || e.PointerType == PointerTouch
}

// firstTouch returns the first active contact, if any.
func (e Event) firstTouch() (Touch, bool) {
	if len(e.Touches) == 0 {
		return Touch{}, false
	}
	return e.Touches[0], true
}
