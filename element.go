package swipe

// Surface is the target a Detector attaches to. It delivers input events
// to named listeners and carries a set of state classes.
type Surface interface {
	// On registers fn for events of type event under namespace.
	On(event EventType, namespace string, fn func(Event)) CallbackHandle
	// Off removes every listener registered under namespace.
	Off(namespace string)
	// AddClass marks the surface with a state class.
	AddClass(name string)
}

// --- Handler registry ---

type listener struct {
	id        uint32
	namespace string
	fn        func(Event)
}

type handlerRegistry struct {
	byType [len(eventTypeNames)][]listener
	nextID uint32
}

// CallbackHandle allows removing a single registered listener.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this listener so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil || int(h.event) >= len(h.reg.byType) {
		return
	}
	h.reg.byType[h.event] = removeListener(h.reg.byType[h.event], h.id)
}

func removeListener(s []listener, id uint32) []listener {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Element ---

// Element is the standard Surface implementation. Input dispatches into it
// each frame; callers may also call Dispatch directly.
type Element struct {
	Name string

	handlers handlerRegistry
	classes  map[string]struct{}
	debug    bool
}

// NewElement creates an empty element with the given name.
func NewElement(name string) *Element {
	return &Element{Name: name, classes: make(map[string]struct{})}
}

// SetDebug enables stderr tracing of subscriptions and dispatched events.
func (e *Element) SetDebug(enabled bool) {
	e.debug = enabled
}

// On registers fn for events of type event. The namespace groups listeners
// so they can be removed together with Off.
func (e *Element) On(event EventType, namespace string, fn func(Event)) CallbackHandle {
	if int(event) >= len(e.handlers.byType) || fn == nil {
		return CallbackHandle{}
	}
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.byType[event] = append(e.handlers.byType[event], listener{id: id, namespace: namespace, fn: fn})
	debugf(e.debug, "%s: on %s%s", e.Name, event, namespace)
	return CallbackHandle{id: id, reg: &e.handlers, event: event}
}

// Off removes every listener registered under namespace, across all event
// types. Removing a namespace with no listeners is a no-op.
func (e *Element) Off(namespace string) {
	removed := 0
	for t := range e.handlers.byType {
		s := e.handlers.byType[t]
		kept := s[:0]
		for _, l := range s {
			if l.namespace == namespace {
				removed++
				continue
			}
			kept = append(kept, l)
		}
		for i := len(kept); i < len(s); i++ {
			s[i] = listener{}
		}
		e.handlers.byType[t] = kept
	}
	if removed > 0 {
		debugf(e.debug, "%s: off %s (%d listeners)", e.Name, namespace, removed)
	}
}

// Dispatch delivers evt to its listeners in registration order. Listeners
// added or removed while dispatching take effect from the next event.
func (e *Element) Dispatch(evt Event) {
	if int(evt.Type) >= len(e.handlers.byType) {
		return
	}
	s := e.handlers.byType[evt.Type]
	if len(s) == 0 {
		return
	}
	debugf(e.debug, "%s: %s x=%.1f pointer=%q touches=%d",
		e.Name, evt.Type, evt.ClientX, evt.PointerType, len(evt.Touches))
	snapshot := make([]listener, len(s))
	copy(snapshot, s)
	for _, l := range snapshot {
		l.fn(evt)
	}
}

// ListenerCount returns the number of listeners registered for event.
func (e *Element) ListenerCount(event EventType) int {
	if int(event) >= len(e.handlers.byType) {
		return 0
	}
	return len(e.handlers.byType[event])
}

// AddClass marks the element with a state class.
func (e *Element) AddClass(name string) {
	if e.classes == nil {
		e.classes = make(map[string]struct{})
	}
	e.classes[name] = struct{}{}
}

// RemoveClass clears a state class.
func (e *Element) RemoveClass(name string) {
	delete(e.classes, name)
}

// HasClass reports whether the element carries the given state class.
func (e *Element) HasClass(name string) bool {
	_, ok := e.classes[name]
	return ok
}
