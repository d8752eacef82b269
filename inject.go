package swipe

// syntheticFrame is the list of events delivered in one injected frame.
type syntheticFrame []Event

// InjectPointer queues a single pointer event. The event is consumed on
// the next Update call.
func (in *Input) InjectPointer(typ EventType, pt PointerType, x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticFrame{{
		Type:        typ,
		PointerType: pt,
		ClientX:     x,
		ClientY:     y,
	}})
}

// InjectTouch queues a single touch event carrying the given contacts.
func (in *Input) InjectTouch(typ EventType, touches ...Touch) {
	in.injectQueue = append(in.injectQueue, syntheticFrame{{
		Type:    typ,
		Touches: touches,
	}})
}

// InjectSwipe queues a full horizontal gesture: contact at fromX, linearly
// interpolated moves over frames-2 intermediate frames, and release at toX.
// The total sequence consumes `frames` frames. Minimum frames is 2.
//
// Pen and touch gestures emit both event families, as a real device does;
// mouse gestures emit pointer events only.
func (in *Input) InjectSwipe(fromX, toX, y float64, frames int, pt PointerType) {
	if frames < 2 {
		frames = 2
	}
	withTouch := pt != PointerMouse

	down := syntheticFrame{{Type: EventPointerDown, PointerType: pt, ClientX: fromX, ClientY: y}}
	if withTouch {
		down = append(down, Event{Type: EventTouchStart, Touches: []Touch{{ID: 1, ClientX: fromX, ClientY: y}}})
	}
	in.injectQueue = append(in.injectQueue, down)

	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		move := syntheticFrame{{Type: EventPointerMove, PointerType: pt, ClientX: x, ClientY: y}}
		if withTouch {
			move = append(move, Event{Type: EventTouchMove, Touches: []Touch{{ID: 1, ClientX: x, ClientY: y}}})
		}
		in.injectQueue = append(in.injectQueue, move)
	}

	up := syntheticFrame{{Type: EventPointerUp, PointerType: pt, ClientX: toX, ClientY: y}}
	if withTouch {
		up = append(up, Event{Type: EventTouchEnd})
	}
	in.injectQueue = append(in.injectQueue, up)
}

// Pending returns the number of injected frames not yet consumed.
func (in *Input) Pending() int {
	return len(in.injectQueue)
}

// processInjectedInput pops one frame from the inject queue and dispatches
// its events. Returns true if a frame was consumed (real input should be
// skipped).
func (in *Input) processInjectedInput() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	frame := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue[len(in.injectQueue)-1] = nil
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	for _, evt := range frame {
		in.target.Dispatch(evt)
	}
	return true
}
