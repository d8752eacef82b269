package swipe

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// Dispatcher receives the events produced by Input. *Element implements it.
type Dispatcher interface {
	Dispatch(evt Event)
}

// inputSource abstracts the ebiten polling API so Input can run headless.
type inputSource interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(ebiten.MouseButton) bool
	AppendTouchIDs([]ebiten.TouchID) []ebiten.TouchID
	TouchPosition(ebiten.TouchID) (int, int)
}

type ebitenSource struct{}

func (ebitenSource) CursorPosition() (int, int) { return ebiten.CursorPosition() }
func (ebitenSource) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}
func (ebitenSource) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}
func (ebitenSource) TouchPosition(id ebiten.TouchID) (int, int) { return ebiten.TouchPosition(id) }

// --- Per-pointer state ---

type pointerState struct {
	down  bool
	lastX float64
	lastY float64
}

// Input polls ebiten mouse and touch state once per frame and turns the
// changes into events on a Dispatcher. Both event families are produced:
// every contact yields pointer events, and fingers additionally yield
// touch events carrying the full ordered contact list.
//
// Call Update from your game's Update method.
type Input struct {
	target Dispatcher
	src    inputSource

	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	injectQueue []syntheticFrame
	runner      *ScriptRunner

	// OriginX and OriginY are subtracted from screen coordinates, so
	// events report positions relative to the surface.
	OriginX, OriginY float64
}

// NewInput creates an Input that dispatches into target.
func NewInput(target Dispatcher) *Input {
	return newInput(target, ebitenSource{})
}

func newInput(target Dispatcher, src inputSource) *Input {
	return &Input{target: target, src: src}
}

// Update advances one frame. Injected events, when queued, replace real
// mouse and touch input for the frame.
func (in *Input) Update() {
	if in.runner != nil {
		in.runner.step(in)
	}
	if in.processInjectedInput() {
		return
	}
	in.processMousePointer()
	in.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0). Any button counts
// as contact; mouse never produces touch events.
func (in *Input) processMousePointer() {
	mx, my := in.src.CursorPosition()
	x, y := float64(mx)-in.OriginX, float64(my)-in.OriginY

	pressed := in.src.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		in.src.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		in.src.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	ps := &in.pointers[0]
	switch {
	case pressed && !ps.down:
		ps.down = true
		in.dispatchPointer(EventPointerDown, PointerMouse, 0, x, y)
	case !pressed && ps.down:
		ps.down = false
		in.dispatchPointer(EventPointerUp, PointerMouse, 0, x, y)
	case pressed && ps.down && (x != ps.lastX || y != ps.lastY):
		in.dispatchPointer(EventPointerMove, PointerMouse, 0, x, y)
	}
	ps.lastX = x
	ps.lastY = y
}

// processTouchPointers handles touch input (pointers 1-9).
func (in *Input) processTouchPointers() {
	touchIDs := in.src.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	var active, started, moved [maxPointers]bool
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true

		tx, ty := in.src.TouchPosition(tid)
		x, y := float64(tx)-in.OriginX, float64(ty)-in.OriginY
		ps := &in.pointers[slot]
		if !ps.down {
			ps.down = true
			started[slot] = true
		} else if x != ps.lastX || y != ps.lastY {
			moved[slot] = true
		}
		ps.lastX = x
		ps.lastY = y
	}

	var released [maxPointers]bool
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !active[i] {
			released[i] = true
			in.pointers[i].down = false
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}

	touches := in.activeTouches()
	anyMoved := false
	for i := 1; i < maxPointers; i++ {
		if started[i] {
			ps := in.pointers[i]
			in.dispatchPointer(EventPointerDown, PointerTouch, i, ps.lastX, ps.lastY)
			in.target.Dispatch(Event{Type: EventTouchStart, Touches: touches})
		}
		if moved[i] {
			anyMoved = true
			ps := in.pointers[i]
			in.dispatchPointer(EventPointerMove, PointerTouch, i, ps.lastX, ps.lastY)
		}
	}
	if anyMoved {
		in.target.Dispatch(Event{Type: EventTouchMove, Touches: touches})
	}
	for i := 1; i < maxPointers; i++ {
		if released[i] {
			ps := in.pointers[i]
			in.dispatchPointer(EventPointerUp, PointerTouch, i, ps.lastX, ps.lastY)
			in.target.Dispatch(Event{Type: EventTouchEnd, Touches: touches})
		}
	}
}

// activeTouches lists the fingers currently down, in slot order.
func (in *Input) activeTouches() []Touch {
	var touches []Touch
	for i := 1; i < maxPointers; i++ {
		if in.pointers[i].down {
			touches = append(touches, Touch{ID: i, ClientX: in.pointers[i].lastX, ClientY: in.pointers[i].lastY})
		}
	}
	return touches
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *Input) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

func (in *Input) dispatchPointer(typ EventType, pt PointerType, id int, x, y float64) {
	in.target.Dispatch(Event{
		Type:        typ,
		PointerType: pt,
		PointerID:   id,
		ClientX:     x,
		ClientY:     y,
	})
}
