package swipe

import (
	"encoding/json"
	"fmt"
)

// scriptTouch is a contact in a "touch" step.
type scriptTouch struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action      string        `json:"action"`
	Event       string        `json:"event,omitempty"`
	PointerType string        `json:"pointerType,omitempty"`
	X           float64       `json:"x,omitempty"`
	Y           float64       `json:"y,omitempty"`
	FromX       float64       `json:"fromX,omitempty"`
	ToX         float64       `json:"toX,omitempty"`
	Frames      int           `json:"frames,omitempty"`
	Touches     []scriptTouch `json:"touches,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a JSON gesture script through an Input, one step
// per frame. Attach it with Input.SetScriptRunner.
//
// Supported actions:
//
//	{"action": "swipe", "fromX": 100, "toX": 300, "y": 50, "frames": 4, "pointerType": "touch"}
//	{"action": "pointer", "event": "pointerdown", "x": 100, "pointerType": "pen"}
//	{"action": "touch", "event": "touchmove", "touches": [{"x": 120}, {"x": 300}]}
//	{"action": "wait", "frames": 3}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadGestureScript parses and validates a JSON gesture script.
func LoadGestureScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse gesture script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

func (st scriptStep) validate() error {
	switch PointerType(st.PointerType) {
	case "", PointerMouse, PointerPen, PointerTouch:
	default:
		return fmt.Errorf("unknown pointer type %q", st.PointerType)
	}
	switch st.Action {
	case "swipe", "wait":
		return nil
	case "pointer":
		typ, ok := ParseEventType(st.Event)
		if !ok || (typ != EventPointerDown && typ != EventPointerUp && typ != EventPointerMove) {
			return fmt.Errorf("unknown pointer event %q", st.Event)
		}
		return nil
	case "touch":
		typ, ok := ParseEventType(st.Event)
		if !ok || (typ != EventTouchStart && typ != EventTouchMove && typ != EventTouchEnd) {
			return fmt.Errorf("unknown touch event %q", st.Event)
		}
		return nil
	}
	return fmt.Errorf("unknown action %q", st.Action)
}

func (st scriptStep) pointerType() PointerType {
	if st.PointerType == "" {
		return PointerTouch
	}
	return PointerType(st.PointerType)
}

// SetScriptRunner attaches a ScriptRunner. The runner's step method is
// called from Input.Update before injected input is processed.
func (in *Input) SetScriptRunner(runner *ScriptRunner) {
	in.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Input.Update.
func (r *ScriptRunner) step(in *Input) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(in.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		if r.waitCount == 0 && r.cursor >= len(r.steps) {
			r.done = true
		}
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "swipe":
		in.InjectSwipe(st.FromX, st.ToX, st.Y, st.Frames, st.pointerType())
	case "pointer":
		typ, _ := ParseEventType(st.Event)
		in.InjectPointer(typ, st.pointerType(), st.X, st.Y)
	case "touch":
		typ, _ := ParseEventType(st.Event)
		touches := make([]Touch, len(st.Touches))
		for i, t := range st.Touches {
			touches[i] = Touch{ID: i + 1, ClientX: t.X, ClientY: t.Y}
		}
		in.InjectTouch(typ, touches...)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(in.injectQueue) == 0 {
		r.done = true
	}
}
