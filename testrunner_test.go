package swipe

import "testing"

func TestLoadGestureScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "swipe", "fromX": 100, "toX": 300, "y": 40, "frames": 3},
			{"action": "wait", "frames": 2},
			{"action": "pointer", "event": "pointerdown", "x": 10, "pointerType": "pen"},
			{"action": "touch", "event": "touchmove", "touches": [{"x": 1}, {"x": 2}]}
		]
	}`)

	runner, err := LoadGestureScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if st := runner.steps[0]; st.Action != "swipe" || st.FromX != 100 || st.ToX != 300 || st.Frames != 3 {
		t.Errorf("step 0 mismatch: %+v", st)
	}
	if st := runner.steps[2]; st.pointerType() != PointerPen {
		t.Errorf("step 2 pointer type = %q", st.pointerType())
	}
	if st := runner.steps[3]; len(st.Touches) != 2 {
		t.Errorf("step 3 touches = %v", st.Touches)
	}
}

func TestLoadGestureScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "fling"}]}`},
		{"touch event on pointer", `{"steps": [{"action": "pointer", "event": "touchstart"}]}`},
		{"pointer event on touch", `{"steps": [{"action": "touch", "event": "pointerup"}]}`},
		{"unknown event", `{"steps": [{"action": "pointer", "event": "click"}]}`},
		{"unknown swipe pointer type", `{"steps": [{"action": "swipe", "pointerType": "finger"}]}`},
		{"unknown pointer type", `{"steps": [{"action": "pointer", "event": "pointerdown", "pointerType": "Touch"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadGestureScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScriptRunnerDrivesDetector(t *testing.T) {
	el := NewElement("s")
	in := newInput(el, newFakeSource())
	var rec swipeRecorder
	New(el, pointerPlatform, rec.config())

	runner, err := LoadGestureScript([]byte(`{"steps": [
		{"action": "swipe", "fromX": 100, "toX": 300, "frames": 3},
		{"action": "wait", "frames": 2},
		{"action": "pointer", "event": "pointerdown", "x": 300, "pointerType": "pen"},
		{"action": "pointer", "event": "pointerup", "x": 100, "pointerType": "pen"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	in.SetScriptRunner(runner)

	for i := 0; i < 20 && !runner.Done(); i++ {
		in.Update()
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	rec.expect(t, 1, 1, 2)
}

func TestScriptRunnerTouchSteps(t *testing.T) {
	el := NewElement("s")
	in := newInput(el, newFakeSource())
	var rec swipeRecorder
	New(el, touchPlatform, rec.config())

	runner, err := LoadGestureScript([]byte(`{"steps": [
		{"action": "touch", "event": "touchstart", "touches": [{"x": 200}]},
		{"action": "touch", "event": "touchmove", "touches": [{"x": 400}, {"x": 500}]},
		{"action": "touch", "event": "touchend"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	in.SetScriptRunner(runner)

	for i := 0; i < 10 && !runner.Done(); i++ {
		in.Update()
	}
	rec.expect(t, 0, 0, 1)
}

func TestScriptRunnerWaitFrames(t *testing.T) {
	in := newInput(&eventLog{}, newFakeSource())
	runner, err := LoadGestureScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	in.SetScriptRunner(runner)

	frames := 0
	for !runner.Done() && frames < 10 {
		in.Update()
		frames++
	}
	if frames != 3 {
		t.Errorf("wait consumed %d frames, want 3", frames)
	}
}
