package quickswipe

import "testing"

func TestLoadGestureScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "down", "x": 540, "y": 2300},
			{"action": "move", "x": 540, "y": 2000},
			{"action": "wait", "frames": 3},
			{"action": "up", "x": 540, "y": 1900}
		]
	}`)

	runner, err := LoadGestureScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "down" || runner.steps[0].Y != 2300 {
		t.Error("step 0 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadGestureScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "screenshot"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadGestureScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestGestureRunner_Swipe(t *testing.T) {
	h := newRouterHarness(t)
	runner, err := LoadGestureScript([]byte(`{"steps": [
		{"action": "swipe", "fromX": 500, "fromY": 1900, "toX": 500, "toY": 1500, "frames": 4}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	h.r.SetGestureRunner(runner)

	// First update: the runner queues 4 events and one is delivered.
	h.r.Update()
	if len(h.r.injectQueue) != 3 {
		t.Fatalf("expected 3 queued events, got %d", len(h.r.injectQueue))
	}
	if runner.Done() {
		t.Error("runner should not be done while the inject queue has events")
	}
	for i := 0; i < 3; i++ {
		h.r.Update()
	}
	h.r.Update()
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and the queue drained")
	}
	if len(h.handlers) != 1 || h.handlers[0].ended != 1 {
		t.Errorf("expected one ended gesture, handlers = %d", len(h.handlers))
	}
}

func TestGestureRunner_Wait(t *testing.T) {
	h := newRouterHarness(t)
	runner, err := LoadGestureScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "down", "x": 500, "y": 1900}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	h.r.SetGestureRunner(runner)

	for i := 0; i < 3; i++ {
		h.r.Update()
		if h.r.Current() != nil {
			t.Fatalf("down delivered during wait frame %d", i)
		}
	}
	h.r.Update()
	if h.r.Current() == nil {
		t.Error("down should be delivered after the wait")
	}
	h.r.Update()
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestGestureRunner_MultiTouch(t *testing.T) {
	h := newRouterHarness(t)
	runner, err := LoadGestureScript([]byte(`{"steps": [
		{"action": "down", "x": 500, "y": 1900},
		{"action": "pointerdown", "x": 100, "y": 100}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	h.r.SetGestureRunner(runner)
	for i := 0; i < 4; i++ {
		h.r.Update()
	}
	// A second finger outside the swipe region cancels before the slop.
	if h.done != 1 {
		t.Errorf("OnComplete calls = %d, want 1", h.done)
	}
}
