package quickswipe

import (
	"encoding/json"
	"fmt"
)

// gestureStep is a single action in a gesture script.
type gestureStep struct {
	Action  string  `json:"action"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Pointer int     `json:"pointer,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

type gestureScript struct {
	Steps []gestureStep `json:"steps"`
}

var knownSteps = map[string]bool{
	"down": true, "move": true, "up": true, "cancel": true,
	"pointerdown": true, "pointerup": true,
	"swipe": true, "tap": true, "wait": true,
}

// GestureRunner sequences injected touch events across frames for scripted
// gesture tests. Attach to a Router via SetGestureRunner.
type GestureRunner struct {
	steps     []gestureStep
	cursor    int
	waitCount int
	done      bool
}

// LoadGestureScript parses a JSON gesture script of the form
//
//	{"steps": [{"action": "swipe", "fromX": 540, "fromY": 2300, "toX": 540, "toY": 1400, "frames": 10}]}
//
// and returns a runner ready to attach to a Router.
func LoadGestureScript(jsonData []byte) (*GestureRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if !knownSteps[st.Action] {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &GestureRunner{steps: script.Steps}, nil
}

// Done reports whether every step has been executed.
func (g *GestureRunner) Done() bool {
	return g.done
}

// step advances the runner by one frame. Called from Router.Update.
func (g *GestureRunner) step(r *Router) {
	if g.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(r.injectQueue) > 0 {
		return
	}
	if g.waitCount > 0 {
		g.waitCount--
		return
	}
	if g.cursor >= len(g.steps) {
		g.done = true
		return
	}

	st := g.steps[g.cursor]
	g.cursor++

	switch st.Action {
	case "down":
		r.InjectDown(st.X, st.Y)
	case "move":
		if st.Pointer != 0 {
			r.InjectPointerMove(st.Pointer, st.X, st.Y)
		} else {
			r.InjectMove(st.X, st.Y)
		}
	case "up":
		r.InjectUp(st.X, st.Y)
	case "cancel":
		r.InjectCancel()
	case "pointerdown":
		r.InjectPointerDown(st.X, st.Y)
	case "pointerup":
		r.InjectPointerUp(st.Pointer)
	case "tap":
		r.InjectTap(st.X, st.Y)
	case "swipe":
		r.InjectSwipe(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			g.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if g.cursor >= len(g.steps) && g.waitCount == 0 && len(r.injectQueue) == 0 {
		g.done = true
	}
}
