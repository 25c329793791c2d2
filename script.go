package nodegraph

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Button string  `json:"button,omitempty"`
	Key    string  `json:"key,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
	Steps  int     `json:"steps,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure of a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// scriptTickDT is the frame time used by "tick" steps.
const scriptTickDT = float32(1.0 / 60.0)

// Script replays pointer, wheel and key input against a Panel, for scripted
// tests and demos. Coordinates are screen pixels.
//
//	{"steps": [
//	  {"action": "press", "x": 223, "y": 131},
//	  {"action": "move", "x": 300, "y": 131},
//	  {"action": "release", "x": 405, "y": 131},
//	  {"action": "drag", "button": "middle", "fromX": 10, "fromY": 10, "toX": 60, "toY": 10, "steps": 5},
//	  {"action": "key", "key": "ctrl"},
//	  {"action": "keyup", "key": "ctrl"},
//	  {"action": "wheel", "delta": 1, "x": 400, "y": 300},
//	  {"action": "tick", "frames": 30}
//	]}
type Script struct {
	steps  []scriptStep
	cursor int
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &Script{steps: f.Steps}, nil
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "press", "release", "move", "drag", "wheel", "tick":
	case "key", "keyup":
		if parseKey(st.Key) == KeyUnknown {
			return fmt.Errorf("unknown key %q", st.Key)
		}
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	if _, ok := parseButton(st.Button); !ok {
		return fmt.Errorf("unknown button %q", st.Button)
	}
	return nil
}

func parseButton(name string) (MouseButton, bool) {
	switch name {
	case "", "left":
		return MouseButtonLeft, true
	case "right":
		return MouseButtonRight, true
	case "middle":
		return MouseButtonMiddle, true
	}
	return MouseButtonLeft, false
}

// Done reports whether every step has run.
func (s *Script) Done() bool {
	return s.cursor >= len(s.steps)
}

// Step runs the next step against p and reports whether one ran.
func (s *Script) Step(p *Panel) bool {
	if s.Done() {
		return false
	}
	st := s.steps[s.cursor]
	s.cursor++

	button, _ := parseButton(st.Button)
	switch st.Action {
	case "press":
		p.PointerDown(button, st.X, st.Y)
	case "move":
		p.PointerMove(st.X, st.Y)
	case "release":
		p.PointerUp(button, st.X, st.Y)
	case "drag":
		p.Drag(button, st.FromX, st.FromY, st.ToX, st.ToY, st.Steps)
	case "key":
		p.KeyDown(parseKey(st.Key))
	case "keyup":
		p.KeyUp(parseKey(st.Key))
	case "wheel":
		p.Wheel(st.Delta, st.X, st.Y)
	case "tick":
		frames := max(st.Frames, 1)
		for range frames {
			p.Tick(scriptTickDT)
		}
	}
	return true
}

// Run runs every remaining step against p.
func (s *Script) Run(p *Panel) {
	for s.Step(p) {
	}
}

// Drag is a convenience that presses button at (fromX, fromY), moves in
// steps linearly interpolated moves ending at (toX, toY), and releases there.
// At least one move is made.
func (p *Panel) Drag(button MouseButton, fromX, fromY, toX, toY float64, steps int) {
	steps = max(steps, 1)
	p.PointerDown(button, fromX, fromY)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p.PointerMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	p.PointerUp(button, toX, toY)
}
