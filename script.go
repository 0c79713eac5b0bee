package panzoom

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// scriptTarget declares a target and its initial layout.
type scriptTarget struct {
	ID        string     `json:"id"`
	Container [4]float64 `json:"container"` // x, y, width, height
	Element   [2]float64 `json:"element"`   // width, height
}

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action string       `json:"action"`
	Target string       `json:"target,omitempty"`
	X      float64      `json:"x,omitempty"`
	Y      float64      `json:"y,omitempty"`
	ToX    float64      `json:"toX,omitempty"`
	ToY    float64      `json:"toY,omitempty"`
	Points [][2]float64 `json:"points,omitempty"`
	Delta  float64      `json:"delta,omitempty"`
	From   float64      `json:"from,omitempty"`
	To     float64      `json:"to,omitempty"`
	Frames int          `json:"frames,omitempty"`
	Ms     float64      `json:"ms,omitempty"`

	// resize
	Container *[4]float64 `json:"container,omitempty"`
	Element   *[2]float64 `json:"element,omitempty"`

	// expect
	Scale   *float64 `json:"scale,omitempty"`
	OffsetX *float64 `json:"offsetX,omitempty"`
	OffsetY *float64 `json:"offsetY,omitempty"`
	Active  *bool    `json:"active,omitempty"`
}

// scriptFile is the top-level JSON structure for a gesture script.
type scriptFile struct {
	Config  json.RawMessage `json:"config,omitempty"`
	Targets []scriptTarget  `json:"targets"`
	Steps   []scriptStep    `json:"steps"`
}

// expectTolerance is the absolute tolerance of expect steps.
const expectTolerance = 1e-6

// Script is a parsed gesture script. It declares targets, an optional
// configuration and a sequence of input steps replayed on a virtual clock.
type Script struct {
	Config  Config
	targets []scriptTarget
	steps   []scriptStep
	layouts map[string]*StaticGeometry
}

// LoadScript parses a JSON gesture script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(f.Targets) == 0 {
		return nil, fmt.Errorf("parse gesture script: no targets")
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	cfg := DefaultConfig()
	if len(f.Config) > 0 {
		var err error
		if cfg, err = LoadConfig(f.Config); err != nil {
			return nil, fmt.Errorf("parse gesture script: %w", err)
		}
	}
	return &Script{Config: cfg, targets: f.Targets, steps: f.Steps}, nil
}

// Len returns the number of steps.
func (s *Script) Len() int {
	return len(s.steps)
}

// NewEngine creates an engine with the script's configuration and targets.
func (s *Script) NewEngine(sink RenderSink) *Engine {
	e := NewEngine(s.Config, sink)
	s.layouts = make(map[string]*StaticGeometry, len(s.targets))
	for _, st := range s.targets {
		g := &StaticGeometry{
			Container: Rect{st.Container[0], st.Container[1], st.Container[2], st.Container[3]},
			Element:   Size{st.Element[0], st.Element[1]},
		}
		s.layouts[st.ID] = g
		e.Register(st.ID, g)
	}
	return e
}

// Run replays every step on e, which must have been created by NewEngine.
// It stops at the first failed expect step.
func (s *Script) Run(e *Engine) error {
	if s.layouts == nil {
		return fmt.Errorf("run gesture script: engine not created by script")
	}
	synth := NewSynth(s.targets[0].ID, time.Unix(0, 0))
	e.SetClock(func() time.Time { return synth.Now })

	for i, st := range s.steps {
		if st.Target != "" {
			synth.Target = st.Target
		}
		if err := s.step(e, synth, st); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, st.Action, err)
		}
	}
	return nil
}

func (s *Script) step(e *Engine, synth *Synth, st scriptStep) error {
	switch st.Action {
	case "down":
		e.Handle(synth.Press(st.X, st.Y))
	case "move":
		e.Handle(synth.Move(st.X, st.Y))
	case "up":
		e.Handle(synth.Release(st.X, st.Y))
	case "click":
		e.Play(synth.Click(st.X, st.Y))
	case "doubleClick":
		e.Play(synth.DoubleClick(st.X, st.Y))
	case "drag":
		e.Play(synth.Drag(st.X, st.Y, st.ToX, st.ToY, st.Frames))
	case "wheel":
		e.Handle(synth.Wheel(st.X, st.Y, st.Delta))
	case "touchStart":
		e.Handle(synth.TouchStart(points(st.Points)...))
	case "touchMove":
		e.Handle(synth.TouchMove(points(st.Points)...))
	case "touchEnd":
		e.Handle(synth.TouchEnd(points(st.Points)...))
	case "tap":
		e.Play(synth.Tap(st.X, st.Y))
	case "doubleTap":
		e.Play(synth.DoubleTap(st.X, st.Y))
	case "pinch":
		e.Play(synth.Pinch(Vec2{st.X, st.Y}, st.From, st.To, st.Frames))
	case "wait":
		synth.Wait(msToDuration(st.Ms))
	case "resize":
		g := s.layouts[synth.Target]
		if g == nil {
			return fmt.Errorf("unknown target %q", synth.Target)
		}
		if st.Container != nil {
			c := *st.Container
			g.Container = Rect{c[0], c[1], c[2], c[3]}
		}
		if st.Element != nil {
			g.Element = Size{st.Element[0], st.Element[1]}
		}
		e.Resize()
	case "expect":
		return expect(e.Target(synth.Target), synth.Target, st)
	default:
		return fmt.Errorf("unknown action")
	}
	return nil
}

func expect(t *Target, id string, st scriptStep) error {
	if t == nil {
		return fmt.Errorf("unknown target %q", id)
	}
	tr := t.Transform()
	check := func(name string, want *float64, got float64) error {
		if want != nil && math.Abs(*want-got) > expectTolerance {
			return fmt.Errorf("%s = %v, want %v", name, got, *want)
		}
		return nil
	}
	if err := check("scale", st.Scale, tr.Scale); err != nil {
		return err
	}
	if err := check("offsetX", st.OffsetX, tr.OffsetX); err != nil {
		return err
	}
	if err := check("offsetY", st.OffsetY, tr.OffsetY); err != nil {
		return err
	}
	if st.Active != nil && *st.Active != t.Active() {
		return fmt.Errorf("active = %v, want %v", t.Active(), *st.Active)
	}
	return nil
}

func points(raw [][2]float64) []Vec2 {
	pts := make([]Vec2, len(raw))
	for i, p := range raw {
		pts[i] = Vec2{p[0], p[1]}
	}
	return pts
}
