package panzoom

import (
	"strings"
	"testing"
)

const zoomScript = `{
	"config": {"scaleMax": 4},
	"targets": [
		{"id": "photo", "container": [0, 0, 400, 300], "element": [400, 300]}
	],
	"steps": [
		{"action": "doubleClick", "x": 300, "y": 150},
		{"action": "expect", "scale": 2, "offsetX": -100, "offsetY": 0, "active": true},
		{"action": "drag", "x": 100, "y": 100, "toX": 150, "toY": 120, "frames": 4},
		{"action": "expect", "offsetX": -50, "offsetY": 20},
		{"action": "wait", "ms": 400},
		{"action": "pinch", "x": 200, "y": 150, "from": 100, "to": 300, "frames": 3},
		{"action": "expect", "scale": 4},
		{"action": "resize", "container": [0, 0, 1600, 1200]},
		{"action": "expect", "scale": 1, "active": false}
	]
}`

func TestLoadScript(t *testing.T) {
	s, err := LoadScript([]byte(zoomScript))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 9 {
		t.Fatalf("expected 9 steps, got %d", s.Len())
	}
	if s.Config.ScaleMax != 4 || s.Config.ScaleDefault != DefaultScaleDefault {
		t.Errorf("config = %+v", s.Config)
	}
	if s.steps[2].Action != "drag" || s.steps[2].ToX != 150 || s.steps[2].Frames != 4 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"no targets", `{"targets": [], "steps": [{"action": "wait"}]}`},
		{"no steps", `{"targets": [{"id": "a"}], "steps": []}`},
		{"bad config", `{"config": {"scaleMin": "x"}, "targets": [{"id": "a"}], "steps": [{"action": "wait"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScriptRun(t *testing.T) {
	s, err := LoadScript([]byte(zoomScript))
	if err != nil {
		t.Fatal(err)
	}
	sink := newRecordSink()
	e := s.NewEngine(sink)
	if err := s.Run(e); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(sink.transitions) != 1 {
		t.Errorf("transitions = %v, want one from the double click", sink.transitions)
	}
}

func TestScriptRun_ExpectFailure(t *testing.T) {
	data := `{
		"targets": [{"id": "a", "container": [0, 0, 100, 100], "element": [100, 100]}],
		"steps": [
			{"action": "wheel", "x": 50, "y": 50, "delta": -1},
			{"action": "expect", "scale": 2}
		]
	}`
	s, err := LoadScript([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	err = s.Run(s.NewEngine(nil))
	if err == nil {
		t.Fatal("expected failed expectation")
	}
	if !strings.Contains(err.Error(), "step 1 (expect): scale = 1.5, want 2") {
		t.Errorf("error = %v", err)
	}
}

func TestScriptRun_Errors(t *testing.T) {
	base := `{"targets": [{"id": "a", "container": [0, 0, 100, 100], "element": [100, 100]}], "steps": [%s]}`
	tests := []struct {
		name string
		step string
		want string
	}{
		{"unknown action", `{"action": "jump"}`, "unknown action"},
		{"unknown target", `{"action": "expect", "target": "b", "scale": 1}`, `unknown target "b"`},
		{"resize unknown target", `{"action": "resize", "target": "b"}`, `unknown target "b"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := LoadScript([]byte(strings.Replace(base, "%s", tt.step, 1)))
			if err != nil {
				t.Fatal(err)
			}
			err = s.Run(s.NewEngine(nil))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestScriptRun_RequiresScriptEngine(t *testing.T) {
	s, err := LoadScript([]byte(zoomScript))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Run(NewEngine(Config{}, nil)); err == nil {
		t.Error("expected error for foreign engine")
	}
}

func TestScriptRun_Touch(t *testing.T) {
	data := `{
		"targets": [{"id": "a", "container": [0, 0, 400, 300], "element": [400, 300]}],
		"steps": [
			{"action": "doubleTap", "x": 0, "y": 0},
			{"action": "expect", "scale": 2, "offsetX": 200, "offsetY": 150},
			{"action": "touchStart", "points": [[200, 150]]},
			{"action": "touchMove", "points": [[100, 100]]},
			{"action": "touchEnd"},
			{"action": "expect", "offsetX": 100, "offsetY": 100},
			{"action": "tap", "x": 10, "y": 10},
			{"action": "wait", "ms": 500},
			{"action": "tap", "x": 10, "y": 10},
			{"action": "expect", "active": true}
		]
	}`
	s, err := LoadScript([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Run(s.NewEngine(nil)); err != nil {
		t.Fatal(err)
	}
}
