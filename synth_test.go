package panzoom

import (
	"testing"
	"time"
)

func TestSynth_AdvancesClock(t *testing.T) {
	s := NewSynth("a", testEpoch)
	evs := s.Click(10, 20)
	if len(evs) != 2 || evs[0].Kind != EventPointerDown || evs[1].Kind != EventPointerUp {
		t.Fatalf("click = %+v", evs)
	}
	if got := evs[1].Time.Sub(evs[0].Time); got != defaultSynthStep {
		t.Errorf("step = %v, want %v", got, defaultSynthStep)
	}
	s.Wait(time.Second)
	if got := s.Now.Sub(testEpoch); got != time.Second+2*defaultSynthStep {
		t.Errorf("clock = %v", got)
	}
	if evs[0].Target != "a" || evs[0].Position() != (Vec2{10, 20}) {
		t.Errorf("press = %+v", evs[0])
	}
}

func TestSynth_Drag(t *testing.T) {
	s := NewSynth("a", testEpoch)
	evs := s.Drag(0, 0, 100, 50, 6)
	if len(evs) != 6 {
		t.Fatalf("expected 6 events, got %d", len(evs))
	}
	want := []Vec2{{0, 0}, {25, 12.5}, {50, 25}, {75, 37.5}, {100, 50}, {100, 50}}
	for i, ev := range evs {
		if ev.Position() != want[i] {
			t.Errorf("event %d at %v, want %v", i, ev.Position(), want[i])
		}
	}
	if evs[4].Kind != EventPointerMove || evs[5].Kind != EventPointerUp {
		t.Error("drag should end with a move to the destination and a release")
	}
	if got := s.Drag(0, 0, 1, 1, 0); len(got) != 2 {
		t.Errorf("minimum drag = %d events, want 2", len(got))
	}
}

func TestSynth_Pinch(t *testing.T) {
	s := NewSynth("a", testEpoch)
	evs := s.Pinch(Vec2{200, 150}, 100, 300, 2)
	if len(evs) != 4 {
		t.Fatalf("expected 4 events, got %d", len(evs))
	}
	if d := Distance(evs[0].Pointers[0], evs[0].Pointers[1]); d != 100 {
		t.Errorf("start distance = %v", d)
	}
	if d := Distance(evs[2].Pointers[0], evs[2].Pointers[1]); d != 300 {
		t.Errorf("end distance = %v", d)
	}
	if m := Midpoint(evs[1].Pointers[0], evs[1].Pointers[1]); m != (Vec2{200, 150}) {
		t.Errorf("midpoint = %v", m)
	}
	if evs[3].Kind != EventTouchEnd || len(evs[3].Pointers) != 0 {
		t.Errorf("last event = %+v", evs[3])
	}
}

func TestSynth_Wheel(t *testing.T) {
	ev := NewSynth("a", testEpoch).Wheel(5, 6, -3)
	if ev.Kind != EventWheel || ev.WheelDelta != -3 || ev.Position() != (Vec2{5, 6}) {
		t.Errorf("wheel = %+v", ev)
	}
}
