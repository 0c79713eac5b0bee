package giozoom

import (
	"math"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"

	"github.com/phanxgames/panzoom"
)

func newTestTranslator() (*Translator, *Sink, *panzoom.Engine) {
	sink := NewSink()
	e := panzoom.NewEngine(panzoom.Config{}, sink)
	e.Register("photo", panzoom.StaticGeometry{
		Container: panzoom.Rect{Width: 400, Height: 300},
		Element:   panzoom.Size{Width: 400, Height: 300},
	})
	return NewTranslator(e), sink, e
}

func mouse(kind pointer.Kind, x, y float32, at time.Duration) pointer.Event {
	return pointer.Event{
		Kind:     kind,
		Source:   pointer.Mouse,
		Buttons:  pointer.ButtonPrimary,
		Position: f32.Pt(x, y),
		Time:     at,
	}
}

func finger(kind pointer.Kind, id pointer.ID, x, y float32) pointer.Event {
	return pointer.Event{
		Kind:      kind,
		Source:    pointer.Touch,
		PointerID: id,
		Position:  f32.Pt(x, y),
	}
}

func TestTranslator_Scroll(t *testing.T) {
	tr, sink, _ := newTestTranslator()
	ev := mouse(pointer.Scroll, 250, 180, time.Millisecond)
	ev.Scroll = f32.Pt(0, -1)
	tr.Handle("photo", ev)
	if got := sink.Transform("photo"); got != (panzoom.Transform{Scale: 1.5, OffsetX: -25, OffsetY: -15}) {
		t.Errorf("transform = %+v", got)
	}

	// Horizontal scroll is ignored.
	ev.Scroll = f32.Pt(3, 0)
	tr.Handle("photo", ev)
	if got := sink.Transform("photo").Scale; got != 1.5 {
		t.Errorf("scale = %v after horizontal scroll", got)
	}
}

func TestTranslator_DoubleClick(t *testing.T) {
	tr, sink, _ := newTestTranslator()
	tr.Handle("photo", mouse(pointer.Press, 300, 150, 10*time.Millisecond))
	tr.Handle("photo", mouse(pointer.Release, 300, 150, 20*time.Millisecond))
	tr.Handle("photo", mouse(pointer.Press, 300, 150, 30*time.Millisecond))
	tr.Handle("photo", mouse(pointer.Release, 300, 150, 40*time.Millisecond))
	if got := sink.Transform("photo"); got != (panzoom.Transform{Scale: 2, OffsetX: -100}) {
		t.Errorf("transform = %+v", got)
	}
	if !sink.Active("photo") {
		t.Error("target should be active")
	}
}

func TestTranslator_SecondaryButton(t *testing.T) {
	tr, _, e := newTestTranslator()
	ev := mouse(pointer.Press, 100, 100, time.Millisecond)
	ev.Buttons = pointer.ButtonSecondary
	tr.Handle("photo", ev)
	if e.Captured() != nil {
		t.Error("secondary button should not start a drag")
	}
}

func TestTranslator_EnterLeave(t *testing.T) {
	tr, _, e := newTestTranslator()
	tr.Handle("photo", mouse(pointer.Enter, 10, 10, 0))
	if !e.ScrollLocked() {
		t.Error("enter should lock scroll")
	}
	tr.Handle("photo", mouse(pointer.Leave, 10, 10, 0))
	if e.ScrollLocked() {
		t.Error("leave should unlock scroll")
	}
}

func TestTranslator_TouchPinch(t *testing.T) {
	tr, sink, e := newTestTranslator()
	tr.Handle("photo", finger(pointer.Press, 1, 150, 150))
	tr.Handle("photo", finger(pointer.Press, 2, 250, 150))
	if m := e.Target("photo").Mode(); m != panzoom.ModePinching {
		t.Fatalf("mode = %v, want pinching", m)
	}
	tr.Handle("photo", finger(pointer.Drag, 1, 100, 150))
	tr.Handle("photo", finger(pointer.Drag, 2, 300, 150))
	if got := sink.Transform("photo").Scale; math.Abs(got-2) > 1e-9 {
		t.Errorf("scale = %v, want 2", got)
	}

	tr.Handle("photo", finger(pointer.Release, 2, 300, 150))
	if m := e.Target("photo").Mode(); m != panzoom.ModeDragging {
		t.Errorf("mode = %v, want dragging", m)
	}
	tr.Handle("photo", finger(pointer.Cancel, 1, 100, 150))
	if e.Captured() != nil {
		t.Error("cancel of the last finger should release")
	}

	// Unknown fingers are ignored.
	tr.Handle("photo", finger(pointer.Drag, 9, 0, 0))
}

func TestTranslator_Cancel(t *testing.T) {
	tr, _, e := newTestTranslator()
	tr.Handle("photo", finger(pointer.Press, 1, 150, 150))
	tr.Handle("photo", finger(pointer.Press, 2, 250, 150))

	// Gio delivers cancel without a source or pointer ID.
	tr.Handle("photo", pointer.Event{Kind: pointer.Cancel})
	if len(tr.touches) != 0 || e.Captured() != nil {
		t.Fatalf("after cancel: touches = %d, captured = %v", len(tr.touches), e.Captured() != nil)
	}

	tr.Handle("photo", finger(pointer.Press, 3, 200, 150))
	if m := e.Target("photo").Mode(); m != panzoom.ModeDragging {
		t.Errorf("mode after new finger = %v, want dragging", m)
	}
}

func TestTranslator_CancelMouseDrag(t *testing.T) {
	tr, _, e := newTestTranslator()
	tr.Handle("photo", mouse(pointer.Press, 100, 100, time.Millisecond))
	if e.Captured() == nil {
		t.Fatal("press should capture")
	}
	tr.Handle("photo", pointer.Event{Kind: pointer.Cancel})
	if e.Captured() != nil {
		t.Error("cancel should release the mouse drag")
	}
}

func TestAffine(t *testing.T) {
	c := panzoom.Rect{Width: 400, Height: 300}
	el := panzoom.Size{Width: 400, Height: 300}

	p := Affine(panzoom.Identity, c, el).Transform(f32.Pt(0, 0))
	if p != f32.Pt(0, 0) {
		t.Errorf("identity origin = %v", p)
	}

	p = Affine(panzoom.Transform{Scale: 2, OffsetX: -100}, c, el).Transform(f32.Pt(300, 150))
	if math.Abs(float64(p.X-300)) > 1e-3 || math.Abs(float64(p.Y-150)) > 1e-3 {
		t.Errorf("anchor = %v, want (300, 150)", p)
	}
}

func TestSink_Invalidate(t *testing.T) {
	s := NewSink()
	var n int
	s.Invalidate = func() { n++ }
	s.Apply("a", panzoom.Transform{Scale: 3})
	s.SetActive("a", true)
	if n != 2 || s.Transform("a").Scale != 3 || !s.Active("a") {
		t.Errorf("n = %d transform = %+v", n, s.Transform("a"))
	}
	if s.Transform("b") != panzoom.Identity {
		t.Error("unknown target should report identity")
	}
	_ = s.Op("a", panzoom.Rect{Width: 10, Height: 10}, panzoom.Size{Width: 10, Height: 10})
}
