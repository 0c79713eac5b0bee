package ebitenzoom

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/panzoom"
)

// fakePoller is a scripted device state.
type fakePoller struct {
	x, y    int
	buttons map[ebiten.MouseButton]bool
	wheel   float64
	touches map[ebiten.TouchID][2]int
	ids     []ebiten.TouchID
}

func newFakePoller() *fakePoller {
	return &fakePoller{
		buttons: make(map[ebiten.MouseButton]bool),
		touches: make(map[ebiten.TouchID][2]int),
	}
}

func (p *fakePoller) CursorPosition() (int, int) { return p.x, p.y }

func (p *fakePoller) IsMouseButtonPressed(b ebiten.MouseButton) bool { return p.buttons[b] }

func (p *fakePoller) Wheel() (float64, float64) {
	w := p.wheel
	p.wheel = 0
	return 0, w
}

func (p *fakePoller) AppendTouchIDs(touches []ebiten.TouchID) []ebiten.TouchID {
	return append(touches, p.ids...)
}

func (p *fakePoller) TouchPosition(id ebiten.TouchID) (int, int) {
	pos := p.touches[id]
	return pos[0], pos[1]
}

func (p *fakePoller) touch(id ebiten.TouchID, x, y int) {
	if _, ok := p.touches[id]; !ok {
		p.ids = append(p.ids, id)
	}
	p.touches[id] = [2]int{x, y}
}

func (p *fakePoller) lift(id ebiten.TouchID) {
	delete(p.touches, id)
	for i, v := range p.ids {
		if v == id {
			p.ids = append(p.ids[:i], p.ids[i+1:]...)
			return
		}
	}
}

func newTestInput(t *testing.T) (*Input, *fakePoller, *panzoom.Target) {
	t.Helper()
	e := panzoom.NewEngine(panzoom.Config{}, nil)
	tgt := e.Register("photo", panzoom.StaticGeometry{
		Container: panzoom.Rect{Width: 400, Height: 300},
		Element:   panzoom.Size{Width: 400, Height: 300},
	})
	in := NewInput(e)
	p := newFakePoller()
	in.SetPoller(p)
	now := time.Unix(0, 0)
	in.SetClock(func() time.Time {
		now = now.Add(16 * time.Millisecond)
		return now
	})
	return in, p, tgt
}

func wantTransform(t *testing.T, got panzoom.Transform, scale, ox, oy float64) {
	t.Helper()
	if got != (panzoom.Transform{Scale: scale, OffsetX: ox, OffsetY: oy}) {
		t.Errorf("transform = %+v, want {%v %v %v}", got, scale, ox, oy)
	}
}

func TestInput_WheelZoomsAtCursor(t *testing.T) {
	in, p, tgt := newTestInput(t)
	p.x, p.y = 250, 180
	p.wheel = 1 // scroll up
	in.Update()
	wantTransform(t, tgt.Transform(), 1.5, -25, -15)

	p.wheel = -1
	in.Update()
	wantTransform(t, tgt.Transform(), 1, 0, 0)
}

func TestInput_WheelOutsideTargetIgnored(t *testing.T) {
	in, p, tgt := newTestInput(t)
	p.x, p.y = 500, 100
	p.wheel = 1
	in.Update()
	wantTransform(t, tgt.Transform(), 1, 0, 0)
}

func TestInput_HoverLocksScroll(t *testing.T) {
	in, p, _ := newTestInput(t)
	p.x, p.y = 100, 100
	in.Update()
	if in.Hover() != "photo" || !in.engine.ScrollLocked() {
		t.Errorf("hover = %q locked = %v", in.Hover(), in.engine.ScrollLocked())
	}
	p.x, p.y = 500, 500
	in.Update()
	if in.Hover() != "" || in.engine.ScrollLocked() {
		t.Errorf("hover = %q locked = %v after leaving", in.Hover(), in.engine.ScrollLocked())
	}
}

func TestInput_MouseDrag(t *testing.T) {
	in, p, tgt := newTestInput(t)
	p.x, p.y = 200, 150
	p.wheel = 1
	in.Update()
	p.wheel = 1
	in.Update()

	p.x, p.y = 100, 100
	p.buttons[ebiten.MouseButtonLeft] = true
	in.Update()
	p.x, p.y = 150, 120
	in.Update()
	wantTransform(t, tgt.Transform(), 2, 50, 20)

	p.buttons[ebiten.MouseButtonLeft] = false
	in.Update()
	if in.engine.Captured() != nil {
		t.Error("release should end the drag")
	}
}

func TestInput_RightButtonIgnored(t *testing.T) {
	in, p, _ := newTestInput(t)
	p.x, p.y = 100, 100
	p.buttons[ebiten.MouseButtonRight] = true
	in.Update()
	if in.engine.Captured() != nil {
		t.Error("right button should not start a drag")
	}
}

func TestInput_DoubleClick(t *testing.T) {
	in, p, tgt := newTestInput(t)
	p.x, p.y = 300, 150
	for i := 0; i < 2; i++ {
		p.buttons[ebiten.MouseButtonLeft] = true
		in.Update()
		p.buttons[ebiten.MouseButtonLeft] = false
		in.Update()
	}
	wantTransform(t, tgt.Transform(), 2, -100, 0)
}

func TestInput_TouchPinch(t *testing.T) {
	in, p, tgt := newTestInput(t)
	p.touch(1, 150, 150)
	in.Update()
	if tgt.Mode() != panzoom.ModeDragging {
		t.Fatalf("mode = %v, want dragging", tgt.Mode())
	}
	p.touch(2, 250, 150)
	in.Update()
	if tgt.Mode() != panzoom.ModePinching {
		t.Fatalf("mode = %v, want pinching", tgt.Mode())
	}
	p.touch(1, 100, 150)
	p.touch(2, 300, 150)
	in.Update()
	wantTransform(t, tgt.Transform(), 2, 0, 0)

	p.lift(2)
	in.Update()
	if tgt.Mode() != panzoom.ModeDragging {
		t.Errorf("mode = %v, want dragging after lift", tgt.Mode())
	}
	p.lift(1)
	in.Update()
	if in.engine.Captured() != nil {
		t.Error("lifting every finger should release")
	}
}

func TestInput_LiftAndMoveInOneTick(t *testing.T) {
	in, p, tgt := newTestInput(t)
	p.touch(1, 150, 150)
	p.touch(2, 250, 150)
	in.Update()
	p.touch(1, 100, 150)
	p.touch(2, 300, 150)
	in.Update()
	wantTransform(t, tgt.Transform(), 2, 0, 0)

	p.lift(2)
	p.touch(1, 60, 150)
	in.Update()
	if tgt.Mode() != panzoom.ModeDragging {
		t.Fatalf("mode = %v, want dragging", tgt.Mode())
	}
	wantTransform(t, tgt.Transform(), 2, -40, 0)
}

func TestInput_LayoutResize(t *testing.T) {
	in, p, tgt := newTestInput(t)
	in.Layout(640, 480)
	p.x, p.y = 200, 150
	for i := 0; i < 4; i++ {
		p.wheel = 1
		in.Update()
	}
	wantTransform(t, tgt.Transform(), 3, 0, 0)

	in.Layout(640, 480)
	wantTransform(t, tgt.Transform(), 3, 0, 0)

	in.Layout(800, 600)
	wantTransform(t, tgt.Transform(), 2, 0, 0)
}
