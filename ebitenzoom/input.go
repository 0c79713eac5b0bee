package ebitenzoom

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/panzoom"
)

const maxTouches = 10

// Poller reads raw device state. The default implementation forwards to the
// ebiten package functions; tests substitute their own.
type Poller interface {
	CursorPosition() (x, y int)
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	Wheel() (xoff, yoff float64)
	AppendTouchIDs(touches []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (x, y int)
}

type ebitenPoller struct{}

func (ebitenPoller) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenPoller) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

func (ebitenPoller) Wheel() (float64, float64) { return ebiten.Wheel() }

func (ebitenPoller) AppendTouchIDs(touches []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(touches)
}

func (ebitenPoller) TouchPosition(id ebiten.TouchID) (int, int) { return ebiten.TouchPosition(id) }

// Input translates polled ebiten input into engine events. Call Update once
// per tick and Layout from Game.Layout.
type Input struct {
	engine *panzoom.Engine
	poller Poller
	now    func() time.Time

	// Mouse state
	mouseDown bool
	lastMouse panzoom.Vec2
	hover     string

	// Touch state, indexed by slot
	touchIDs  []ebiten.TouchID
	touchMap  [maxTouches]ebiten.TouchID
	touchUsed [maxTouches]bool
	touchPos  [maxTouches]panzoom.Vec2

	screenW, screenH int
}

// NewInput creates an Input feeding engine from the ebiten input state.
func NewInput(engine *panzoom.Engine) *Input {
	return &Input{engine: engine, poller: ebitenPoller{}, now: time.Now}
}

// SetPoller replaces the device state source.
func (in *Input) SetPoller(p Poller) {
	if p == nil {
		p = ebitenPoller{}
	}
	in.poller = p
}

// SetClock replaces the time source used to stamp events.
func (in *Input) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	in.now = now
}

// Hover returns the id of the target under the mouse cursor, or "".
func (in *Input) Hover() string {
	return in.hover
}

// Update polls the devices and delivers the resulting events.
func (in *Input) Update() {
	in.processMouse()
	in.processTouches()
}

// Layout reports the outside size from Game.Layout. A change after the first
// call is delivered to the engine as a resize.
func (in *Input) Layout(outsideWidth, outsideHeight int) {
	if outsideWidth == in.screenW && outsideHeight == in.screenH {
		return
	}
	first := in.screenW == 0 && in.screenH == 0
	in.screenW, in.screenH = outsideWidth, outsideHeight
	if !first {
		in.engine.Handle(panzoom.Event{Kind: panzoom.EventResize, Time: in.now()})
	}
}

func (in *Input) emit(kind panzoom.EventKind, target string, pts ...panzoom.Vec2) panzoom.Event {
	return panzoom.Event{Kind: kind, Target: target, Pointers: pts, Time: in.now()}
}

// hitTest returns the topmost target whose container contains pos. Later
// registrations are drawn on top.
func (in *Input) hitTest(pos panzoom.Vec2) string {
	targets := in.engine.Targets()
	for i := len(targets) - 1; i >= 0; i-- {
		if targets[i].Bounds().Contains(pos.X, pos.Y) {
			return targets[i].ID()
		}
	}
	return ""
}

// processMouse handles the cursor, buttons and wheel.
func (in *Input) processMouse() {
	mx, my := in.poller.CursorPosition()
	pos := panzoom.Vec2{X: float64(mx), Y: float64(my)}
	target := in.hitTest(pos)

	if target != in.hover {
		if in.hover != "" {
			in.engine.Handle(in.emit(panzoom.EventPointerLeave, in.hover, pos))
		}
		if target != "" {
			in.engine.Handle(in.emit(panzoom.EventPointerEnter, target, pos))
		}
		in.hover = target
	}

	var pressed bool
	var button panzoom.MouseButton
	left := in.poller.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := in.poller.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := in.poller.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = panzoom.MouseButtonLeft
		} else if right {
			button = panzoom.MouseButtonRight
		} else {
			button = panzoom.MouseButtonMiddle
		}
	}

	switch {
	case pressed && !in.mouseDown:
		in.mouseDown = true
		if target != "" {
			ev := in.emit(panzoom.EventPointerDown, target, pos)
			ev.Button = button
			in.engine.Handle(ev)
		}
	case pressed && pos != in.lastMouse:
		in.engine.Handle(in.emit(panzoom.EventPointerMove, target, pos))
	case !pressed && in.mouseDown:
		in.mouseDown = false
		in.engine.Handle(in.emit(panzoom.EventPointerUp, target, pos))
	}
	in.lastMouse = pos

	// Ebiten reports positive yoff when scrolling up; the engine expects
	// negative deltas to zoom in.
	if _, yoff := in.poller.Wheel(); yoff != 0 && target != "" {
		ev := in.emit(panzoom.EventWheel, target, pos)
		ev.WheelDelta = -yoff
		in.engine.Handle(ev)
	}
}

// processTouches diffs the current touches against the previous tick and
// emits at most one end, start and move event. An end in the same tick as a
// move reports the remaining touches at their previous positions so the move
// that follows still pans.
func (in *Input) processTouches() {
	in.touchIDs = in.poller.AppendTouchIDs(in.touchIDs[:0])

	prev := in.touchPos
	var active [maxTouches]bool
	var started, moved bool
	var newest panzoom.Vec2
	for _, id := range in.touchIDs {
		slot, isNew := in.touchSlot(id)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := in.poller.TouchPosition(id)
		pos := panzoom.Vec2{X: float64(tx), Y: float64(ty)}
		if isNew {
			started = true
			newest = pos
		} else if pos != in.touchPos[slot] {
			moved = true
		}
		in.touchPos[slot] = pos
	}

	var ended bool
	for i := 0; i < maxTouches; i++ {
		if in.touchUsed[i] && !active[i] {
			in.touchUsed[i] = false
			in.touchMap[i] = 0
			ended = true
		}
	}

	if ended {
		in.engine.Handle(in.emit(panzoom.EventTouchEnd, "", in.touchesAt(&prev)...))
	}
	if started {
		target := in.hitTest(newest)
		if c := in.engine.Captured(); c != nil {
			target = c.ID()
		}
		if target != "" {
			in.engine.Handle(in.emit(panzoom.EventTouchStart, target, in.touchesAt(&in.touchPos)...))
		}
		return
	}
	if moved {
		in.engine.Handle(in.emit(panzoom.EventTouchMove, "", in.touchesAt(&in.touchPos)...))
	}
}

// touchSlot maps an ebiten.TouchID to a slot, allocating one for a new
// touch. Returns -1 if every slot is taken.
func (in *Input) touchSlot(id ebiten.TouchID) (slot int, isNew bool) {
	for i := 0; i < maxTouches; i++ {
		if in.touchUsed[i] && in.touchMap[i] == id {
			return i, false
		}
	}
	for i := 0; i < maxTouches; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = id
			return i, true
		}
	}
	return -1, false
}

// touchesAt returns pos for every touch still down, in slot order.
func (in *Input) touchesAt(pos *[maxTouches]panzoom.Vec2) []panzoom.Vec2 {
	var pts []panzoom.Vec2
	for i := 0; i < maxTouches; i++ {
		if in.touchUsed[i] {
			pts = append(pts, pos[i])
		}
	}
	return pts
}
