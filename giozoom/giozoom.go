// Package giozoom connects a panzoom engine to a Gio window.
//
// A [Translator] converts the pointer.Event values a widget receives into
// engine events. [Sink] stores the engine output so the widget can push the
// matching transform op while laying out its content.
//
// Positions are taken as is, so each target's geometry should be expressed in
// the widget's local coordinates, usually with the container at the origin.
package giozoom

import (
	"math"
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"gioui.org/op"

	"github.com/phanxgames/panzoom"
)

// Filter returns the pointer filter covering every kind the translator uses.
// Vertical scrolling is accepted without bounds.
func Filter(tag any) pointer.Filter {
	return pointer.Filter{
		Target: tag,
		Kinds: pointer.Press | pointer.Release | pointer.Drag | pointer.Move |
			pointer.Scroll | pointer.Enter | pointer.Leave | pointer.Cancel,
		ScrollY: pointer.ScrollRange{Min: math.MinInt32, Max: math.MaxInt32},
	}
}

// touch is one finger on the surface, kept in press order.
type touch struct {
	id  pointer.ID
	pos panzoom.Vec2
}

// Translator feeds Gio pointer events to an engine.
type Translator struct {
	engine  *panzoom.Engine
	epoch   time.Time
	touches []touch
}

// NewTranslator returns a Translator for engine.
func NewTranslator(engine *panzoom.Engine) *Translator {
	return &Translator{engine: engine, epoch: time.Unix(0, 0)}
}

// Handle translates one event delivered to the widget of target id.
func (tr *Translator) Handle(id string, ev pointer.Event) {
	pos := panzoom.Vec2{X: float64(ev.Position.X), Y: float64(ev.Position.Y)}
	out := panzoom.Event{Target: id}
	if ev.Time != 0 {
		out.Time = tr.epoch.Add(ev.Time)
	}

	// Gio cancels every pointer at once and leaves Source and PointerID unset.
	if ev.Kind == pointer.Cancel {
		tr.cancel(out, pos)
		return
	}
	if ev.Source == pointer.Touch {
		tr.handleTouch(out, ev, pos)
		return
	}

	out.Pointers = []panzoom.Vec2{pos}
	switch ev.Kind {
	case pointer.Press:
		out.Kind = panzoom.EventPointerDown
		out.Button = mouseButton(ev.Buttons)
	case pointer.Drag, pointer.Move:
		out.Kind = panzoom.EventPointerMove
	case pointer.Release:
		out.Kind = panzoom.EventPointerUp
	case pointer.Enter:
		out.Kind = panzoom.EventPointerEnter
	case pointer.Leave:
		out.Kind = panzoom.EventPointerLeave
	case pointer.Scroll:
		if ev.Scroll.Y == 0 {
			return
		}
		out.Kind = panzoom.EventWheel
		out.WheelDelta = float64(ev.Scroll.Y)
	default:
		return
	}
	tr.engine.Handle(out)
}

func (tr *Translator) handleTouch(out panzoom.Event, ev pointer.Event, pos panzoom.Vec2) {
	switch ev.Kind {
	case pointer.Press:
		tr.touches = append(tr.touches, touch{id: ev.PointerID, pos: pos})
		out.Kind = panzoom.EventTouchStart
	case pointer.Drag, pointer.Move:
		i := tr.find(ev.PointerID)
		if i < 0 {
			return
		}
		tr.touches[i].pos = pos
		out.Kind = panzoom.EventTouchMove
	case pointer.Release:
		i := tr.find(ev.PointerID)
		if i < 0 {
			return
		}
		tr.touches = append(tr.touches[:i], tr.touches[i+1:]...)
		out.Kind = panzoom.EventTouchEnd
	default:
		return
	}
	out.Pointers = tr.positions()
	tr.engine.Handle(out)
}

// cancel ends any touch gesture and any mouse drag.
func (tr *Translator) cancel(out panzoom.Event, pos panzoom.Vec2) {
	if len(tr.touches) > 0 {
		tr.touches = tr.touches[:0]
		end := out
		end.Kind = panzoom.EventTouchEnd
		tr.engine.Handle(end)
	}
	out.Kind = panzoom.EventPointerUp
	out.Pointers = []panzoom.Vec2{pos}
	tr.engine.Handle(out)
}

func (tr *Translator) find(id pointer.ID) int {
	for i, t := range tr.touches {
		if t.id == id {
			return i
		}
	}
	return -1
}

func (tr *Translator) positions() []panzoom.Vec2 {
	pts := make([]panzoom.Vec2, len(tr.touches))
	for i, t := range tr.touches {
		pts[i] = t.pos
	}
	return pts
}

func mouseButton(b pointer.Buttons) panzoom.MouseButton {
	switch {
	case b.Contain(pointer.ButtonPrimary):
		return panzoom.MouseButtonLeft
	case b.Contain(pointer.ButtonSecondary):
		return panzoom.MouseButtonRight
	default:
		return panzoom.MouseButtonMiddle
	}
}

// Affine returns the transform mapping element space, with the origin at the
// element's top-left corner, into the container for t.
func Affine(t panzoom.Transform, container panzoom.Rect, element panzoom.Size) f32.Affine2D {
	s := float32(t.Scale)
	return f32.Affine2D{}.
		Offset(f32.Pt(float32(-element.Width/2), float32(-element.Height/2))).
		Scale(f32.Point{}, f32.Pt(s, s)).
		Offset(f32.Pt(
			float32(container.X+container.Width/2+t.OffsetX),
			float32(container.Y+container.Height/2+t.OffsetY),
		))
}

// Sink is a render sink that records the latest engine output per target.
// Gio redraws whole frames, so transitions are not animated.
type Sink struct {
	transforms map[string]panzoom.Transform
	active     map[string]bool
	// Invalidate, when set, is called after every change so the window can
	// schedule a frame.
	Invalidate func()
}

// NewSink creates an empty Sink.
func NewSink() *Sink {
	return &Sink{
		transforms: make(map[string]panzoom.Transform),
		active:     make(map[string]bool),
	}
}

// Apply implements panzoom.RenderSink.
func (s *Sink) Apply(id string, t panzoom.Transform) {
	s.transforms[id] = t
	s.invalidate()
}

// SetActive implements panzoom.RenderSink.
func (s *Sink) SetActive(id string, active bool) {
	s.active[id] = active
	s.invalidate()
}

func (s *Sink) invalidate() {
	if s.Invalidate != nil {
		s.Invalidate()
	}
}

// Transform returns the latest transform for id.
func (s *Sink) Transform(id string) panzoom.Transform {
	if t, ok := s.transforms[id]; ok {
		return t
	}
	return panzoom.Identity
}

// Active reports the zoomed indicator of id.
func (s *Sink) Active(id string) bool {
	return s.active[id]
}

// Op returns the transform op for the element of id. Push it before drawing
// the element content and pop it afterwards.
func (s *Sink) Op(id string, container panzoom.Rect, element panzoom.Size) op.TransformOp {
	return op.Affine(Affine(s.Transform(id), container, element))
}
