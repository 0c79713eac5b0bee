package ebitenzoom

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/panzoom"
)

// layer is the render state of one target.
type layer struct {
	id    string
	image *ebiten.Image
	geom  panzoom.Geometry

	shown  panzoom.Transform // currently drawn
	goal   panzoom.Transform // last applied by the engine
	active bool

	tweens    [3]*gween.Tween
	animating bool
	pending   time.Duration
}

// Sink is a panzoom render sink that draws each target's image inside its
// container. Animated transitions requested by the engine are played with
// gween tweens advanced by Update.
type Sink struct {
	layers map[string]*layer
	order  []*layer
	locked bool

	// Ease is the easing function for transitions. Defaults to ease.OutCubic.
	Ease ease.TweenFunc
	// ActiveColor is the frame drawn around zoomed targets. A nil color
	// disables the frame.
	ActiveColor color.Color
}

// NewSink creates an empty Sink.
func NewSink() *Sink {
	return &Sink{
		layers:      make(map[string]*layer),
		Ease:        ease.OutCubic,
		ActiveColor: color.RGBA{R: 0x40, G: 0xa0, B: 0xff, A: 0xff},
	}
}

func (s *Sink) layer(id string) *layer {
	l, ok := s.layers[id]
	if !ok {
		l = &layer{id: id, shown: panzoom.Identity, goal: panzoom.Identity}
		s.layers[id] = l
		s.order = append(s.order, l)
	}
	return l
}

// Add attaches an image and its geometry to a target. The image is stretched
// to the element size reported by geom.
func (s *Sink) Add(id string, img *ebiten.Image, geom panzoom.Geometry) {
	l := s.layer(id)
	l.image = img
	l.geom = geom
}

// Apply implements panzoom.RenderSink.
func (s *Sink) Apply(id string, t panzoom.Transform) {
	l := s.layer(id)
	l.goal = t
	if l.pending <= 0 {
		l.shown = t
		l.animating = false
		return
	}
	d := float32(l.pending.Seconds())
	l.pending = 0
	l.tweens[0] = gween.New(float32(l.shown.Scale), float32(t.Scale), d, s.Ease)
	l.tweens[1] = gween.New(float32(l.shown.OffsetX), float32(t.OffsetX), d, s.Ease)
	l.tweens[2] = gween.New(float32(l.shown.OffsetY), float32(t.OffsetY), d, s.Ease)
	l.animating = true
}

// SetActive implements panzoom.RenderSink.
func (s *Sink) SetActive(id string, active bool) {
	s.layer(id).active = active
}

// BeginTransition implements panzoom.TransitionSink. The next Apply for id is
// animated over d.
func (s *Sink) BeginTransition(id string, d time.Duration) {
	s.layer(id).pending = d
}

// SetScrollLocked implements panzoom.ScrollLocker.
func (s *Sink) SetScrollLocked(locked bool) {
	s.locked = locked
}

// ScrollLocked reports whether the engine asked to suppress ambient scroll.
func (s *Sink) ScrollLocked() bool {
	return s.locked
}

// Shown returns the transform currently drawn for id.
func (s *Sink) Shown(id string) panzoom.Transform {
	if l, ok := s.layers[id]; ok {
		return l.shown
	}
	return panzoom.Identity
}

// Active reports the zoomed indicator of id.
func (s *Sink) Active(id string) bool {
	if l, ok := s.layers[id]; ok {
		return l.active
	}
	return false
}

// Animating reports whether a transition is playing for id.
func (s *Sink) Animating(id string) bool {
	if l, ok := s.layers[id]; ok {
		return l.animating
	}
	return false
}

// Update advances running transitions by dt seconds.
func (s *Sink) Update(dt float32) {
	for _, l := range s.order {
		if !l.animating {
			continue
		}
		allDone := true
		fields := [3]*float64{&l.shown.Scale, &l.shown.OffsetX, &l.shown.OffsetY}
		for i, tw := range l.tweens {
			val, finished := tw.Update(dt)
			*fields[i] = float64(val)
			if !finished {
				allDone = false
			}
		}
		if allDone {
			l.shown = l.goal
			l.animating = false
		}
	}
}

// Draw renders every target with an image, clipped to its container.
func (s *Sink) Draw(screen *ebiten.Image) {
	for _, l := range s.order {
		if l.image == nil || l.geom == nil {
			continue
		}
		c, el := l.geom.Measure()
		clip := image.Rect(int(c.X), int(c.Y), int(c.X+c.Width), int(c.Y+c.Height))
		dst, ok := screen.SubImage(clip).(*ebiten.Image)
		if !ok {
			continue
		}

		b := l.image.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterLinear
		if b.Dx() > 0 && b.Dy() > 0 {
			op.GeoM.Scale(el.Width/float64(b.Dx()), el.Height/float64(b.Dy()))
		}
		op.GeoM.Concat(GeoM(l.shown, c, el))
		dst.DrawImage(l.image, op)

		if l.active && s.ActiveColor != nil {
			vector.StrokeRect(screen, float32(c.X)+1, float32(c.Y)+1, float32(c.Width)-2, float32(c.Height)-2, 2, s.ActiveColor, false)
		}
	}
}

// GeoM returns the matrix mapping element space, with the origin at the
// element's top-left corner, to screen space for transform t.
func GeoM(t panzoom.Transform, container panzoom.Rect, element panzoom.Size) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-element.Width/2, -element.Height/2)
	m.Scale(t.Scale, t.Scale)
	m.Translate(container.X+container.Width/2+t.OffsetX, container.Y+container.Height/2+t.OffsetY)
	return m
}
