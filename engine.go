package panzoom

import (
	"time"
)

// RenderSink receives the transforms computed by the engine.
type RenderSink interface {
	// Apply sets the element transform for the given target.
	Apply(id string, t Transform)
	// SetActive toggles the target's zoomed indicator.
	SetActive(id string, active bool)
}

// TransitionSink is implemented by render sinks that can animate. The engine
// calls BeginTransition right before an Apply that should be animated over d.
type TransitionSink interface {
	BeginTransition(id string, d time.Duration)
}

// ScrollLocker is implemented by render sinks that can suppress ambient
// scrolling while the pointer is over a target.
type ScrollLocker interface {
	SetScrollLocked(locked bool)
}

// Engine owns the registered targets, the gesture state and the
// double-activation detectors. It is not safe for concurrent use; a single
// input stream drives it.
type Engine struct {
	cfg  Config
	sink RenderSink

	targets map[string]*Target
	order   []*Target

	// Input state
	captured  *Target
	touchable bool
	mouseTaps tapDetector
	touchTaps tapDetector
	locked    bool

	handlers handlerRegistry
	store    EventStore
	clock    func() time.Time
	debug    bool
}

// NewEngine creates an engine with the given configuration. Zero config
// fields take their defaults. sink may be nil.
func NewEngine(cfg Config, sink RenderSink) *Engine {
	return &Engine{
		cfg:       cfg.withDefaults(),
		sink:      sink,
		targets:   make(map[string]*Target),
		mouseTaps: tapDetector{maxMoves: maxMouseTapMoves},
		touchTaps: tapDetector{maxMoves: maxTouchTapMoves},
		clock:     time.Now,
	}
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// SetClock replaces the time source used for events without a timestamp.
func (e *Engine) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	e.clock = now
}

// Register adds a target in the identity state and pushes that state to the
// render sink. Registering an existing id replaces its geometry and keeps its
// transform.
func (e *Engine) Register(id string, geom Geometry) *Target {
	if t, ok := e.targets[id]; ok {
		t.geom = geom
		return t
	}
	t := newTarget(id, geom)
	e.targets[id] = t
	e.order = append(e.order, t)
	if e.sink != nil {
		e.sink.Apply(id, t.transform)
	}
	return t
}

// Unregister removes a target. A gesture it holds is abandoned.
func (e *Engine) Unregister(id string) {
	t, ok := e.targets[id]
	if !ok {
		return
	}
	delete(e.targets, id)
	for i, o := range e.order {
		if o == t {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	if e.captured == t {
		e.captured = nil
	}
	e.mouseTaps.forget(id)
	e.touchTaps.forget(id)
}

// Target returns the target registered under id, or nil.
func (e *Engine) Target(id string) *Target {
	return e.targets[id]
}

// Targets returns the targets in registration order. The returned slice
// MUST NOT be mutated.
func (e *Engine) Targets() []*Target {
	return e.order
}

// Captured returns the target holding the current gesture, or nil.
func (e *Engine) Captured() *Target {
	return e.captured
}

// Handle dispatches one input event. Events must be delivered in arrival
// order. Malformed events are dropped without changing state.
func (e *Engine) Handle(ev Event) {
	switch ev.Kind {
	case EventPointerDown:
		e.PointerDown(ev)
	case EventPointerMove:
		e.PointerMove(ev)
	case EventPointerUp:
		e.PointerUp(ev)
	case EventPointerEnter:
		e.PointerEnter(ev)
	case EventPointerLeave:
		e.PointerLeave(ev)
	case EventTouchStart:
		e.TouchStart(ev)
	case EventTouchMove:
		e.TouchMove(ev)
	case EventTouchEnd:
		e.TouchEnd(ev)
	case EventWheel:
		e.Wheel(ev)
	case EventResize:
		e.Resize()
	default:
		e.debugf("dropped event of unknown kind %d", ev.Kind)
	}
}

// timeOf returns the event timestamp, falling back to the engine clock.
func (e *Engine) timeOf(ev Event) time.Time {
	if ev.Time.IsZero() {
		return e.clock()
	}
	return ev.Time
}

// lookup returns the event's target or logs the drop.
func (e *Engine) lookup(ev Event) *Target {
	t := e.targets[ev.Target]
	if t == nil {
		e.debugf("dropped %s for unknown target %q", ev.Kind, ev.Target)
	}
	return t
}

// clampScale bounds a scale to the configured range.
func (e *Engine) clampScale(s float64) float64 {
	return Clamp(s, e.cfg.ScaleMin, e.cfg.ScaleMax)
}

// commit stores next on t and pushes it to the sink and subscribers. A
// non-finite transform is rejected and the prior state kept.
func (e *Engine) commit(t *Target, next Transform, transition time.Duration) bool {
	if !next.finite() {
		e.debugf("rejected non-finite transform %+v for %q", next, t.id)
		return false
	}
	t.transform = next
	if e.sink != nil {
		if transition > 0 {
			if ts, ok := e.sink.(TransitionSink); ok {
				ts.BeginTransition(t.id, transition)
			}
		}
		e.sink.Apply(t.id, next)
	}
	e.fireTransform(t, transition)

	if active := next.Active(); active != t.active {
		t.active = active
		if e.sink != nil {
			e.sink.SetActive(t.id, active)
		}
		e.fireActivation(t)
	}
	return true
}

// Reset returns a target to the identity transform and drops a pending
// double activation on it.
func (e *Engine) Reset(id string) {
	t := e.targets[id]
	if t == nil {
		return
	}
	t.endSession()
	if e.captured == t {
		e.captured = nil
	}
	e.mouseTaps.forget(id)
	e.touchTaps.forget(id)
	e.commit(t, Identity, 0)
}

// Resize reclamps every active target to its new layout at the default
// scale. A target whose element fits its container at that scale returns to
// the identity transform.
func (e *Engine) Resize() {
	for _, t := range e.order {
		t.measure()
		if !t.active {
			continue
		}
		target := e.clampScale(e.cfg.ScaleDefault)
		c, el := t.container, t.element
		if el.Width*target <= c.Width && el.Height*target <= c.Height {
			e.commit(t, Identity, 0)
			continue
		}
		// Anchoring on the point currently under the offset keeps the offset
		// and only reclamps it to the new limits.
		prior := t.offset()
		anchor := Vec2{
			X: c.X + c.Width/2 + prior.X,
			Y: c.Y + c.Height/2 + prior.Y,
		}
		off, ok := AnchoredOffset(anchor, c, el, prior, e.clampScale(t.transform.Scale), target)
		if !ok {
			e.debugf("skipped resize of %q: degenerate layout", t.id)
			continue
		}
		if !e.commit(t, Transform{Scale: target, OffsetX: off.X, OffsetY: off.Y}, 0) {
			continue
		}
		if t.session.mode != ModeIdle {
			t.session.scale = target
			t.session.originOffset = off
			t.session.pinch.valid = false
		}
	}
}
