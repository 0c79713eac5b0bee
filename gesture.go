package panzoom

import "math"

// --- Mouse ---

// PointerDown starts a drag on the event's target, or toggles the zoom when
// it completes a double click. Ignored once touch input has been seen, for
// non-primary buttons, and for unknown targets.
func (e *Engine) PointerDown(ev Event) {
	if e.touchable || ev.Button != MouseButtonLeft || len(ev.Pointers) == 0 {
		return
	}
	t := e.lookup(ev)
	if t == nil {
		return
	}
	pos := ev.Pointers[0]

	if e.mouseTaps.observe(t.id, pos, e.timeOf(ev), e.cfg.DoubleClickDelay) {
		e.toggle(t, pos)
		return
	}

	e.beginDrag(t, pos)
	e.mouseTaps.resetMoves()
}

// PointerMove pans the captured target while the mouse button is held.
func (e *Engine) PointerMove(ev Event) {
	if e.touchable || e.captured == nil || len(ev.Pointers) == 0 {
		return
	}
	t := e.captured
	if t.session.mode != ModeDragging {
		return
	}
	e.mouseTaps.moved()
	e.drag(t, ev.Pointers[0])
}

// PointerUp ends the mouse drag.
func (e *Engine) PointerUp(ev Event) {
	if e.touchable || e.captured == nil {
		return
	}
	e.release()
}

// PointerEnter suppresses ambient scroll while the pointer is over a target.
func (e *Engine) PointerEnter(ev Event) {
	if e.lookup(ev) == nil {
		return
	}
	e.setScrollLocked(true)
}

// PointerLeave restores ambient scroll.
func (e *Engine) PointerLeave(ev Event) {
	if e.lookup(ev) == nil {
		return
	}
	e.setScrollLocked(false)
}

// ScrollLocked reports whether ambient scroll is currently suppressed.
func (e *Engine) ScrollLocked() bool {
	return e.locked
}

func (e *Engine) setScrollLocked(locked bool) {
	if !e.cfg.ScrollDisable() || e.locked == locked {
		return
	}
	e.locked = locked
	if sl, ok := e.sink.(ScrollLocker); ok {
		sl.SetScrollLocked(locked)
	}
}

// --- Touch ---

// TouchStart begins a drag (one finger) or a pinch (two fingers) on the
// event's target. A single tap completing a double tap toggles the zoom.
// Events carrying more than two touches are dropped.
func (e *Engine) TouchStart(ev Event) {
	e.touchable = true

	n := len(ev.Pointers)
	if n == 0 || n > 2 {
		e.debugf("dropped %s with %d touches", ev.Kind, n)
		return
	}
	t := e.lookup(ev)
	if t == nil {
		return
	}
	p0 := ev.Pointers[0]

	if n == 1 {
		if e.touchTaps.observe(t.id, p0, e.timeOf(ev), e.cfg.DoubleClickDelay) {
			e.toggle(t, p0)
			return
		}
		e.beginDrag(t, p0)
	} else {
		e.beginPinch(t, p0, ev.Pointers[1])
	}
	e.touchTaps.resetMoves()
}

// TouchMove pans with one finger or pinch-zooms with two.
func (e *Engine) TouchMove(ev Event) {
	if e.captured == nil {
		return
	}
	n := len(ev.Pointers)
	if n == 0 || n > 2 {
		e.debugf("dropped %s with %d touches", ev.Kind, n)
		return
	}
	t := e.captured
	e.touchTaps.moved()

	if n == 2 {
		e.pinch(t, ev.Pointers[0], ev.Pointers[1])
		return
	}
	if t.session.mode == ModePinching {
		// The second finger went away without a touch end.
		e.rebaseDrag(t, ev.Pointers[0])
	}
	e.drag(t, ev.Pointers[0])
}

// TouchEnd handles lifted fingers. Pointers lists the touches still down.
func (e *Engine) TouchEnd(ev Event) {
	if e.captured == nil {
		return
	}
	t := e.captured
	switch len(ev.Pointers) {
	case 0:
		e.release()
	case 1:
		e.rebaseDrag(t, ev.Pointers[0])
	default:
		t.session.pinch.valid = false
	}
}

// --- Wheel ---

// Wheel zooms the event's target by one scale step, anchored at the cursor.
// A step that would leave the configured scale range is a no-op.
func (e *Engine) Wheel(ev Event) {
	if ev.WheelDelta == 0 || math.IsNaN(ev.WheelDelta) || len(ev.Pointers) == 0 {
		return
	}
	t := e.lookup(ev)
	if t == nil {
		return
	}
	t.measure()

	direction := -1.0
	if ev.WheelDelta < 0 {
		direction = 1
	}
	prior := e.clampScale(t.transform.Scale)
	target := prior + e.cfg.ScaleDifference*direction
	if target < e.cfg.ScaleMin || target > e.cfg.ScaleMax {
		return
	}

	pos := ev.Pointers[0]
	off, ok := AnchoredOffset(pos, t.container, t.element, t.offset(), prior, target)
	if !ok {
		e.debugf("dropped wheel on %q: degenerate layout", t.id)
		return
	}
	if !e.commit(t, Transform{Scale: target, OffsetX: off.X, OffsetY: off.Y}, 0) {
		return
	}
	if t.session.mode != ModeIdle {
		t.session.scale = target
		t.session.originPointer = pos
		t.session.originOffset = off
		t.session.pinch.valid = false
	}
}

// --- Session transitions ---

func (e *Engine) beginDrag(t *Target, pos Vec2) {
	t.measure()
	t.session = session{
		mode:          ModeDragging,
		originPointer: pos,
		originOffset:  t.offset(),
		scale:         e.clampScale(t.transform.Scale),
	}
	e.captured = t
}

func (e *Engine) beginPinch(t *Target, p0, p1 Vec2) {
	t.measure()
	scale := e.clampScale(t.transform.Scale)
	t.session = session{
		mode:          ModePinching,
		originPointer: p0,
		originOffset:  t.offset(),
		scale:         scale,
		pinch: pinchBaseline{
			valid:    true,
			distance: Distance(p0, p1),
			midpoint: Midpoint(p0, p1),
			scale:    scale,
			offset:   t.offset(),
		},
	}
	e.captured = t
}

// rebaseDrag continues as a drag anchored at pos with the current offset.
func (e *Engine) rebaseDrag(t *Target, pos Vec2) {
	s := &t.session
	s.mode = ModeDragging
	s.originPointer = pos
	s.originOffset = t.offset()
	s.pinch = pinchBaseline{}
}

func (e *Engine) release() {
	if e.captured != nil {
		e.captured.endSession()
	}
	e.captured = nil
}

// --- Gesture math ---

// drag moves the target with the pointer, keeping scale fixed.
func (e *Engine) drag(t *Target, pos Vec2) {
	s := &t.session
	c, el := t.container, t.element
	next := Transform{
		Scale:   s.scale,
		OffsetX: dragAxis(pos.X, &s.originPointer.X, &s.originOffset.X, el.Width, c.Width, s.scale),
		OffsetY: dragAxis(pos.Y, &s.originPointer.Y, &s.originOffset.Y, el.Height, c.Height, s.scale),
	}
	e.commit(t, next, 0)
}

// dragAxis computes the dragged offset on one axis. When the offset reaches
// its limit the origin is rebased so reversing direction moves immediately.
func dragAxis(pos float64, originPointer, originOffset *float64, elementDim, containerDim, scale float64) float64 {
	if elementDim*scale <= containerDim {
		return 0
	}
	limit := LimitOffset(elementDim, containerDim, scale)
	off := Clamp(pos-(*originPointer-*originOffset), -limit, limit)
	if math.Abs(off) == limit {
		*originPointer = pos
		*originOffset = off
	}
	return off
}

// pinch scales the target by the ratio of the finger distance to the
// baseline, anchored at the baseline midpoint. The baseline is rebased after
// every applied step; changes under one unit are ignored.
func (e *Engine) pinch(t *Target, p0, p1 Vec2) {
	s := &t.session
	dist := Distance(p0, p1)
	if s.mode != ModePinching || !s.pinch.valid {
		s.mode = ModePinching
		s.pinch = pinchBaseline{
			valid:    true,
			distance: dist,
			midpoint: Midpoint(p0, p1),
			scale:    s.scale,
			offset:   t.offset(),
		}
	}
	b := &s.pinch
	if math.Abs(b.distance-dist) < 1 {
		return
	}
	if !(b.distance > 0) {
		b.distance = dist
		return
	}

	target := e.clampScale(dist / b.distance * b.scale)
	off, ok := AnchoredOffset(b.midpoint, t.container, t.element, b.offset, b.scale, target)
	if !ok {
		e.debugf("dropped pinch on %q: degenerate layout", t.id)
		return
	}
	if !e.commit(t, Transform{Scale: target, OffsetX: off.X, OffsetY: off.Y}, 0) {
		return
	}
	b.distance = dist
	b.scale = target
	b.offset = off
	s.scale = target
	s.originOffset = off
}

// toggle handles a double activation: a zoomed target returns to identity,
// otherwise it zooms to the default scale anchored at pos.
func (e *Engine) toggle(t *Target, pos Vec2) {
	t.endSession()
	if e.captured == t {
		e.captured = nil
	}

	if t.active {
		e.commit(t, Identity, e.cfg.TransitionDuration)
		return
	}

	t.measure()
	prior := e.clampScale(t.transform.Scale)
	target := e.clampScale(e.cfg.ScaleDefault)
	off, ok := AnchoredOffset(pos, t.container, t.element, t.offset(), prior, target)
	if !ok {
		e.debugf("dropped double activation on %q: degenerate layout", t.id)
		return
	}
	e.commit(t, Transform{Scale: target, OffsetX: off.X, OffsetY: off.Y}, e.cfg.TransitionDuration)
}
