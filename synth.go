package panzoom

import "time"

// defaultSynthStep is the time between synthesized events.
const defaultSynthStep = 16 * time.Millisecond

// Synth builds synthetic input sequences for one target with a virtual
// clock. Every generated event advances Now by Step. Feed the results to
// Engine.Handle or Engine.Play.
type Synth struct {
	Target string
	Now    time.Time
	Step   time.Duration
}

// NewSynth returns a Synth for target starting at now.
func NewSynth(target string, now time.Time) *Synth {
	return &Synth{Target: target, Now: now, Step: defaultSynthStep}
}

// Wait advances the virtual clock by d without emitting anything.
func (s *Synth) Wait(d time.Duration) {
	s.Now = s.Now.Add(d)
}

func (s *Synth) event(kind EventKind, pts ...Vec2) Event {
	ev := Event{Kind: kind, Target: s.Target, Pointers: pts, Time: s.Now}
	step := s.Step
	if step <= 0 {
		step = defaultSynthStep
	}
	s.Now = s.Now.Add(step)
	return ev
}

// Press returns a primary button press at (x, y).
func (s *Synth) Press(x, y float64) Event {
	return s.event(EventPointerDown, Vec2{x, y})
}

// Move returns a mouse move to (x, y).
func (s *Synth) Move(x, y float64) Event {
	return s.event(EventPointerMove, Vec2{x, y})
}

// Release returns a button release at (x, y).
func (s *Synth) Release(x, y float64) Event {
	return s.event(EventPointerUp, Vec2{x, y})
}

// Wheel returns a wheel event at (x, y). Negative delta zooms in.
func (s *Synth) Wheel(x, y, delta float64) Event {
	ev := s.event(EventWheel, Vec2{x, y})
	ev.WheelDelta = delta
	return ev
}

// Click is a press followed by a release at the same point.
func (s *Synth) Click(x, y float64) []Event {
	return []Event{s.Press(x, y), s.Release(x, y)}
}

// DoubleClick is two clicks at the same point.
func (s *Synth) DoubleClick(x, y float64) []Event {
	return append(s.Click(x, y), s.Click(x, y)...)
}

// Drag is a press at (fromX, fromY), linearly interpolated moves over
// frames-2 intermediate frames, and a release at (toX, toY). Minimum frames
// is 2 (press + release); the last move lands on the destination.
func (s *Synth) Drag(fromX, fromY, toX, toY float64, frames int) []Event {
	if frames < 2 {
		frames = 2
	}
	evs := []Event{s.Press(fromX, fromY)}
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		evs = append(evs, s.Move(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t))
	}
	return append(evs, s.Release(toX, toY))
}

// TouchStart returns a touch start with the given fingers down.
func (s *Synth) TouchStart(pts ...Vec2) Event {
	return s.event(EventTouchStart, pts...)
}

// TouchMove returns a touch move with the given fingers.
func (s *Synth) TouchMove(pts ...Vec2) Event {
	return s.event(EventTouchMove, pts...)
}

// TouchEnd returns a touch end with the given fingers remaining.
func (s *Synth) TouchEnd(remaining ...Vec2) Event {
	return s.event(EventTouchEnd, remaining...)
}

// Tap is a single finger touch start and end at (x, y).
func (s *Synth) Tap(x, y float64) []Event {
	return []Event{s.TouchStart(Vec2{x, y}), s.TouchEnd()}
}

// DoubleTap is two taps at the same point.
func (s *Synth) DoubleTap(x, y float64) []Event {
	return append(s.Tap(x, y), s.Tap(x, y)...)
}

// Pinch places two fingers on a horizontal line through center, fromDist
// apart, spreads them to toDist over frames moves and lifts both.
func (s *Synth) Pinch(center Vec2, fromDist, toDist float64, frames int) []Event {
	if frames < 1 {
		frames = 1
	}
	fingers := func(d float64) (Vec2, Vec2) {
		return Vec2{center.X - d/2, center.Y}, Vec2{center.X + d/2, center.Y}
	}
	a, b := fingers(fromDist)
	evs := []Event{s.TouchStart(a, b)}
	for i := 1; i <= frames; i++ {
		d := fromDist + (toDist-fromDist)*float64(i)/float64(frames)
		a, b = fingers(d)
		evs = append(evs, s.TouchMove(a, b))
	}
	return append(evs, s.TouchEnd())
}

// Play delivers events to the engine in order.
func (e *Engine) Play(events []Event) {
	for _, ev := range events {
		e.Handle(ev)
	}
}
