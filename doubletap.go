package panzoom

import "time"

const (
	tapRadius        = 10.0 // max distance per axis between the two activations
	maxMouseTapMoves = 5    // mouse moves tolerated between the two clicks
	maxTouchTapMoves = 1    // touch moves tolerated between the two taps
)

// pendingActivation is the first half of a possible double activation.
type pendingActivation struct {
	target string
	pos    Vec2
	at     time.Time
}

// tapDetector recognizes double clicks (or double taps) on the same target.
// It tracks at most one pending activation; a newer one overwrites it.
type tapDetector struct {
	pending  pendingActivation
	valid    bool
	moves    int
	maxMoves int
}

// observe records a primary activation and reports whether it completes a
// double activation. A completed pair clears the pending state; anything
// else becomes the new pending activation.
func (d *tapDetector) observe(target string, pos Vec2, now time.Time, window time.Duration) bool {
	if d.valid && now.Sub(d.pending.at) >= window {
		d.valid = false
	}
	if d.valid &&
		d.pending.target == target &&
		d.moves <= d.maxMoves &&
		withinRange(pos, d.pending.pos, tapRadius) {
		d.valid = false
		return true
	}
	d.pending = pendingActivation{target: target, pos: pos, at: now}
	d.valid = true
	return false
}

// moved counts one pointer move since the last reset.
func (d *tapDetector) moved() {
	d.moves++
}

// resetMoves clears the move counter at the start of a new press.
func (d *tapDetector) resetMoves() {
	d.moves = 0
}

// forget drops the pending activation if it was made on target.
func (d *tapDetector) forget(target string) {
	if d.valid && d.pending.target == target {
		d.valid = false
		d.moves = 0
	}
}
