package panzoom

import "math"

// Clamp bounds value to [min, max]. A NaN value is returned unchanged.
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// LimitOffset returns the maximum pan distance on one axis for an element of
// the given dimension scaled inside a container. A negative result means the
// scaled element fits and the axis must stay centered.
func LimitOffset(elementDim, containerDim, scale float64) float64 {
	return (elementDim*scale - containerDim) / 2
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Vec2) Vec2 {
	return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// withinRange reports whether a and b differ by at most r on both axes.
func withinRange(a, b Vec2, r float64) bool {
	return a.X >= b.X-r && a.X <= b.X+r &&
		a.Y >= b.Y-r && a.Y <= b.Y+r
}

// clampAxis clamps an offset on one axis to the pan limit for the given
// scale, forcing 0 when the scaled element fits.
func clampAxis(offset, elementDim, containerDim, scale float64) float64 {
	if elementDim*scale <= containerDim {
		return 0
	}
	limit := LimitOffset(elementDim, containerDim, scale)
	return Clamp(offset, -limit, limit)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (t Transform) finite() bool {
	return finite(t.Scale) && finite(t.OffsetX) && finite(t.OffsetY)
}
