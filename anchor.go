package panzoom

// AnchoredOffset computes the offset that keeps the content under anchor
// visually fixed while the scale changes from priorScale to targetScale.
// container is the viewport rectangle in input coordinates and element the
// unscaled element size. The result is clamped to the pan limits of
// targetScale; an axis on which the scaled element fits is centered.
//
// ok is false when priorScale is not positive or the result is not finite,
// in which case callers must keep their previous state.
func AnchoredOffset(anchor Vec2, container Rect, element Size, prior Vec2, priorScale, targetScale float64) (offset Vec2, ok bool) {
	if !(priorScale > 0) || !finite(targetScale) {
		return Vec2{}, false
	}
	if targetScale <= 1 {
		return Vec2{}, true
	}

	delta := targetScale - priorScale
	offset.X = anchorAxis(anchor.X, container.X, container.Width, element.Width, prior.X, priorScale, targetScale, delta)
	offset.Y = anchorAxis(anchor.Y, container.Y, container.Height, element.Height, prior.Y, priorScale, targetScale, delta)

	if !finite(offset.X) || !finite(offset.Y) {
		return Vec2{}, false
	}
	return offset, true
}

func anchorAxis(anchor, origin, containerDim, elementDim, prior, priorScale, targetScale, delta float64) float64 {
	if elementDim*targetScale <= containerDim {
		return 0
	}
	local := (anchor - origin) - containerDim/2
	next := prior - ((local-prior)/priorScale)*delta
	limit := LimitOffset(elementDim, containerDim, targetScale)
	return Clamp(next, -limit, limit)
}
