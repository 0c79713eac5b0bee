package panzoom

// Geometry reports the current layout of a target. It is queried whenever a
// gesture starts, on wheel and double activation, and on resize.
type Geometry interface {
	// Measure returns the container rectangle in input coordinates and the
	// unscaled element size.
	Measure() (container Rect, element Size)
}

// StaticGeometry is a Geometry with fixed dimensions.
type StaticGeometry struct {
	Container Rect
	Element   Size
}

// Measure implements Geometry.
func (g StaticGeometry) Measure() (Rect, Size) {
	return g.Container, g.Element
}

// GeometryFunc adapts a function to the Geometry interface.
type GeometryFunc func() (Rect, Size)

// Measure implements Geometry.
func (f GeometryFunc) Measure() (Rect, Size) {
	return f()
}

// pinchBaseline is the reference captured at the start of a two-finger
// gesture and rebased as the pinch progresses.
type pinchBaseline struct {
	valid    bool
	distance float64
	midpoint Vec2
	scale    float64
	offset   Vec2
}

// session is the transient per-target gesture state.
type session struct {
	mode          Mode
	originPointer Vec2
	originOffset  Vec2
	scale         float64 // scale captured at start, clamped to the config range
	pinch         pinchBaseline
}

// Target is one managed viewport and element pair.
type Target struct {
	id        string
	geom      Geometry
	transform Transform
	active    bool
	session   session

	// Layout captured by the most recent measure call.
	container Rect
	element   Size
}

// newTarget creates a Target in the identity state.
func newTarget(id string, geom Geometry) *Target {
	return &Target{
		id:        id,
		geom:      geom,
		transform: Identity,
	}
}

// ID returns the identifier the target was registered with.
func (t *Target) ID() string {
	return t.id
}

// Transform returns the current scale and offset.
func (t *Target) Transform() Transform {
	return t.transform
}

// Active reports whether the target is zoomed in (scale > 1).
func (t *Target) Active() bool {
	return t.active
}

// Mode returns the interaction mode of the target's gesture session.
func (t *Target) Mode() Mode {
	return t.session.mode
}

// Layout returns the container rectangle and element size captured by the
// last measurement.
func (t *Target) Layout() (Rect, Size) {
	return t.container, t.element
}

// Bounds queries the geometry for the current container rectangle. The
// layout used by a gesture in progress is not updated.
func (t *Target) Bounds() Rect {
	if t.geom == nil {
		return t.container
	}
	c, _ := t.geom.Measure()
	return c
}

func (t *Target) measure() {
	if t.geom == nil {
		return
	}
	t.container, t.element = t.geom.Measure()
}

func (t *Target) offset() Vec2 {
	return Vec2{t.transform.OffsetX, t.transform.OffsetY}
}

func (t *Target) endSession() {
	t.session = session{}
}
