package panzoom

import "time"

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Size is a width/height pair in the input coordinate system.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Vec2 {
	return Vec2{r.X, r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{r.Width, r.Height}
}

// Transform is the scale and translation applied to an element. Offsets are
// measured from the centered position of the element inside its container.
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Identity is the untransformed state every target starts in.
var Identity = Transform{Scale: 1}

// Active reports whether the transform is zoomed in.
func (t Transform) Active() bool {
	return t.Scale > 1
}

// Mode is the interaction mode of a target's gesture session.
type Mode uint8

const (
	ModeIdle     Mode = iota // no gesture in progress
	ModeDragging             // single pointer pan
	ModePinching             // two-finger pinch zoom
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDragging:
		return "dragging"
	case ModePinching:
		return "pinching"
	default:
		return "unknown"
	}
}

// EventKind identifies a kind of input event.
type EventKind uint8

const (
	EventPointerDown  EventKind = iota // mouse button pressed over a target
	EventPointerMove                   // mouse moved anywhere
	EventPointerUp                     // mouse button released anywhere
	EventPointerEnter                  // mouse entered a target
	EventPointerLeave                  // mouse left a target
	EventTouchStart                    // finger placed on a target
	EventTouchMove                     // one or more fingers moved
	EventTouchEnd                      // one or more fingers lifted
	EventWheel                         // wheel scrolled over a target
	EventResize                        // viewport dimensions changed
)

var eventKindNames = [...]string{
	"pointerDown", "pointerMove", "pointerUp", "pointerEnter", "pointerLeave",
	"touchStart", "touchMove", "touchEnd", "wheel", "resize",
}

// String returns the event kind name.
func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Event is a normalized input event. Positions are in the same coordinate
// system as the container rectangles reported by Geometry.
//
// Target names the registered target the event was delivered to. It is
// required for PointerDown, PointerEnter, PointerLeave, TouchStart and Wheel;
// move and release events are routed to the target holding the capture.
type Event struct {
	Kind   EventKind
	Target string
	// Pointers holds the pointer position for mouse events and every finger
	// still on the surface for touch events (for TouchEnd: the remaining ones).
	Pointers []Vec2
	Button   MouseButton
	// WheelDelta follows the DOM convention: negative scrolls toward the
	// viewer and zooms in.
	WheelDelta float64
	Time       time.Time
}

// Position returns the first pointer position, or the zero vector.
func (e Event) Position() Vec2 {
	if len(e.Pointers) == 0 {
		return Vec2{}
	}
	return e.Pointers[0]
}
