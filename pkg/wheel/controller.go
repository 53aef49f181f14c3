// Package wheel implements a circular hue/saturation color picker:
// the pointer state machine and the coordinate to color transform.
// It does not draw anything; a rendering surface (see viewer package)
// feeds it pointer events and displays its state.
package wheel

import "math"

const (
	// CenterX, CenterY is the wheel center relative to the widget's top-left corner.
	CenterX, CenterY = 150, 150
	// Radius is the wheel radius in pixels.
	Radius = 150
	// Size is the widget's width and height.
	Size = 2 * Radius

	// DefaultColor is the color selected when the widget is created.
	DefaultColor = "#FF0000"
)

// Phase is a state of the picker's state machine.
type Phase int

const (
	// Idle - pointer is not held over the widget.
	Idle Phase = iota
	// Dragging - pointer went down on the widget and was not released yet.
	Dragging
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	}

	return "Phase(?)"
}

// Point is a pixel offset within the widget's bounding box.
type Point struct {
	X, Y float64
}

// Rect is the on-screen bounding box of the widget.
// Only Left/Top are used for coordinate translation.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Contains reports whether the absolute point (x, y) lies in r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Left+r.Width &&
		y >= r.Top && y < r.Top+r.Height
}

// PickerState is a snapshot of the controller's state.
type PickerState struct {
	Color    string
	Cursor   Point
	Dragging bool
}

// Controller owns the picker state. It is meant to be driven from a single
// (UI) goroutine and is not safe for concurrent use.
type Controller struct {
	color  string
	cursor Point
	phase  Phase
}

// NewController creates a controller in Idle phase with DefaultColor and
// the cursor in the wheel center.
func NewController() *Controller {
	return &Controller{
		color:  DefaultColor,
		cursor: Point{CenterX, CenterY},
		phase:  Idle,
	}
}

// PointerDown starts dragging.
func (c *Controller) PointerDown() {
	c.phase = Dragging
}

// PointerUp stops dragging. It may be called in any phase.
func (c *Controller) PointerUp() {
	c.phase = Idle
}

// PointerMove handles a pointer sample given in client coordinates.
// box is the widget's current bounding box as measured by the rendering surface.
// Samples taken while not dragging or lying outside of the wheel are discarded.
// It returns true if the sample was accepted.
func (c *Controller) PointerMove(pointerX, pointerY float64, box Rect) bool {
	if c.phase != Dragging {
		return false
	}

	x := pointerX - box.Left
	y := pointerY - box.Top

	dx := x - CenterX
	dy := y - CenterY
	distance := math.Sqrt(dx*dx + dy*dy)

	// NaN must not pass
	if !(distance <= Radius) {
		return false
	}

	c.cursor = Point{x, y}
	c.color = HSVToHex(Hue(dx, dy), distance/Radius, 1.0)

	return true
}

// InWheel reports whether the client point (x, y) lies on the wheel drawn in box.
func InWheel(x, y float64, box Rect) bool {
	dx := x - box.Left - CenterX
	dy := y - box.Top - CenterY

	return math.Sqrt(dx*dx+dy*dy) <= Radius
}

// Hue maps an offset from the wheel center to a hue in degrees [0, 360).
// Left of the center is 0 (red), right is 180.
func Hue(dx, dy float64) float64 {
	angle := math.Atan2(dy, dx) * 180 / math.Pi
	return math.Mod(angle+180, 360)
}

// Color returns the selected color as "#RRGGBB".
func (c *Controller) Color() string {
	return c.color
}

// Cursor returns the indicator position relative to the widget box.
func (c *Controller) Cursor() Point {
	return c.cursor
}

// Phase returns the state machine's current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Dragging reports whether the controller is in Dragging phase.
func (c *Controller) Dragging() bool {
	return c.phase == Dragging
}

// State returns a copy of the current state.
func (c *Controller) State() PickerState {
	return PickerState{
		Color:    c.color,
		Cursor:   c.cursor,
		Dragging: c.Dragging(),
	}
}
