package wheel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var originBox = Rect{Left: 0, Top: 0, Width: Size, Height: Size}

func TestNewController(t *testing.T) {
	c := NewController()

	assert.Equal(t, PickerState{
		Color:    "#FF0000",
		Cursor:   Point{150, 150},
		Dragging: false,
	}, c.State())
	assert.Equal(t, Idle, c.Phase())
}

func TestPointerDownUp(t *testing.T) {
	c := NewController()

	c.PointerDown()
	assert.True(t, c.Dragging())
	assert.Equal(t, Dragging, c.Phase())

	c.PointerUp()
	assert.False(t, c.Dragging())

	// up is valid from Idle too
	c.PointerUp()
	assert.Equal(t, Idle, c.Phase())
}

func TestPointerUpWithoutMoveKeepsColor(t *testing.T) {
	c := NewController()
	c.PointerDown()
	assert.True(t, c.PointerMove(300, 150, originBox))
	before := c.State()

	c.PointerDown()
	c.PointerUp()

	after := c.State()
	assert.Equal(t, before.Color, after.Color)
	assert.Equal(t, before.Cursor, after.Cursor)
	assert.False(t, after.Dragging)
}

func TestPointerMoveIgnoredWhenIdle(t *testing.T) {
	c := NewController()

	assert.False(t, c.PointerMove(300, 150, originBox))
	assert.Equal(t, DefaultColor, c.Color())
	assert.Equal(t, Point{150, 150}, c.Cursor())
}

func TestPointerMoveSamples(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		box        Rect
		wantColor  string
		wantCursor Point
	}{
		{"right edge", 300, 150, originBox, "#00FFFF", Point{300, 150}},
		{"left edge", 0, 150, originBox, "#FF0000", Point{0, 150}},
		{"top edge", 150, 0, originBox, "#7FFF00", Point{150, 0}},
		{"bottom edge", 150, 300, originBox, "#7F00FF", Point{150, 300}},
		{"center", 150, 150, originBox, "#FFFFFF", Point{150, 150}},
		{"half way right", 225, 150, originBox, "#7FFFFF", Point{225, 150}},
		{"offset box", 350, 180, Rect{Left: 50, Top: 30, Width: Size, Height: Size}, "#00FFFF", Point{300, 150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()
			c.PointerDown()

			assert.True(t, c.PointerMove(tt.x, tt.y, tt.box))
			assert.Equal(t, tt.wantColor, c.Color())
			assert.Equal(t, tt.wantCursor, c.Cursor())
		})
	}
}

func TestPointerMoveBoundary(t *testing.T) {
	c := NewController()
	c.PointerDown()

	// exactly on the rim
	assert.True(t, c.PointerMove(300, 150, originBox))
	assert.Equal(t, "#00FFFF", c.Color())

	// just outside; state must not change
	assert.False(t, c.PointerMove(300.0001, 150, originBox))
	assert.Equal(t, "#00FFFF", c.Color())
	assert.Equal(t, Point{300, 150}, c.Cursor())

	// far outside, in a corner of the bounding box
	assert.False(t, c.PointerMove(1, 1, originBox))
	assert.Equal(t, Point{300, 150}, c.Cursor())
}

func TestPointerMoveRejectsNonFinite(t *testing.T) {
	samples := []struct {
		name string
		x, y float64
	}{
		{"NaN x", math.NaN(), 150},
		{"NaN y", 150, math.NaN()},
		{"+Inf x", math.Inf(1), 150},
		{"-Inf y", 150, math.Inf(-1)},
	}

	for _, tt := range samples {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()
			c.PointerDown()
			before := c.State()

			assert.False(t, c.PointerMove(tt.x, tt.y, originBox))
			assert.Equal(t, before, c.State())
		})
	}
}

func TestInWheel(t *testing.T) {
	box := Rect{Left: 50, Top: 30, Width: Size, Height: Size}

	assert.True(t, InWheel(200, 180, box))
	assert.True(t, InWheel(350, 180, box))
	assert.False(t, InWheel(51, 31, box))
	assert.False(t, InWheel(math.NaN(), 180, box))
}

func TestPointerMoveInsideRimIsNotClamped(t *testing.T) {
	c := NewController()
	c.PointerDown()

	// distance 50; a clamped distance would give a fully saturated color
	assert.True(t, c.PointerMove(100, 150, originBox))
	assert.NotEqual(t, "#FF0000", c.Color())
	assert.Equal(t, HSVToHex(0, 50.0/150.0, 1), c.Color())
}

func TestPointerMoveIdempotent(t *testing.T) {
	c := NewController()
	c.PointerDown()

	c.PointerMove(212, 87, originBox)
	first := c.State()

	for i := 0; i < 10; i++ {
		c.PointerMove(212, 87, originBox)
		assert.Equal(t, first, c.State())
	}
}

func TestHue(t *testing.T) {
	assert.InDelta(t, 0, Hue(-1, 0), 1e-9)
	assert.InDelta(t, 90, Hue(0, -1), 1e-9)
	assert.InDelta(t, 180, Hue(1, 0), 1e-9)
	assert.InDelta(t, 270, Hue(0, 1), 1e-9)
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Width: 30, Height: 40}

	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(39.9, 59.9))
	assert.False(t, r.Contains(40, 30))
	assert.False(t, r.Contains(9, 30))
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "Idle", Idle.String())
	assert.Equal(t, "Dragging", Dragging.String())
}
