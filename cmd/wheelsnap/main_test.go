package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/huewheel/pkg/wheel"
)

func TestParseDrag(t *testing.T) {
	got, err := parseDrag(" 300,150; 150, 0 ;")
	require.NoError(t, err)
	assert.Equal(t, []wheel.Point{{X: 300, Y: 150}, {X: 150, Y: 0}}, got)

	got, err = parseDrag("")
	require.NoError(t, err)
	assert.Empty(t, got)

	for _, bad := range []string{"300", "a,1", "1,b", "1,2,3", "NaN,150", "150,Inf", "-Inf,0"} {
		_, err := parseDrag(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestReplay(t *testing.T) {
	box := wheel.Rect{Left: 10, Top: 20, Width: wheel.Size, Height: wheel.Size}

	// last sample is outside the wheel and must not override the color
	picker := replay([]wheel.Point{{X: 160, Y: 20}, {X: 310, Y: 170}, {X: 400, Y: 400}}, box)

	assert.False(t, picker.Dragging())
	assert.Equal(t, "#00FFFF", picker.Color())
	assert.Equal(t, wheel.Point{X: 300, Y: 150}, picker.Cursor())
}
