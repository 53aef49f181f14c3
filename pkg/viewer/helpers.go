package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// debugCharWidth is the glyph width of ebitenutil.DebugPrint font.
const debugCharWidth = 6

// pointerInput is one frame of pointer state in window coordinates.
type pointerInput struct {
	X, Y        float64
	Pressed     bool
	JustPressed bool
	Focused     bool
}

// readPointer polls ebiten for the pointer. The first active touch wins over the mouse.
func readPointer() pointerInput {
	in := pointerInput{Focused: ebiten.IsFocused()}

	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		in.X, in.Y = float64(x), float64(y)
		in.Pressed = true
		in.JustPressed = inpututil.TouchPressDuration(ids[0]) == 1

		return in
	}

	x, y := ebiten.CursorPosition()
	in.X, in.Y = float64(x), float64(y)
	in.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	return in
}
