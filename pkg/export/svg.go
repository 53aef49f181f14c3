// Package export renders color picker snapshots to SVG (and PNG through Inkscape).
package export

import (
	"bytes"
	"fmt"
	"math"
	"os"

	svgo "github.com/ajstarks/svgo"
	"github.com/kpango/glg"
	"github.com/rustyoz/svg"

	"github.com/gucio321/huewheel/pkg/wheel"
)

const (
	// Wedges is how many slices approximate the conic background.
	Wedges = 72

	// LabelHeight is the space below the wheel for the color label.
	LabelHeight = 40

	// whiteRadius matches the white overlay of wheel.GradientAt:
	// 70% of center-to-corner distance.
	whiteRadius = 148

	indicatorRadius = 7
	swatchSize      = 24
)

// SVG renders state as an SVG document: wheel, indicator and a swatch with label.
func SVG(state wheel.PickerState) []byte {
	var buf bytes.Buffer

	canvas := svgo.New(&buf)
	canvas.Start(wheel.Size, wheel.Size+LabelHeight)
	canvas.Title(state.Color)

	canvas.Def()
	canvas.RadialGradient("white-overlay", 50, 50, 50, 50, 50, []svgo.Offcolor{
		{Offset: 0, Color: "white", Opacity: 1},
		{Offset: 100, Color: "white", Opacity: 0},
	})
	canvas.DefEnd()

	canvas.Gid("picker")

	// 1.0: conic background, one path per wedge
	step := 2 * math.Pi / Wedges
	for i := 0; i < Wedges; i++ {
		a0 := float64(i) * step
		a1 := a0 + step
		mid := a0 + step/2

		fill := wheel.GradientAt(
			wheel.CenterX+(wheel.Radius-0.5)*math.Cos(mid),
			wheel.CenterY+(wheel.Radius-0.5)*math.Sin(mid),
		)

		canvas.Path(wedgePath(a0, a1), fmt.Sprintf("fill:%s;stroke:%[1]s;stroke-width:0.5", wheel.Hex(fill)))
	}

	// 1.1: white center
	canvas.Circle(wheel.CenterX, wheel.CenterY, whiteRadius, "fill:url(#white-overlay)")

	// 1.2: indicator
	canvas.Circle(
		int(math.Round(state.Cursor.X)), int(math.Round(state.Cursor.Y)),
		indicatorRadius, "fill:none;stroke:black;stroke-width:2",
	)

	// 1.3: label and swatch
	label := fmt.Sprintf("Selected Color: %s", state.Color)
	canvas.Text(0, wheel.Size+LabelHeight/2+5, label, "font-family:monospace;font-size:14px")
	canvas.Rect(wheel.Size-swatchSize, wheel.Size+(LabelHeight-swatchSize)/2, swatchSize, swatchSize,
		fmt.Sprintf("fill:%s;stroke:black", state.Color))

	canvas.Gend()
	canvas.End()

	return buf.Bytes()
}

func wedgePath(a0, a1 float64) string {
	x0 := wheel.CenterX + wheel.Radius*math.Cos(a0)
	y0 := wheel.CenterY + wheel.Radius*math.Sin(a0)
	x1 := wheel.CenterX + wheel.Radius*math.Cos(a1)
	y1 := wheel.CenterY + wheel.Radius*math.Sin(a1)

	return fmt.Sprintf("M%d %d L%.2f %.2f L%.2f %.2f Z", wheel.CenterX, wheel.CenterY, x0, y0, x1, y1)
}

// Validate parses data and walks all its drawing instructions.
// It returns the number of instructions found.
func Validate(data []byte) (int, error) {
	parsed, err := svg.ParseSvg(string(data), "", 1)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSVG, err)
	}

	instructions, errs := parsed.ParseDrawingInstructions()
	if instructions == nil || errs == nil {
		return 0, fmt.Errorf("%w: nothing to draw", ErrInvalidSVG)
	}

	count := 0
reading:
	for {
		select {
		case cmd := <-instructions:
			if cmd == nil {
				break reading
			}

			count++
		case err := <-errs:
			if err != nil {
				return count, fmt.Errorf("%w: %w", ErrInvalidSVG, err)
			}
		}
	}

	if count == 0 {
		return 0, fmt.Errorf("%w: no drawing instructions", ErrInvalidSVG)
	}

	return count, nil
}

// WriteSVG renders state, validates the result and writes it to path.
func WriteSVG(path string, state wheel.PickerState) error {
	data := SVG(state)

	n, err := Validate(data)
	if err != nil {
		return err
	}

	glg.Debugf("snapshot of %s has %d drawing instructions", state.Color, n)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}

	return nil
}
