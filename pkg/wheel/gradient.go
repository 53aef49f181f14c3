package wheel

import (
	"image"
	"image/color"
	"math"
)

// gradientStops is the conic part of the wheel background.
// Stops are evenly spaced, starting at gradientStart.
var gradientStops = []color.RGBA{
	{0xe4, 0x3f, 0x00, 0xff},
	{0xfa, 0xe4, 0x10, 0xff},
	{0x55, 0xcc, 0x3b, 0xff},
	{0x09, 0xad, 0xff, 0xff},
	{0x6b, 0x0e, 0xfd, 0xff},
	{0xe7, 0x0d, 0x86, 0xff},
	{0xe4, 0x3f, 0x00, 0xff},
}

const (
	// gradientStart is the angle of the first stop, in degrees
	// clockwise from 12 o'clock.
	gradientStart = -90
	// whiteFade is where the white overlay becomes fully transparent,
	// as a fraction of the center-to-corner distance.
	whiteFade = 0.7
)

// GradientAt returns the static background color at (x, y) relative to the
// widget's top-left corner. Points outside of the wheel are transparent.
// NOTE: this is decoration only; it does not match HSVToHex exactly.
func GradientAt(x, y float64) color.RGBA {
	dx, dy := x-CenterX, y-CenterY
	if math.Hypot(dx, dy) > Radius {
		return color.RGBA{}
	}

	base := conicAt(dx, dy)

	// white overlay, blended over the conic gradient
	corner := math.Hypot(CenterX, CenterY)
	alpha := 1 - math.Hypot(dx, dy)/(whiteFade*corner)
	if alpha < 0 {
		alpha = 0
	}

	return color.RGBA{
		R: blend(base.R, 255, alpha),
		G: blend(base.G, 255, alpha),
		B: blend(base.B, 255, alpha),
		A: 255,
	}
}

func conicAt(dx, dy float64) color.RGBA {
	// angle clockwise from 12 o'clock (y axis points down)
	angle := math.Atan2(dx, -dy) * 180 / math.Pi
	t := math.Mod(angle-gradientStart+720, 360) / 360

	segments := float64(len(gradientStops) - 1)
	pos := t * segments
	i := int(pos)
	if i >= len(gradientStops)-1 {
		return gradientStops[len(gradientStops)-1]
	}

	frac := pos - float64(i)
	a, b := gradientStops[i], gradientStops[i+1]

	return color.RGBA{
		R: blend(a.R, b.R, frac),
		G: blend(a.G, b.G, frac),
		B: blend(a.B, b.B, frac),
		A: 255,
	}
}

// blend returns a*(1-t) + b*t.
func blend(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a)*(1-t) + float64(b)*t))
}

// Background renders the wheel background at the given size.
// The gradient is scaled so the wheel always fills the image.
func Background(size int) *image.RGBA {
	if size <= 0 {
		size = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scale := float64(Size) / float64(size)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// sample pixel centers
			img.SetRGBA(x, y, GradientAt((float64(x)+0.5)*scale, (float64(y)+0.5)*scale))
		}
	}

	return img
}
