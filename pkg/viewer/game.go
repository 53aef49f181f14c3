package viewer

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kpango/glg"
	"golang.org/x/image/colornames"
	"golang.org/x/time/rate"

	"github.com/gucio321/huewheel/pkg/export"
	"github.com/gucio321/huewheel/pkg/wheel"
)

var _ ebiten.Game = &Viewer{}

const (
	// DefaultOffsetX, DefaultOffsetY is where the widget is placed in the window.
	DefaultOffsetX, DefaultOffsetY = 50, 30
	// WindowWidth, WindowHeight fit the widget with default offsets and the label below.
	WindowWidth  = wheel.Size + 2*DefaultOffsetX
	WindowHeight = wheel.Size + DefaultOffsetY + labelHeight + 30

	labelHeight     = 40
	indicatorRadius = 7
	indicatorStroke = 2
	swatchSize      = 24
)

var (
	backgroundColor = colornames.Darkslategray
	indicatorColor  = colornames.Black
	swatchBorder    = colornames.White
)

// Clipboard receives the selected color on copy.
type Clipboard interface {
	WriteText(text string) error
}

// Viewer is an ebiten rendering surface for wheel.Controller.
// It translates mouse/touch input into controller events and draws its state.
type Viewer struct {
	picker     *wheel.Controller
	box        wheel.Rect
	background *ebiten.Image

	last    wheel.Point
	hasLast bool

	clipboard    Clipboard
	snapshotPath string

	loggedColor string
	logLimiter  *rate.Limiter
}

// NewViewer creates a Viewer driving picker. The widget is placed at the default offset.
func NewViewer(picker *wheel.Controller) *Viewer {
	return &Viewer{
		picker: picker,
		box: wheel.Rect{
			Left:   DefaultOffsetX,
			Top:    DefaultOffsetY,
			Width:  wheel.Size,
			Height: wheel.Size,
		},
		loggedColor: picker.Color(),
		logLimiter:  rate.NewLimiter(rate.Every(250*time.Millisecond), 1),
	}
}

// SetOffset moves the widget's top-left corner to (x, y) window pixels.
func (v *Viewer) SetOffset(x, y float64) *Viewer {
	v.box.Left, v.box.Top = x, y
	return v
}

// SetClipboard enables copying the color with C key.
func (v *Viewer) SetClipboard(c Clipboard) *Viewer {
	v.clipboard = c
	return v
}

// SetSnapshotPath enables saving SVG snapshots with S key.
func (v *Viewer) SetSnapshotPath(path string) *Viewer {
	v.snapshotPath = path
	return v
}

// Box returns the widget's bounding box in window coordinates.
func (v *Viewer) Box() wheel.Rect {
	return v.box
}

func (v *Viewer) Update() error {
	v.handlePointer(readPointer())
	v.handleKeys(inpututil.IsKeyJustPressed(ebiten.KeyC), inpututil.IsKeyJustPressed(ebiten.KeyS))

	return nil
}

// handlePointer feeds one frame of pointer input into the controller.
func (v *Viewer) handlePointer(in pointerInput) {
	pos := wheel.Point{X: in.X, Y: in.Y}

	switch {
	case in.JustPressed && wheel.InWheel(in.X, in.Y, v.box):
		v.picker.PointerDown()
		// the press itself is not a move
		v.last, v.hasLast = pos, true
		return
	case v.picker.Dragging() && (!in.Pressed || !in.Focused):
		// release may happen outside of the window or be lost when focus changes
		v.picker.PointerUp()
		v.hasLast = false
		glg.Infof("Selected %s", v.picker.Color())
		return
	}

	if !v.picker.Dragging() || (v.hasLast && v.last == pos) {
		return
	}

	v.last, v.hasLast = pos, true
	if !v.picker.PointerMove(in.X, in.Y, v.box) {
		if v.logLimiter.Allow() {
			glg.Debugf("sample %v is outside of the wheel; discarded", pos)
		}

		return
	}

	v.logColor()
}

func (v *Viewer) logColor() {
	c := v.picker.Color()
	if c == v.loggedColor || !v.logLimiter.Allow() {
		return
	}

	v.loggedColor = c
	glg.Debugf("color changed to %s (cursor %v)", c, v.picker.Cursor())
}

func (v *Viewer) handleKeys(copyColor, saveSnapshot bool) {
	if copyColor && v.clipboard != nil {
		if err := v.clipboard.WriteText(v.picker.Color()); err != nil {
			glg.Warnf("Cannot copy color: %v", err)
		} else {
			glg.Infof("Copied %s to clipboard", v.picker.Color())
		}
	}

	if saveSnapshot && v.snapshotPath != "" {
		if err := export.WriteSVG(v.snapshotPath, v.picker.State()); err != nil {
			glg.Warnf("Cannot save snapshot: %v", err)
		} else {
			glg.Infof("Snapshot saved to %s", v.snapshotPath)
		}
	}
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if v.background == nil {
		v.background = ebiten.NewImageFromImage(wheel.Background(wheel.Size))
	}

	geom := ebiten.GeoM{}
	geom.Translate(v.box.Left, v.box.Top)
	screen.DrawImage(v.background, &ebiten.DrawImageOptions{GeoM: geom})

	cursor := v.picker.Cursor()
	vector.StrokeCircle(screen,
		float32(v.box.Left+cursor.X), float32(v.box.Top+cursor.Y),
		indicatorRadius, indicatorStroke, indicatorColor, true)

	v.drawLabel(screen)
}

func (v *Viewer) drawLabel(screen *ebiten.Image) {
	hex := v.picker.Color()
	x := v.box.Left
	y := v.box.Top + v.box.Height + labelHeight/2

	label := fmt.Sprintf("Selected Color: %s", hex)
	ebitenutil.DebugPrintAt(screen, label, int(x), int(y))

	swatch, err := wheel.ParseHex(hex)
	if err != nil {
		glg.Warnf("Cannot paint swatch: %v", err)
		return
	}

	sx := float32(x) + float32(len(label)*debugCharWidth) + 8
	sy := float32(y) - swatchSize/4
	vector.DrawFilledRect(screen, sx, sy, swatchSize, swatchSize, swatch, false)
	vector.StrokeRect(screen, sx, sy, swatchSize, swatchSize, 1, swatchBorder, false)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}
