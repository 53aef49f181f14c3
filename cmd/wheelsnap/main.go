package main

import (
	"flag"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kpango/glg"

	"github.com/gucio321/huewheel/pkg/export"
	"github.com/gucio321/huewheel/pkg/wheel"
)

func main() {
	drag := flag.String("drag", "", "pointer samples in client coordinates: \"x,y;x,y;...\"")
	left := flag.Float64("left", 0, "widget box left offset")
	top := flag.Float64("top", 0, "widget box top offset")
	output := flag.String("o", "", "output SVG file")
	png := flag.String("png", "", "also convert the snapshot to PNG (requires inkscape)")
	flag.Parse()

	samples, err := parseDrag(*drag)
	if err != nil {
		flag.Usage()
		glg.Fatal(err)
	}

	box := wheel.Rect{Left: *left, Top: *top, Width: wheel.Size, Height: wheel.Size}
	picker := replay(samples, box)

	fmt.Println(picker.Color())

	if *output == "" {
		if *png != "" {
			glg.Fatal("-png requires -o")
		}

		return
	}

	if err := export.WriteSVG(*output, picker.State()); err != nil {
		glg.Fatalf("Cannot write snapshot: %v", err)
	}

	if *png != "" {
		if err := export.ToPNG(*output, *png); err != nil {
			glg.Fatalf("Cannot convert snapshot: %v", err)
		}
	}
}

// replay performs a single drag gesture over samples.
func replay(samples []wheel.Point, box wheel.Rect) *wheel.Controller {
	picker := wheel.NewController()
	picker.PointerDown()

	for _, s := range samples {
		if !picker.PointerMove(s.X, s.Y, box) {
			glg.Warnf("Sample %v is outside of the wheel, ignored", s)
		}
	}

	picker.PointerUp()

	return picker
}

func parseDrag(s string) ([]wheel.Point, error) {
	var result []wheel.Point

	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		xy := strings.Split(pair, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("invalid sample %q: expected x,y", pair)
		}

		x, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid X in %q: %w", pair, err)
		}

		y, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid Y in %q: %w", pair, err)
		}

		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return nil, fmt.Errorf("invalid sample %q: coordinates must be finite", pair)
		}

		result = append(result, wheel.Point{X: x, Y: y})
	}

	return result, nil
}
