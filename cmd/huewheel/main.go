package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"
	"golang.design/x/clipboard"

	"github.com/gucio321/huewheel/pkg/viewer"
	"github.com/gucio321/huewheel/pkg/wheel"
)

type Flags struct {
	Title        string
	OffsetX      float64
	OffsetY      float64
	SnapshotPath string
	NoClipboard  bool
	Debug        bool
	preset       string
	makePreset   bool
}

func main() {
	var f Flags
	flag.StringVar(&f.Title, "title", "huewheel", "window title")
	flag.Float64Var(&f.OffsetX, "x", viewer.DefaultOffsetX, "widget X offset in the window")
	flag.Float64Var(&f.OffsetY, "y", viewer.DefaultOffsetY, "widget Y offset in the window")
	flag.StringVar(&f.SnapshotPath, "snapshot", "huewheel.svg", "where to save SVG snapshot (S key); empty to disable")
	flag.BoolVar(&f.NoClipboard, "no-clipboard", false, "do not copy color to clipboard (C key)")
	flag.BoolVar(&f.Debug, "debug", false, "verbose logging")
	flag.StringVar(&f.preset, "preset", "", "JSON preset file path. This will override all other flags")
	flag.BoolVar(&f.makePreset, "make-preset", false, "auto-generate preset")
	flag.Parse()

	if f.makePreset {
		out, err := json.MarshalIndent(f, "", "\t")
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}

		fmt.Println(string(out))
		glg.Infof("Presets generated")

		return
	}

	if f.preset != "" {
		data, err := os.ReadFile(f.preset)
		if err != nil {
			glg.Fatalf("Unable to read preset from %s: %v (use valid file or empty to not use presets)", f.preset, err)
		}

		if err := json.Unmarshal(data, &f); err != nil {
			glg.Fatalf("Unable to parse preset from %s: %v", f.preset, err)
		}
	}

	if f.Debug {
		glg.Get().SetLevel(glg.DEBG)
	} else {
		glg.Get().SetLevel(glg.INFO)
	}

	picker := wheel.NewController()
	v := viewer.NewViewer(picker).
		SetOffset(f.OffsetX, f.OffsetY).
		SetSnapshotPath(f.SnapshotPath)

	if !f.NoClipboard {
		if err := clipboard.Init(); err != nil {
			glg.Warnf("Clipboard unavailable: %v", err)
		} else {
			v.SetClipboard(viewer.SystemClipboard{})
		}
	}

	width := int(f.OffsetX)*2 + wheel.Size
	height := viewer.WindowHeight - viewer.DefaultOffsetY + int(f.OffsetY)

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(f.Title)

	glg.Infof("Drag on the wheel to pick a color; C copies, S saves a snapshot")

	if err := ebiten.RunGame(v); err != nil {
		glg.Fatalf("Cannot run viewer: %v", err)
	}

	glg.Infof("Final color: %s", picker.Color())
}
