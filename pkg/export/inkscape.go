package export

import (
	"fmt"
	"os"

	inkscape "github.com/galihrivanto/go-inkscape"
	"github.com/kpango/glg"
)

// ToPNG converts an SVG file to PNG using Inkscape's shell mode.
// Inkscape must be installed and available in $PATH.
func ToPNG(svgPath, pngPath string) error {
	if _, err := os.Stat(svgPath); err != nil {
		return fmt.Errorf("cannot convert %s: %w", svgPath, err)
	}

	proxy := inkscape.NewProxy(inkscape.Verbose(true))
	if err := proxy.Run(); err != nil {
		return fmt.Errorf("%w: %w", ErrInkscape, err)
	}

	defer proxy.Close()

	glg.Infof("running inkscape export of %s", svgPath)
	proxy.RawCommands(
		fmt.Sprintf("file-open:%s", svgPath),
		fmt.Sprintf("export-filename:%s", pngPath),
		"export-type:png",
		"export-do",
	)

	if _, err := os.Stat(pngPath); err != nil {
		return fmt.Errorf("%w: %s was not created: %w", ErrInkscape, pngPath, err)
	}

	glg.Info("inkscape done.")

	return nil
}
