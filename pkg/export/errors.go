package export

import "errors"

var (
	// ErrInvalidSVG means a snapshot could not be parsed back.
	ErrInvalidSVG = errors.New("invalid svg document")
	// ErrInkscape means the PNG conversion did not run or produced no file.
	ErrInkscape = errors.New("inkscape failed")
)
