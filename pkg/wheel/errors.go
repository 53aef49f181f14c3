package wheel

import "errors"

// ErrInvalidHex is returned by ParseHex for anything but "#RRGGBB".
var ErrInvalidHex = errors.New("invalid hex color, expected #RRGGBB")
