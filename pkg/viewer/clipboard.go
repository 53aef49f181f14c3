package viewer

import "golang.design/x/clipboard"

// SystemClipboard writes to the OS clipboard.
// clipboard.Init must have succeeded before it is used.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
