package input

import "github.com/atotto/clipboard"

// Clipboard reads text from a clipboard.
type Clipboard interface {
	ReadText() (string, error)
}

// SystemClipboard reads the operating system clipboard.
type SystemClipboard struct{}

// ReadText returns the clipboard content.
func (SystemClipboard) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnsupported
	}
	return clipboard.ReadAll()
}

// StaticClipboard always returns the same text. It is used by tests and when
// no system clipboard is available.
type StaticClipboard string

// ReadText returns the stored text.
func (c StaticClipboard) ReadText() (string, error) {
	return string(c), nil
}
