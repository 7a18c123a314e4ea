package input

import "errors"

// ErrClipboardUnsupported is returned when the platform has no clipboard
// utility available.
var ErrClipboardUnsupported = errors.New("clipboard not supported")
