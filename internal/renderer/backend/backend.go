// Package backend provides the display abstraction the view draws on and
// the event source the application loop reads from.
package backend

import "github.com/dshills/todolist/internal/renderer/core"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventPaste
	EventFocus
	// EventInterrupt carries a value posted from another goroutine.
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize event fields
	Width, Height int

	// Focus event fields
	Focused bool

	// PasteStart is true at the start of a bracketed paste and false at
	// its end. Pasted text arrives as key events in between.
	PasteStart bool

	// Data is the payload of an interrupt event.
	Data any
}

// Key represents a keyboard key.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlA
	KeyCtrlC
	KeyCtrlE
	KeyCtrlL
	KeyCtrlQ
	KeyCtrlU
	KeyCtrlV
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// MouseButton represents mouse button state.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// Backend defines the interface for display backends.
type Backend interface {
	// Init prepares the backend. Must be called before any other method.
	Init() error

	// Shutdown releases resources and restores the terminal.
	Shutdown()

	// Size returns the current dimensions in cells.
	Size() (width, height int)

	// SetCell sets a single cell. Positions outside the screen are ignored.
	SetCell(x, y int, cell core.Cell)

	// Fill fills a rectangular region with the given cell.
	Fill(rect core.ScreenRect, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// Sync forces a full repaint, e.g. after the screen was corrupted.
	Sync()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next event. It returns an event
	// of type EventNone once the backend has been shut down.
	PollEvent() Event

	// PostEvent queues an event from any goroutine. Returns false if the
	// queue is full.
	PostEvent(event Event) bool

	// EnableMouse enables mouse event reporting.
	EnableMouse()

	// DisableMouse disables mouse event reporting.
	DisableMouse()

	// Beep produces an audible or visual bell.
	Beep()
}
