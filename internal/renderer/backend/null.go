package backend

import (
	"strings"

	"github.com/dshills/todolist/internal/renderer/core"
)

// NullBackend is an in-memory backend for tests and headless use.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	mouse         bool
	shows         int
	beeps         int
	events        chan Event
	closed        chan struct{}
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
		closed: make(chan struct{}),
	}
}

func (b *NullBackend) Init() error {
	b.allocate()
	return nil
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Shutdown() {
	select {
	case <-b.closed:
	default:
		close(b.closed)
	}
}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

// GetCell returns the cell at the given position, or an empty cell outside
// the screen.
func (b *NullBackend) GetCell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Fill(rect core.ScreenRect, cell core.Cell) {
	for y := max(rect.Top, 0); y < rect.Bottom && y < b.height; y++ {
		for x := max(rect.Left, 0); x < rect.Right && x < b.width; x++ {
			b.cells[y][x] = cell
		}
	}
}

func (b *NullBackend) Clear() {
	empty := core.EmptyCell()
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = empty
		}
	}
}

func (b *NullBackend) Show() { b.shows++ }
func (b *NullBackend) Sync() { b.shows++ }

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) PollEvent() Event {
	select {
	case ev := <-b.events:
		return ev
	case <-b.closed:
		return Event{Type: EventNone}
	}
}

func (b *NullBackend) PostEvent(event Event) bool {
	select {
	case b.events <- event:
		return true
	default:
		return false
	}
}

func (b *NullBackend) EnableMouse()  { b.mouse = true }
func (b *NullBackend) DisableMouse() { b.mouse = false }
func (b *NullBackend) Beep()         { b.beeps++ }

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// MouseEnabled reports whether mouse reporting is on.
func (b *NullBackend) MouseEnabled() bool { return b.mouse }

// ShowCount returns how many times Show or Sync was called.
func (b *NullBackend) ShowCount() int { return b.shows }

// BeepCount returns how many times Beep was called.
func (b *NullBackend) BeepCount() int { return b.beeps }

// RowText returns the text of row y with trailing blanks removed.
func (b *NullBackend) RowText(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	return strings.TrimRight(core.StringFromCells(b.cells[y]), " ")
}

// Lines returns RowText for every row.
func (b *NullBackend) Lines() []string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.RowText(y)
	}
	return lines
}

// Resize simulates a terminal resize and queues the matching event.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.allocate()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
