package backend

import (
	"testing"

	"github.com/dshills/todolist/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(20, 5)
	b.Init()

	gold := core.DefaultStyle().WithForeground(core.ColorFromRGB(255, 215, 0))
	cell := core.Cell{Text: "X", Width: 1, Style: gold}
	b.SetCell(10, 2, cell)

	if got := b.GetCell(10, 2); !got.Equals(cell) {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds writes are ignored and reads return empty cells.
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)
	if !b.GetCell(-1, 0).Equals(core.EmptyCell()) {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendFillAndRowText(t *testing.T) {
	b := NewNullBackend(10, 3)
	b.Init()

	b.Fill(core.RectFromSize(1, -2, 1, 6), core.Cell{Text: ".", Width: 1})
	if got := b.RowText(1); got != "...." {
		t.Errorf("RowText(1) = %q, want %q", got, "....")
	}
	if got := b.RowText(0); got != "" {
		t.Errorf("RowText(0) = %q, want empty", got)
	}
	if got := b.RowText(7); got != "" {
		t.Errorf("RowText(7) = %q, want empty", got)
	}

	b.Clear()
	for i, line := range b.Lines() {
		if line != "" {
			t.Errorf("line %d = %q after Clear", i, line)
		}
	}
}

func TestNullBackendCursorAndMouse(t *testing.T) {
	b := NewNullBackend(10, 3)
	b.Init()

	b.ShowCursor(3, 1)
	if x, y, visible := b.CursorPosition(); x != 3 || y != 1 || !visible {
		t.Errorf("CursorPosition() = %d, %d, %v", x, y, visible)
	}
	b.HideCursor()
	if _, _, visible := b.CursorPosition(); visible {
		t.Error("cursor still visible after HideCursor")
	}

	b.EnableMouse()
	if !b.MouseEnabled() {
		t.Error("mouse not enabled")
	}
	b.DisableMouse()
	if b.MouseEnabled() {
		t.Error("mouse still enabled")
	}

	b.Show()
	b.Sync()
	b.Beep()
	if b.ShowCount() != 2 || b.BeepCount() != 1 {
		t.Errorf("ShowCount() = %d, BeepCount() = %d", b.ShowCount(), b.BeepCount())
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(10, 3)
	b.Init()

	if !b.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'a'}) {
		t.Fatal("PostEvent failed")
	}
	ev := b.PollEvent()
	if ev.Type != EventKey || ev.Rune != 'a' {
		t.Errorf("PollEvent() = %+v", ev)
	}

	b.Resize(30, 4)
	if w, h := b.Size(); w != 30 || h != 4 {
		t.Errorf("Size() after resize = %d, %d", w, h)
	}
	if ev := b.PollEvent(); ev.Type != EventResize || ev.Width != 30 || ev.Height != 4 {
		t.Errorf("resize event = %+v", ev)
	}

	b.Shutdown()
	b.Shutdown()
	if ev := b.PollEvent(); ev.Type != EventNone {
		t.Errorf("PollEvent() after Shutdown = %+v", ev)
	}
}

func TestModMaskHas(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.Has(ModCtrl) || !m.Has(ModShift) || m.Has(ModAlt) {
		t.Errorf("ModMask.Has mismatch for %b", m)
	}
}
