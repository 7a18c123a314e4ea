package view

import (
	"strings"
	"testing"

	"github.com/dshills/todolist/internal/input"
	"github.com/dshills/todolist/internal/renderer/backend"
	"github.com/dshills/todolist/internal/renderer/core"
	"github.com/dshills/todolist/internal/task"
)

func testModel(texts ...string) Model {
	store := task.NewStore()
	for _, s := range texts {
		store.Add(s)
	}
	return Model{
		Title:       "Lista zadań",
		Placeholder: "Wprowadź zadanie",
		Labels:      Labels{Add: "Add", Star: "Ważne", Unstar: "Odważnik", Delete: "Delete"},
		Theme:       DefaultTheme(),
		ShowHelp:    true,
		Input:       input.NewBuffer(""),
		Tasks:       store.Tasks(),
	}
}

func render(t *testing.T, w, h int, m Model) (*backend.NullBackend, Frame) {
	t.Helper()
	b := backend.NewNullBackend(w, h)
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	return b, Render(b, m)
}

func TestRender_Header(t *testing.T) {
	b, _ := render(t, 40, 10, testModel())

	row := b.RowText(RowHeader)
	if strings.TrimSpace(row) != "Lista zadań" {
		t.Errorf("header = %q", row)
	}
	// Centered: "Lista zadań" is 11 columns wide.
	if !strings.HasPrefix(row, strings.Repeat(" ", (40-11)/2)+"L") {
		t.Errorf("header not centered: %q", row)
	}
}

func TestRender_Placeholder(t *testing.T) {
	m := testModel()
	b, f := render(t, 40, 10, m)

	row := b.RowText(RowInput)
	if !strings.Contains(row, "Wprowadź zadanie") {
		t.Errorf("input row = %q, want placeholder", row)
	}
	if !strings.HasSuffix(row, "[ Add ]") {
		t.Errorf("input row = %q, want Add button at the end", row)
	}
	if got := b.GetCell(1, RowInput).Style.Foreground; !got.Equals(m.Theme.Placeholder) {
		t.Errorf("placeholder color = %v, want %v", got, m.Theme.Placeholder)
	}
	if !b.GetCell(1, RowInput).Style.Attributes.Has(core.AttrItalic) {
		t.Error("placeholder should be italic")
	}
	x, y, visible := b.CursorPosition()
	if !visible || x != 1 || y != RowInput {
		t.Errorf("cursor = (%d,%d,%v), want (1,%d,true)", x, y, visible, RowInput)
	}
	if f.InputOffset != 0 {
		t.Errorf("InputOffset = %d", f.InputOffset)
	}
}

func TestRender_PlaceholderHiddenWhenTyping(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"text", "Buy"},
		{"whitespace only", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel()
			m.Input.Insert(tt.input)
			b, _ := render(t, 40, 10, m)

			row := b.RowText(RowInput)
			if strings.Contains(row, "Wprowadź") {
				t.Errorf("placeholder drawn over input: %q", row)
			}
			x, _, _ := b.CursorPosition()
			if x != 1+len(tt.input) {
				t.Errorf("cursor x = %d, want %d", x, 1+len(tt.input))
			}
		})
	}
}

func TestRender_InputScrolls(t *testing.T) {
	m := testModel()
	m.Input.Insert(strings.Repeat("x", 50) + "END")
	b, f := render(t, 30, 10, m)

	row := b.RowText(RowInput)
	if !strings.Contains(row, "END") {
		t.Errorf("input row %q should show the text around the cursor", row)
	}
	if f.InputOffset == 0 {
		t.Error("InputOffset should advance for long input")
	}
}

func TestRender_TaskRows(t *testing.T) {
	m := testModel("Buy milk", "Call mom")
	m.Tasks[1].Starred = true
	b, f := render(t, 60, 10, m)

	first := b.RowText(FirstTaskRow)
	if !strings.HasPrefix(strings.TrimLeft(first, " "), "1. Buy milk") {
		t.Errorf("first row = %q", first)
	}
	if !strings.Contains(first, "[ Ważne ]") || !strings.HasSuffix(strings.TrimRight(first, " "), "[ Delete ]") {
		t.Errorf("first row buttons = %q", first)
	}

	second := b.RowText(FirstTaskRow + 1)
	if !strings.Contains(second, "2. Call mom") || !strings.Contains(second, "[ Odważnik ]") {
		t.Errorf("second row = %q", second)
	}

	if got := b.GetCell(1, FirstTaskRow).Style.Foreground; !got.Equals(m.Theme.Text) {
		t.Errorf("plain row color = %v, want %v", got, m.Theme.Text)
	}
	if got := b.GetCell(1, FirstTaskRow+1).Style.Foreground; !got.Equals(m.Theme.Starred) {
		t.Errorf("starred row color = %v, want %v", got, m.Theme.Starred)
	}

	if f.List.Count != 2 || f.List.Height != 10-FirstTaskRow-1 {
		t.Errorf("List = %+v", f.List)
	}
}

func TestRender_Truncates(t *testing.T) {
	m := testModel(strings.Repeat("long ", 30))
	b, _ := render(t, 50, 8, m)

	row := b.RowText(FirstTaskRow)
	if !strings.Contains(row, "…") {
		t.Errorf("long task should be truncated with an ellipsis: %q", row)
	}
	if !strings.HasSuffix(row, "[ Delete ]") {
		t.Errorf("buttons pushed off screen: %q", row)
	}
}

func TestRender_Selection(t *testing.T) {
	m := testModel("a", "b")
	m.Focus = FocusList
	m.Selected = 1
	b, _ := render(t, 40, 10, m)

	if got := b.GetCell(0, FirstTaskRow+1).Style.Background; !got.Equals(m.Theme.Selection) {
		t.Errorf("selected background = %v, want %v", got, m.Theme.Selection)
	}
	if got := b.GetCell(0, FirstTaskRow).Style.Background; !got.Equals(m.Theme.Background) {
		t.Errorf("unselected background = %v", got)
	}
	if _, _, visible := b.CursorPosition(); visible {
		t.Error("cursor should be hidden when the list has focus")
	}

	// Without list focus the selection is not drawn.
	m.Focus = FocusInput
	b, _ = render(t, 40, 10, m)
	if got := b.GetCell(0, FirstTaskRow+1).Style.Background; got.Equals(m.Theme.Selection) {
		t.Error("selection drawn without list focus")
	}
}

func TestRender_Scroll(t *testing.T) {
	texts := make([]string, 10)
	for i := range texts {
		texts[i] = string(rune('a' + i))
	}
	m := testModel(texts...)
	m.Scroll = 100
	b, f := render(t, 40, 8, m) // 3 visible rows

	if f.List.Height != 3 {
		t.Fatalf("Height = %d, want 3", f.List.Height)
	}
	if f.List.Top != 7 {
		t.Errorf("Top = %d, want clamped to 7", f.List.Top)
	}
	if row := b.RowText(FirstTaskRow); !strings.Contains(row, "8. h") {
		t.Errorf("first visible row = %q, want task 8", row)
	}
}

func TestRender_Help(t *testing.T) {
	m := testModel()
	b, _ := render(t, 80, 10, m)
	if row := b.RowText(9); !strings.Contains(row, "enter add") {
		t.Errorf("help = %q", row)
	}

	m.ShowHelp = false
	b, f := render(t, 80, 10, m)
	if row := b.RowText(9); row != "" {
		t.Errorf("help drawn while disabled: %q", row)
	}
	if f.List.Height != 10-FirstTaskRow {
		t.Errorf("Height = %d without help line", f.List.Height)
	}
}

func TestRender_TinyScreen(t *testing.T) {
	m := testModel("a")
	for _, size := range [][2]int{{0, 0}, {1, 1}, {5, 2}, {10, 3}} {
		b, f := render(t, size[0], size[1], m)
		if f.List.Height != 0 {
			t.Errorf("%v: Height = %d, want 0", size, f.List.Height)
		}
		if b.ShowCount() != 1 {
			t.Errorf("%v: Show called %d times", size, b.ShowCount())
		}
	}
}

func TestFrame_HitTest(t *testing.T) {
	m := testModel("Buy milk", "Call mom")
	_, f := render(t, 60, 10, m)

	tests := []struct {
		name  string
		x, y  int
		kind  TargetKind
		index int
	}{
		{"input", 3, RowInput, TargetInput, -1},
		{"add", 57, RowInput, TargetAdd, -1},
		{"row text", 3, FirstTaskRow + 1, TargetRow, 1},
		{"delete", 55, FirstTaskRow, TargetDelete, 0},
		{"star", 40, FirstTaskRow + 1, TargetStar, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := f.HitTest(tt.x, tt.y)
			if !ok {
				t.Fatalf("HitTest(%d,%d) found nothing", tt.x, tt.y)
			}
			if got.Kind != tt.kind || got.Index != tt.index {
				t.Errorf("HitTest(%d,%d) = %s %d, want %s %d", tt.x, tt.y, got.Kind, got.Index, tt.kind, tt.index)
			}
		})
	}

	if _, ok := f.HitTest(0, RowHeader); ok {
		t.Error("header should not be a target")
	}
	if _, ok := f.HitTest(3, FirstTaskRow+2); ok {
		t.Error("row past the last task should not be a target")
	}
}
