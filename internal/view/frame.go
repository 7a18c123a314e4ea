package view

import "github.com/dshills/todolist/internal/renderer/core"

// TargetKind identifies a clickable control.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetInput
	TargetAdd
	TargetRow
	TargetStar
	TargetDelete
)

// String returns the control name.
func (k TargetKind) String() string {
	switch k {
	case TargetInput:
		return "input"
	case TargetAdd:
		return "add"
	case TargetRow:
		return "row"
	case TargetStar:
		return "star"
	case TargetDelete:
		return "delete"
	default:
		return "none"
	}
}

// Target is a control and where it was drawn. Index is the task index for
// row, star and delete targets.
type Target struct {
	Kind  TargetKind
	Index int
	Rect  core.ScreenRect
}

// Frame describes the last rendered screen.
type Frame struct {
	Width, Height int

	// Targets are ordered so buttons come before the row they sit on.
	Targets []Target

	// List is the on-screen position of the task rows.
	List Viewport

	// InputOffset is the horizontal scroll of the input field in clusters.
	InputOffset int
}

// HitTest returns the control under (x, y).
func (f Frame) HitTest(x, y int) (Target, bool) {
	for _, t := range f.Targets {
		if t.Rect.Contains(x, y) {
			return t, true
		}
	}
	return Target{}, false
}
