package view

// Viewport tracks which slice of the task list is on screen.
type Viewport struct {
	// Top is the index of the first visible task.
	Top int
	// Height is the number of task rows on screen.
	Height int
	// Count is the number of tasks.
	Count int
}

// MaxTop returns the largest Top that still fills the viewport.
func (v Viewport) MaxTop() int {
	if v.Count <= v.Height {
		return 0
	}
	return v.Count - v.Height
}

// Clamp keeps Top within [0, MaxTop].
func (v *Viewport) Clamp() {
	v.Top = max(0, min(v.Top, v.MaxTop()))
}

// ScrollBy moves Top by delta rows.
func (v *Viewport) ScrollBy(delta int) {
	v.Top += delta
	v.Clamp()
}

// Reveal scrolls minimally so index is visible. Returns true if Top changed.
func (v *Viewport) Reveal(index int) bool {
	old := v.Top
	switch {
	case v.Height <= 0:
		return false
	case index < v.Top:
		v.Top = index
	case index >= v.Top+v.Height:
		v.Top = index - v.Height + 1
	}
	v.Clamp()
	return v.Top != old
}

// IsVisible reports whether index is on screen.
func (v Viewport) IsVisible(index int) bool {
	return index >= v.Top && index < v.Top+v.Height && index < v.Count
}

// PageSize is the distance PageUp/PageDown move, keeping one row of overlap.
func (v Viewport) PageSize() int {
	return max(1, v.Height-1)
}
