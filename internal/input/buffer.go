// Package input holds the pending-input buffer: the text typed into the entry
// field that has not been committed as a task yet.
package input

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Buffer is a single-line edit buffer. The cursor is measured in grapheme
// clusters so that one key press always moves over one user-perceived
// character.
type Buffer struct {
	clusters []string
	cursor   int
}

// NewBuffer creates a buffer holding s with the cursor at the end.
func NewBuffer(s string) *Buffer {
	b := &Buffer{}
	b.Set(s)
	return b
}

// Text returns the buffer content.
func (b *Buffer) Text() string {
	return strings.Join(b.clusters, "")
}

// Len returns the number of grapheme clusters.
func (b *Buffer) Len() int {
	return len(b.clusters)
}

// IsEmpty reports whether the buffer holds no text at all. Whitespace-only
// content is not empty; the placeholder is only shown for a truly empty field.
func (b *Buffer) IsEmpty() bool {
	return len(b.clusters) == 0
}

// Cursor returns the cursor position in clusters.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// CursorColumn returns the display width of the text left of the cursor.
func (b *Buffer) CursorColumn() int {
	return uniseg.StringWidth(strings.Join(b.clusters[:b.cursor], ""))
}

// Width returns the display width of the whole buffer.
func (b *Buffer) Width() int {
	return uniseg.StringWidth(b.Text())
}

// Set replaces the content and moves the cursor to the end.
func (b *Buffer) Set(s string) {
	b.clusters = segment(sanitize(s))
	b.cursor = len(b.clusters)
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.clusters = nil
	b.cursor = 0
}

// Insert inserts s at the cursor and moves the cursor past it.
// Line breaks and tabs become spaces.
func (b *Buffer) Insert(s string) {
	if s == "" {
		return
	}
	before := strings.Join(b.clusters[:b.cursor], "")
	after := strings.Join(b.clusters[b.cursor:], "")
	head := norm.NFC.String(before + sanitize(s))

	b.clusters = segment(head + after)
	b.cursor = min(len(segment(head)), len(b.clusters))
}

// InsertRune inserts a single rune at the cursor.
func (b *Buffer) InsertRune(r rune) {
	b.Insert(string(r))
}

// Backspace removes the cluster left of the cursor.
func (b *Buffer) Backspace() bool {
	if b.cursor == 0 {
		return false
	}
	b.clusters = append(b.clusters[:b.cursor-1], b.clusters[b.cursor:]...)
	b.cursor--
	return true
}

// DeleteForward removes the cluster under the cursor.
func (b *Buffer) DeleteForward() bool {
	if b.cursor >= len(b.clusters) {
		return false
	}
	b.clusters = append(b.clusters[:b.cursor], b.clusters[b.cursor+1:]...)
	return true
}

// DeleteToStart removes everything left of the cursor.
func (b *Buffer) DeleteToStart() bool {
	if b.cursor == 0 {
		return false
	}
	b.clusters = append([]string(nil), b.clusters[b.cursor:]...)
	b.cursor = 0
	return true
}

// MoveLeft moves the cursor one cluster left.
func (b *Buffer) MoveLeft() bool {
	if b.cursor == 0 {
		return false
	}
	b.cursor--
	return true
}

// MoveRight moves the cursor one cluster right.
func (b *Buffer) MoveRight() bool {
	if b.cursor >= len(b.clusters) {
		return false
	}
	b.cursor++
	return true
}

// Home moves the cursor to the start.
func (b *Buffer) Home() {
	b.cursor = 0
}

// End moves the cursor to the end.
func (b *Buffer) End() {
	b.cursor = len(b.clusters)
}

// Window returns the slice of text that fits in width columns while keeping
// the cursor visible, together with the cursor column inside that slice.
// offset is the first visible cluster from the previous frame; the returned
// offset should be passed back next time so the text does not jump.
func (b *Buffer) Window(width, offset int) (visible string, cursorCol, newOffset int) {
	if width <= 0 {
		return "", 0, offset
	}
	offset = max(0, min(offset, b.cursor))

	// Scroll right until the cursor (plus one cell for it) fits.
	for offset < b.cursor && b.spanWidth(offset, b.cursor)+1 > width {
		offset++
	}

	var sb strings.Builder
	used := 0
	for i := offset; i < len(b.clusters); i++ {
		w := uniseg.StringWidth(b.clusters[i])
		if used+w > width {
			break
		}
		sb.WriteString(b.clusters[i])
		used += w
	}

	return sb.String(), b.spanWidth(offset, b.cursor), offset
}

func (b *Buffer) spanWidth(from, to int) int {
	w := 0
	for i := from; i < to; i++ {
		w += uniseg.StringWidth(b.clusters[i])
	}
	return w
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\r', '\n', '\t':
			return ' '
		}
		return r
	}, s)
}

func segment(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
