// Package task holds the in-memory task list.
//
// A Store is an ordered sequence of tasks, oldest first. Positions shown to
// the user are derived from the current index on every render; the ID carried
// by each task is the only stable identity.
package task

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ID identifies a task for its whole lifetime.
type ID = uuid.UUID

// Task is one to-do entry.
type Task struct {
	ID      ID
	Text    string
	Starred bool
}

// Label renders the task the way a list row shows it: "<position>. <text>".
func (t Task) Label(position int) string {
	return strconv.Itoa(position) + ". " + t.Text
}

// IsBlank reports whether text would be rejected by Add.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
