package task

import "fmt"

// IndexError is the panic value raised when a caller addresses a position
// that does not exist. The UI only ever passes indices taken from the frame
// it just rendered, so reaching this is a bug rather than a user error.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("task: %s: index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}
