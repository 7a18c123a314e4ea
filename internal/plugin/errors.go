package plugin

import (
	"errors"
	"fmt"
)

// Errors for hook script operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrTimeout is returned when a script runs past its deadline.
	ErrTimeout = errors.New("lua execution timeout")

	// ErrNotFunction is returned when a global hook name is bound to a
	// non-function value.
	ErrNotFunction = errors.New("not a function")
)

// HookError reports a failure inside a named hook.
type HookError struct {
	Hook string
	Err  error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("hook %s: %v", e.Hook, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}
