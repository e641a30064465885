package tasklist

import "errors"

// ValidationError reports input rejected by the store. The store is left
// unchanged when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

var (
	// ErrTitleRequired is returned by Add for a blank title when the store
	// was created with RejectEmpty.
	ErrTitleRequired = &ValidationError{Field: "title", Reason: "required"}

	// ErrClosed is returned by Add after Close.
	ErrClosed = errors.New("task list closed")
)
