package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAborted is returned by prompters when the user backs out of an
// interactive prompt. Callers treat it as a clean decline, not a failure.
var ErrAborted = errors.New("aborted")

// NotFoundError names a thing that does not exist, with the valid
// alternatives when they are cheap to enumerate.
type NotFoundError struct {
	Kind      string
	Name      string
	Available []string
	Hint      string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s %q not found", e.Kind, e.Name)
	if len(e.Available) > 0 {
		msg += fmt.Sprintf(" (available: %s)", strings.Join(e.Available, ", "))
	}
	if e.Hint != "" {
		msg += ". " + e.Hint
	}
	return msg
}

// ConflictError reports an attempt to create something that already
// exists.
type ConflictError struct {
	Kind string
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists at %s", e.Kind, e.Path)
}

// ExitError carries a specific process exit code, typically the editor's.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps an error to the process exit code: nil is 0, an
// ExitError keeps its code, anything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
