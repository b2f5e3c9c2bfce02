package entities

import "errors"

// ErrManagedDependencyMismatch marks a build stopped because managed
// dependencies do not match the declared policy.
var ErrManagedDependencyMismatch = errors.New("managed dependency mismatch")

// HabushuError is the single error kind for fatal tooling problems (unreadable
// or malformed pyproject.toml, failed writes, policy violations). Callers use
// IsHabushuError to tell it apart from ordinary control flow.
type HabushuError struct {
	Message string
	Err     error
}

// NewHabushuError wraps err (which may be nil) with a human-readable message.
func NewHabushuError(message string, err error) *HabushuError {
	return &HabushuError{Message: message, Err: err}
}

func (e *HabushuError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *HabushuError) Unwrap() error { return e.Err }

// IsHabushuError reports whether err, or anything it wraps, is a HabushuError.
func IsHabushuError(err error) bool {
	var target *HabushuError
	return errors.As(err, &target)
}
