package repositories

import "errors"

// ErrNotInRepository is returned when a file is not inside a Git working tree.
var ErrNotInRepository = errors.New("file is not inside a git working tree")

// WorktreeRepository inspects the Git working tree holding a rewritten file
// so the change can be pointed out for review.
type WorktreeRepository interface {
	// IsModified reports whether the file differs from the committed version.
	IsModified(path string) (bool, error)
}
