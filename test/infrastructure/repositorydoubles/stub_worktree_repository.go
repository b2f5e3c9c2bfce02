//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/technologybrewery/habushu/internal/domain/repositories"
)

// StubWorktreeRepository implements repositories.WorktreeRepository with canned answers.
type StubWorktreeRepository struct {
	Modified     bool
	Err          error
	CheckedPaths []string
}

var _ repositories.WorktreeRepository = (*StubWorktreeRepository)(nil)

func (s *StubWorktreeRepository) IsModified(path string) (bool, error) {
	s.CheckedPaths = append(s.CheckedPaths, path)
	return s.Modified, s.Err
}
