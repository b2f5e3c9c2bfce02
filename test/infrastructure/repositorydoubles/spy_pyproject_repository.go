//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/technologybrewery/habushu/internal/domain/entities"
	"github.com/technologybrewery/habushu/internal/domain/repositories"
)

// SpyPyprojectRepository wraps a real repositories.PyprojectRepository,
// recording writes and optionally failing them.
type SpyPyprojectRepository struct {
	Delegate repositories.PyprojectRepository

	// --- Load ---
	LoadErr    error
	LoadedPath []string

	// --- WriteLines ---
	WriteErr   error
	WriteCalls []WriteCall
}

// WriteCall records a single invocation of WriteLines.
type WriteCall struct {
	Path  string
	Lines []string
}

var _ repositories.PyprojectRepository = (*SpyPyprojectRepository)(nil)

func (s *SpyPyprojectRepository) Load(path string) (*entities.PyprojectDocument, error) {
	s.LoadedPath = append(s.LoadedPath, path)
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Delegate.Load(path)
}

func (s *SpyPyprojectRepository) WriteLines(path string, lines []string) error {
	s.WriteCalls = append(s.WriteCalls, WriteCall{Path: path, Lines: lines})
	if s.WriteErr != nil {
		return s.WriteErr
	}
	return s.Delegate.WriteLines(path, lines)
}
