package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	"github.com/technologybrewery/habushu/internal/domain/repositories"
)

// WorktreeRepository implements repositories.WorktreeRepository with go-git,
// opening the repository that contains the inspected file.
type WorktreeRepository struct{}

// NewWorktreeRepository creates a new go-git backed worktree repository.
func NewWorktreeRepository() repositories.WorktreeRepository {
	return &WorktreeRepository{}
}

// IsModified reports whether path has staged or unstaged changes (untracked
// files count as modified). Files outside a working tree yield
// repositories.ErrNotInRepository.
func (r *WorktreeRepository) IsModified(path string) (bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("invalid path: %w", err)
	}

	//nolint:exhaustruct // Minimal PlainOpenOptions initialization with required fields only
	repo, err := gogit.PlainOpenWithOptions(filepath.Dir(absPath), &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return false, repositories.ErrNotInRepository
		}
		return false, fmt.Errorf("failed to open git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to open worktree: %w", err)
	}

	relPath, err := filepath.Rel(worktree.Filesystem.Root(), absPath)
	if err != nil {
		return false, fmt.Errorf("failed to resolve %s inside the worktree: %w", path, err)
	}

	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to read worktree status: %w", err)
	}

	fileStatus, found := status[filepath.ToSlash(relPath)]
	if !found {
		return false, nil
	}
	return fileStatus.Worktree != gogit.Unmodified || fileStatus.Staging != gogit.Unmodified, nil
}
