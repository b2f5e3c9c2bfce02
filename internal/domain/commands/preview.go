package commands

import (
	"errors"

	"github.com/aymanbagabas/go-udiff"
	logger "github.com/sirupsen/logrus"

	"github.com/technologybrewery/habushu/internal/domain/entities"
	"github.com/technologybrewery/habushu/internal/domain/repositories"
)

// buildPreview renders the unified diff between the current and the
// rewritten content of a file. Identical content yields "".
func buildPreview(path string, before, after []string) string {
	return udiff.Unified(path+" (current)", path+" (updated)", entities.JoinLines(before), entities.JoinLines(after))
}

// reportWorktreeStatus points out a rewritten file that now differs from
// what is committed, so the change gets reviewed.
func reportWorktreeStatus(worktree repositories.WorktreeRepository, path string) {
	modified, err := worktree.IsModified(path)
	switch {
	case errors.Is(err, repositories.ErrNotInRepository):
		logger.Debugf("%s is not tracked by git, skipping status check", path)
	case err != nil:
		logger.Warnf("Failed to check git status of %s: %v", path, err)
	case modified:
		logger.Infof("%s now has uncommitted changes, review them before committing", path)
	}
}
