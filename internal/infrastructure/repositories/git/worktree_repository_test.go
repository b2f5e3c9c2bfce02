//go:build unit

package git_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/technologybrewery/habushu/internal/domain/repositories"
	gitRepo "github.com/technologybrewery/habushu/internal/infrastructure/repositories/git"
)

func initRepository(t *testing.T) (string, *gogit.Worktree) {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	worktree, err := repo.Worktree()
	require.NoError(t, err)

	path := filepath.Join(dir, "pyproject.toml")
	require.NoError(t, os.WriteFile(path, []byte("[tool.poetry]\n"), 0o644))
	_, err = worktree.Add("pyproject.toml")
	require.NoError(t, err)
	//nolint:exhaustruct // Minimal CommitOptions initialization with required fields only
	_, err = worktree.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return path, worktree
}

func TestWorktreeRepositoryIsModified(t *testing.T) {
	t.Parallel()

	t.Run("should report a committed file as unmodified", func(t *testing.T) {
		t.Parallel()

		// given
		path, _ := initRepository(t)
		repo := gitRepo.NewWorktreeRepository()

		// when
		modified, err := repo.IsModified(path)

		// then
		require.NoError(t, err)
		assert.False(t, modified)
	})

	t.Run("should report a rewritten file as modified", func(t *testing.T) {
		t.Parallel()

		// given
		path, _ := initRepository(t)
		require.NoError(t, os.WriteFile(path, []byte("[tool.poetry]\nname = \"demo\"\n"), 0o644))
		repo := gitRepo.NewWorktreeRepository()

		// when
		modified, err := repo.IsModified(path)

		// then
		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("should report files outside a repository", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "pyproject.toml")
		require.NoError(t, os.WriteFile(path, []byte("[tool.poetry]\n"), 0o644))
		repo := gitRepo.NewWorktreeRepository()

		// when
		_, err := repo.IsModified(path)

		// then
		assert.ErrorIs(t, err, repositories.ErrNotInRepository)
	})
}
