//go:build unit

package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/technologybrewery/habushu/internal/infrastructure/repositories/pyproject"
	doubles "github.com/technologybrewery/habushu/test/infrastructure/repositorydoubles"
)

// writeProject creates a project directory holding a pyproject.toml.
func writeProject(t *testing.T, content string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "pyproject.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir, path
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func newSpyPyprojectRepository() *doubles.SpyPyprojectRepository {
	return &doubles.SpyPyprojectRepository{Delegate: pyproject.NewFileRepository()}
}
