//go:build unit

package main //nolint:testpackage // tests unexported functions

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRootCommand(t *testing.T) {
	t.Parallel()

	t.Run("should register the shared flags and every subcommand", func(t *testing.T) {
		t.Parallel()

		// given
		root := buildRootCommand()

		// when
		addSubcommands(root, injectAppContext())

		// then
		for _, flag := range []string{"config", "dry-run", "verbose"} {
			assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
		}
		var names []string
		for _, sub := range root.Commands() {
			names = append(names, sub.Name())
		}
		assert.ElementsMatch(t, []string{"reconcile", "migrate", "sources", "version"}, names)
	})

	t.Run("should run a dry-run migration end to end without touching the file", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		content := "[build-system]\nrequires = [\"poetry-core>=1.0.0,<2.0.0\"]\n"
		path := filepath.Join(dir, "pyproject.toml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		root := buildRootCommand()
		addSubcommands(root, injectAppContext())
		out := &bytes.Buffer{}
		root.SetOut(out)
		root.SetArgs([]string{"migrate", "--dry-run", dir})

		// when
		err := root.Execute()

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "poetry-core>=1.6.0,<2.0.0")
		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, content, string(data))
	})
}
