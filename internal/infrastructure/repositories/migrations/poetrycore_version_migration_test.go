//go:build unit

package migrations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/technologybrewery/habushu/internal/domain/entities"
	"github.com/technologybrewery/habushu/internal/infrastructure/repositories/migrations"
	"github.com/technologybrewery/habushu/internal/infrastructure/repositories/pyproject"
)

func buildSystem(requires string) string {
	return `[tool.poetry]
name = "demo"

[build-system]
requires = ` + requires + `
build-backend = "poetry.core.masonry.api"
`
}

func TestPoetrycoreVersionMigration(t *testing.T) {
	t.Parallel()

	upgrades := []struct {
		name     string
		requires string
		want     string
	}{
		{
			name:     "should raise the minor version keeping the upper bound",
			requires: `["poetry-core>=1.0.0,<2.0.0"]`,
			want:     `["poetry-core>=1.6.0,<2.0.0"]`,
		},
		{
			name:     "should raise both major and minor of an older major",
			requires: `["poetry-core>=0.12"]`,
			want:     `["poetry-core>=1.6"]`,
		},
		{
			name:     "should add the minor when only a major is pinned",
			requires: `["poetry-core^1"]`,
			want:     `["poetry-core^1.6"]`,
		},
		{
			name:     "should handle a plain string requirement",
			requires: `"poetry-core>=1.2.0"`,
			want:     `"poetry-core>=1.6.0"`,
		},
	}

	for _, tt := range upgrades {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			path := writePyproject(t, buildSystem(tt.requires))
			migration := migrations.NewPoetrycoreVersionMigration(pyproject.NewFileRepository())

			// when
			should, checkErr := migration.ShouldExecuteOnFile(path)
			migrated, err := migration.PerformMigration(path)

			// then
			require.NoError(t, checkErr)
			require.NoError(t, err)
			assert.True(t, should)
			assert.True(t, migrated)
			assert.Equal(t, buildSystem(tt.want), readFile(t, path))
		})
	}

	current := []struct {
		name     string
		requires string
	}{
		{name: "should accept the required version", requires: `["poetry-core>=1.6.0"]`},
		{name: "should accept a newer minor", requires: `["poetry-core>=1.7.0"]`},
		{name: "should accept a newer major", requires: `["poetry-core>=2.0.0"]`},
		{name: "should ignore an unpinned requirement", requires: `["poetry-core"]`},
		{name: "should ignore other build backends", requires: `["setuptools>=40.8.0"]`},
	}

	for _, tt := range current {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			content := buildSystem(tt.requires)
			path := writePyproject(t, content)
			migration := migrations.NewPoetrycoreVersionMigration(pyproject.NewFileRepository())

			// when
			should, checkErr := migration.ShouldExecuteOnFile(path)
			migrated, err := migration.PerformMigration(path)

			// then
			require.NoError(t, checkErr)
			require.NoError(t, err)
			assert.False(t, should)
			assert.False(t, migrated)
			assert.Equal(t, content, readFile(t, path))
		})
	}

	t.Run("should rewrite multi-line requirement arrays", func(t *testing.T) {
		t.Parallel()

		// given
		path := writePyproject(t, `[build-system]
requires = [
    "setuptools",
    "poetry-core>=1.1.0",
]
`)
		migration := migrations.NewPoetrycoreVersionMigration(pyproject.NewFileRepository())

		// when
		migrated, err := migration.PerformMigration(path)

		// then
		require.NoError(t, err)
		assert.True(t, migrated)
		assert.Equal(t, `[build-system]
requires = [
    "setuptools",
    "poetry-core>=1.6.0",
]
`, readFile(t, path))
	})

	t.Run("should describe the required version", func(t *testing.T) {
		t.Parallel()

		// given
		migration := migrations.NewPoetrycoreVersionMigration(pyproject.NewFileRepository())

		// when, then
		assert.Equal(t, entities.MigrationPoetrycoreVersion, migration.Name())
		assert.Contains(t, migration.Description(), entities.PoetryCoreVersionRequirement)
	})
}
