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

func TestRemoveMonorepoGroupMigration(t *testing.T) {
	t.Parallel()

	t.Run("should fold the monorepo group into the default group", func(t *testing.T) {
		t.Parallel()

		// given
		path := writePyproject(t, `[tool.poetry.dependencies]
python = "^3.11"

[tool.poetry.group.monorepo.dependencies]
# siblings
foo = {path = "../foo", develop = true}

[build-system]
requires = ["poetry-core>=1.6.0"]
`)
		migration := migrations.NewRemoveMonorepoGroupMigration(pyproject.NewFileRepository())

		// when
		should, checkErr := migration.ShouldExecuteOnFile(path)
		migrated, err := migration.PerformMigration(path)

		// then
		require.NoError(t, checkErr)
		require.NoError(t, err)
		assert.True(t, should)
		assert.True(t, migrated)
		assert.Equal(t, `[tool.poetry.dependencies]
foo = {path = "../foo", develop = true}
python = "^3.11"

# siblings
[build-system]
requires = ["poetry-core>=1.6.0"]
`, readFile(t, path))
	})

	t.Run("should create the default group header when it is missing", func(t *testing.T) {
		t.Parallel()

		// given
		path := writePyproject(t, `[tool.poetry]
name = "demo"

[tool.poetry.group.monorepo.dependencies]
foo = {path = "../foo", develop = true}

[build-system]
requires = ["poetry-core>=1.6.0"]
`)
		migration := migrations.NewRemoveMonorepoGroupMigration(pyproject.NewFileRepository())

		// when
		migrated, err := migration.PerformMigration(path)

		// then
		require.NoError(t, err)
		assert.True(t, migrated)
		assert.Equal(t, `[tool.poetry]
name = "demo"

[tool.poetry.dependencies]
foo = {path = "../foo", develop = true}

[build-system]
requires = ["poetry-core>=1.6.0"]
`, readFile(t, path))
	})

	t.Run("should drop entries already declared in the default group", func(t *testing.T) {
		t.Parallel()

		// given
		path := writePyproject(t, `[tool.poetry.dependencies]
foo = "^1.0.0"

[tool.poetry.group.monorepo.dependencies]
foo = {path = "../foo", develop = true}
`)
		migration := migrations.NewRemoveMonorepoGroupMigration(pyproject.NewFileRepository())

		// when
		migrated, err := migration.PerformMigration(path)

		// then
		require.NoError(t, err)
		assert.True(t, migrated)
		assert.Equal(t, `[tool.poetry.dependencies]
foo = "^1.0.0"
`, readFile(t, path))
	})

	t.Run("should undo the monorepo group migration", func(t *testing.T) {
		t.Parallel()

		// given
		path := writePyproject(t, localDependencyProject)
		repo := pyproject.NewFileRepository()
		_, err := migrations.NewMonorepoGroupMigration(repo).PerformMigration(path)
		require.NoError(t, err)
		migration := migrations.NewRemoveMonorepoGroupMigration(repo)

		// when
		_, removeErr := migration.PerformMigration(path)
		should, checkErr := migration.ShouldExecuteOnFile(path)

		// then
		require.NoError(t, removeErr)
		require.NoError(t, checkErr)
		assert.False(t, should)
		assert.Equal(t, `[tool.poetry]
name = "demo"

[tool.poetry.dependencies]
foo = {path = "../foo", develop = true}
python = "^3.11"

[build-system]
requires = ["poetry-core>=1.6.0"]
`, readFile(t, path))
	})

	t.Run("should remove the bare monorepo group table too", func(t *testing.T) {
		t.Parallel()

		// given
		path := writePyproject(t, `[tool.poetry.dependencies]
python = "^3.11"

[tool.poetry.group.monorepo]
optional = true

[tool.poetry.group.monorepo.dependencies]
foo = {path = "../foo", develop = true, optional = true}

[build-system]
requires = ["poetry-core>=1.6.0"]
`)
		migration := migrations.NewRemoveMonorepoGroupMigration(pyproject.NewFileRepository())

		// when
		migrated, err := migration.PerformMigration(path)

		// then
		require.NoError(t, err)
		assert.True(t, migrated)
		assert.Equal(t, `[tool.poetry.dependencies]
foo = {path = "../foo", develop = true}
python = "^3.11"

[build-system]
requires = ["poetry-core>=1.6.0"]
`, readFile(t, path))
	})

	t.Run("should not run without a monorepo group", func(t *testing.T) {
		t.Parallel()

		// given
		path := writePyproject(t, "[tool.poetry.dependencies]\npython = \"^3.11\"\n")
		migration := migrations.NewRemoveMonorepoGroupMigration(pyproject.NewFileRepository())

		// when
		should, err := migration.ShouldExecuteOnFile(path)

		// then
		require.NoError(t, err)
		assert.False(t, should)
		assert.Equal(t, entities.MigrationRemoveMonorepoGroup, migration.Name())
	})
}
