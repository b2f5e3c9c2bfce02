package repositories

import (
	"github.com/technologybrewery/habushu/internal/domain/entities"
)

// MigrationRepository abstracts a one-off rewrite of a pyproject.toml file
// (relocating monorepo dependencies, bumping the build backend, etc.).
// Implementations hold no per-file state: every call starts from the file
// on disk, so a migration instance can be reused across projects.
type MigrationRepository interface {
	// Name returns the migration identifier (e.g. "monorepo-group").
	Name() string

	// Description is a one-line summary shown by `migrate --list`.
	Description() string

	// ShouldExecuteOnFile reports whether the file needs this migration.
	ShouldExecuteOnFile(path string) (bool, error)

	// Apply computes the migrated lines of an already loaded document
	// without touching the file; the flag is false when nothing changes.
	Apply(doc *entities.PyprojectDocument) ([]string, bool)

	// PerformMigration re-reads the file, migrates it and writes it back,
	// reporting whether the file was rewritten.
	PerformMigration(path string) (bool, error)
}
