//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/technologybrewery/habushu/internal/domain/entities"
	"github.com/technologybrewery/habushu/internal/domain/repositories"
)

// SpyMigrationRepository implements repositories.MigrationRepository as a configurable spy.
type SpyMigrationRepository struct {
	// --- identity ---
	MigrationName        string
	MigrationDescription string

	// --- ShouldExecuteOnFile ---
	ShouldExecute    bool
	ShouldExecuteErr error
	CheckedPaths     []string

	// --- Apply ---
	AppliedLines []string
	ApplyChanged bool
	AppliedDocs  []*entities.PyprojectDocument

	// --- PerformMigration ---
	Migrated      bool
	PerformErr    error
	MigratedPaths []string
}

var _ repositories.MigrationRepository = (*SpyMigrationRepository)(nil)

func (s *SpyMigrationRepository) Name() string { return s.MigrationName }

func (s *SpyMigrationRepository) Description() string { return s.MigrationDescription }

func (s *SpyMigrationRepository) ShouldExecuteOnFile(path string) (bool, error) {
	s.CheckedPaths = append(s.CheckedPaths, path)
	return s.ShouldExecute, s.ShouldExecuteErr
}

func (s *SpyMigrationRepository) Apply(doc *entities.PyprojectDocument) ([]string, bool) {
	s.AppliedDocs = append(s.AppliedDocs, doc)
	if !s.ApplyChanged {
		return doc.Lines, false
	}
	return s.AppliedLines, true
}

func (s *SpyMigrationRepository) PerformMigration(path string) (bool, error) {
	s.MigratedPaths = append(s.MigratedPaths, path)
	return s.Migrated, s.PerformErr
}
