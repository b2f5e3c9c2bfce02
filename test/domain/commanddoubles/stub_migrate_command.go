//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/technologybrewery/habushu/internal/domain/commands"
	"github.com/technologybrewery/habushu/internal/domain/entities"
)

// StubMigrateCommand implements commands.Migrate for testing.
type StubMigrateCommand struct {
	// --- Execute ---
	ExecuteCallCount int
	ExecuteErr       error
	Result           *commands.MigrateResult
	LastSettings     *entities.Settings
	LastOpts         commands.MigrateOptions

	// --- List ---
	ListCallCount int
	Migrations    []commands.MigrationInfo
}

var _ commands.Migrate = (*StubMigrateCommand)(nil)

func (s *StubMigrateCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.MigrateOptions,
) (*commands.MigrateResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	if s.Result == nil {
		return &commands.MigrateResult{Previews: map[string]string{}}, s.ExecuteErr
	}
	return s.Result, s.ExecuteErr
}

func (s *StubMigrateCommand) List() []commands.MigrationInfo {
	s.ListCallCount++
	return s.Migrations
}
