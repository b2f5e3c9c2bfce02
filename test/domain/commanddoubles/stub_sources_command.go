//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/technologybrewery/habushu/internal/domain/commands"
	"github.com/technologybrewery/habushu/internal/domain/entities"
)

// StubSourcesCommand implements commands.Sources for testing.
type StubSourcesCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *commands.SourcesResult
	LastSettings     *entities.Settings
	LastOpts         commands.SourcesOptions
}

var _ commands.Sources = (*StubSourcesCommand)(nil)

func (s *StubSourcesCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.SourcesOptions,
) (*commands.SourcesResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	if s.Result == nil {
		return &commands.SourcesResult{}, s.ExecuteErr
	}
	return s.Result, s.ExecuteErr
}
