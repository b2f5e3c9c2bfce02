//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/technologybrewery/habushu/internal/domain/commands"
	"github.com/technologybrewery/habushu/internal/domain/entities"
)

// StubVersionCommand implements commands.Version for testing.
type StubVersionCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *commands.VersionResult
	LastSettings     *entities.Settings
	LastOpts         commands.VersionOptions
}

var _ commands.Version = (*StubVersionCommand)(nil)

func (s *StubVersionCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.VersionOptions,
) (*commands.VersionResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	if s.Result == nil {
		return &commands.VersionResult{}, s.ExecuteErr
	}
	return s.Result, s.ExecuteErr
}
