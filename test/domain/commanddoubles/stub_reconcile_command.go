//go:build integration || unit || test

// Package commanddoubles provides test doubles for the command interfaces
// consumed by the controllers.
package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/technologybrewery/habushu/internal/domain/commands"
	"github.com/technologybrewery/habushu/internal/domain/entities"
)

// StubReconcileCommand implements commands.Reconcile for testing.
type StubReconcileCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *commands.ReconcileResult
	LastSettings     *entities.Settings
	LastOpts         commands.ReconcileOptions
}

var _ commands.Reconcile = (*StubReconcileCommand)(nil)

func (s *StubReconcileCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ReconcileOptions,
) (*commands.ReconcileResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	if s.Result == nil {
		return &commands.ReconcileResult{}, s.ExecuteErr
	}
	return s.Result, s.ExecuteErr
}
