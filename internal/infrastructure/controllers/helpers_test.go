//go:build unit

package controllers_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/technologybrewery/habushu/internal/domain/entities"
	"github.com/technologybrewery/habushu/internal/infrastructure/controllers"
)

// newCobraCommand wires a controller the way the root command does and
// parses the given flags.
func newCobraCommand(t *testing.T, ctrl entities.Controller, flags ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	bind := ctrl.GetBind()
	//nolint:exhaustruct // Minimal cobra.Command initialization with required fields only
	cmd := &cobra.Command{Use: bind.Use, Short: bind.Short, Long: bind.Long}
	controllers.AddPersistentFlags(cmd)
	ctrl.AddFlags(cmd)
	require.NoError(t, cmd.ParseFlags(flags))

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	return cmd, out
}
