package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/technologybrewery/habushu/internal/domain/commands"
	"github.com/technologybrewery/habushu/internal/domain/entities"
)

const (
	flagFailOnMismatch = "fail-on-mismatch"
	flagNoUpdate       = "no-update"
)

// ReconcileController handles the "reconcile" subcommand.
type ReconcileController struct {
	command commands.Reconcile
}

// NewReconcileController creates a new ReconcileController.
func NewReconcileController(command commands.Reconcile) *ReconcileController {
	return &ReconcileController{command: command}
}

// GetBind returns the Cobra command metadata for the reconcile controller.
func (it *ReconcileController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "reconcile [project-dir]",
		Short: "Align dependencies with the managed dependency definitions",
		Long: `Compare every dependency group of pyproject.toml (default, dev and custom
groups) with the managed dependencies configured in habushu.yaml.

Mismatching declarations are rewritten in place, leaving every other line
untouched, unless updates are disabled. With --fail-on-mismatch the command
stops with an error instead.`,
	}
}

// AddFlags adds the reconcile-specific flags to the given Cobra command.
func (it *ReconcileController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool(flagFailOnMismatch, false, "Fail when a managed dependency does not match")
	cmd.Flags().Bool(flagNoUpdate, false, "Only report mismatches, never rewrite pyproject.toml")
}

// Execute runs the reconciliation.
func (it *ReconcileController) Execute(cmd *cobra.Command, arguments []string) error {
	opts, err := resolveCommonOptions(cmd, arguments)
	if err != nil {
		return err
	}

	if failOnMismatch, _ := cmd.Flags().GetBool(flagFailOnMismatch); failOnMismatch {
		opts.settings.FailOnManagedDependenciesMismatches = true
	}
	if noUpdate, _ := cmd.Flags().GetBool(flagNoUpdate); noUpdate {
		opts.settings.UpdateManagedDependenciesWhenFound = false
	}

	result, err := it.command.Execute(context.Background(), opts.settings, commands.ReconcileOptions{
		ProjectDir: opts.projectDir,
		DryRun:     opts.dryRun,
	})
	if err != nil {
		return err
	}

	printPreview(cmd.OutOrStdout(), result.Preview)
	logger.Debugf("Reconciled %s: %d mismatch(es)", result.Path, len(result.Mismatches))
	return nil
}
