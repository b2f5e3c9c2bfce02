package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/technologybrewery/habushu/internal/domain/commands"
	"github.com/technologybrewery/habushu/internal/domain/entities"
)

const (
	flagRepoURL = "repo-url"
	flagRepoID  = "repo-id"
)

// SourcesController handles the "sources" subcommand.
type SourcesController struct {
	command commands.Sources
}

// NewSourcesController creates a new SourcesController.
func NewSourcesController(command commands.Sources) *SourcesController {
	return &SourcesController{command: command}
}

// GetBind returns the Cobra command metadata for the sources controller.
func (it *SourcesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "sources [project-dir]",
		Short: "Add the private PyPI repository as a package source",
		Long: `Make sure the private PyPI repository configured in habushu.yaml (or given
with --repo-url) is declared as a secondary [[tool.poetry.source]], using
its PEP 503 simple index URL.`,
	}
}

// AddFlags adds the sources-specific flags to the given Cobra command.
func (it *SourcesController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagRepoURL, "", "Private PyPI repository URL (overrides pypi.repo_url)")
	cmd.Flags().String(flagRepoID, "", "Private PyPI repository id used as source name (overrides pypi.repo_id)")
}

// Execute checks the package sources.
func (it *SourcesController) Execute(cmd *cobra.Command, arguments []string) error {
	opts, err := resolveCommonOptions(cmd, arguments)
	if err != nil {
		return err
	}

	if repoURL, _ := cmd.Flags().GetString(flagRepoURL); repoURL != "" {
		opts.settings.PyPI.RepoURL = repoURL
	}
	if repoID, _ := cmd.Flags().GetString(flagRepoID); repoID != "" {
		opts.settings.PyPI.RepoID = repoID
	}

	result, err := it.command.Execute(context.Background(), opts.settings, commands.SourcesOptions{
		ProjectDir: opts.projectDir,
		DryRun:     opts.dryRun,
	})
	if err != nil {
		return err
	}

	printPreview(cmd.OutOrStdout(), result.Preview)
	return nil
}
