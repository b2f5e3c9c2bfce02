package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/technologybrewery/habushu/internal/domain/commands"
	"github.com/technologybrewery/habushu/internal/domain/entities"
)

const (
	flagPomVersion        = "pom-version"
	flagAddSnapshotNumber = "add-snapshot-number"
)

// VersionController handles the "version" subcommand.
type VersionController struct {
	command commands.Version
}

// NewVersionController creates a new VersionController.
func NewVersionController(command commands.Version) *VersionController {
	return &VersionController{command: command}
}

// GetBind returns the Cobra command metadata for the version controller.
func (it *VersionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "version [project-dir]",
		Short: "Sync the Poetry package version with the POM version",
		Long: `Convert the POM version into a PEP 440 version (1.2.3-SNAPSHOT becomes
1.2.3.dev, 1.2.3-rc.1 becomes 1.2.3rc1) and write it to [tool.poetry] when
override_package_version is enabled.`,
	}
}

// AddFlags adds the version-specific flags to the given Cobra command.
func (it *VersionController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagPomVersion, "", "Version of the enclosing Maven module (required)")
	cmd.Flags().Bool(flagAddSnapshotNumber, false, "Append epoch seconds to .dev versions")
}

// Execute synchronizes the package version.
func (it *VersionController) Execute(cmd *cobra.Command, arguments []string) error {
	opts, err := resolveCommonOptions(cmd, arguments)
	if err != nil {
		return err
	}

	pomVersion, _ := cmd.Flags().GetString(flagPomVersion)
	addSnapshotNumber, _ := cmd.Flags().GetBool(flagAddSnapshotNumber)

	result, err := it.command.Execute(context.Background(), opts.settings, commands.VersionOptions{
		ProjectDir:        opts.projectDir,
		PomVersion:        pomVersion,
		AddSnapshotNumber: addSnapshotNumber,
		DryRun:            opts.dryRun,
	})
	if err != nil {
		return err
	}

	printPreview(cmd.OutOrStdout(), result.Preview)
	return nil
}
