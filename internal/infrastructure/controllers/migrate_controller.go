package controllers

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/technologybrewery/habushu/internal/domain/commands"
	"github.com/technologybrewery/habushu/internal/domain/entities"
)

const (
	flagMigration = "migration"
	flagList      = "list"
)

// MigrateController handles the "migrate" subcommand.
type MigrateController struct {
	command commands.Migrate
}

// NewMigrateController creates a new MigrateController.
func NewMigrateController(command commands.Migrate) *MigrateController {
	return &MigrateController{command: command}
}

// GetBind returns the Cobra command metadata for the migrate controller.
func (it *MigrateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "migrate [project-dir]",
		Short: "Run pyproject.toml migrations",
		Long: `Run the enabled pyproject.toml migrations in order. Each migration first
checks whether the file needs it, so running them repeatedly is safe.

Use --list to see every migration and whether it is enabled by default,
and --migration to run specific ones regardless of habushu.yaml.`,
	}
}

// AddFlags adds the migrate-specific flags to the given Cobra command.
func (it *MigrateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice(flagMigration, nil, "Only run these migrations (repeatable)")
	cmd.Flags().Bool(flagList, false, "List the available migrations and exit")
}

// Execute runs the selected migrations.
func (it *MigrateController) Execute(cmd *cobra.Command, arguments []string) error {
	if list, _ := cmd.Flags().GetBool(flagList); list {
		printMigrations(cmd, it.command.List())
		return nil
	}

	opts, err := resolveCommonOptions(cmd, arguments)
	if err != nil {
		return err
	}
	only, _ := cmd.Flags().GetStringSlice(flagMigration)

	result, err := it.command.Execute(context.Background(), opts.settings, commands.MigrateOptions{
		ProjectDir: opts.projectDir,
		DryRun:     opts.dryRun,
		Only:       only,
	})
	if err != nil {
		return err
	}

	for _, name := range result.Migrated {
		printPreview(cmd.OutOrStdout(), result.Previews[name])
	}
	if len(result.Migrated) == 0 {
		logger.Infof("No migration needed for %s", result.Path)
	} else {
		logger.Infof("Migrations applied to %s: %s", result.Path, strings.Join(result.Migrated, ", "))
	}
	return nil
}

func printMigrations(cmd *cobra.Command, migrations []commands.MigrationInfo) {
	out := cmd.OutOrStdout()
	for _, migration := range migrations {
		state := "disabled"
		if migration.Enabled {
			state = "enabled"
		}
		_, _ = fmt.Fprintf(out, "%-24s %-9s %s\n", migration.Name, state, migration.Description)
	}
}
