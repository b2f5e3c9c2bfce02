package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/technologybrewery/habushu/internal/domain/entities"
)

const (
	flagConfig  = "config"
	flagDryRun  = "dry-run"
	flagVerbose = "verbose"
)

// AddPersistentFlags registers the flags shared by every subcommand.
func AddPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(flagConfig, "c", "",
		"Path to config file (default: auto-detect in the project directory)")
	cmd.PersistentFlags().Bool(flagDryRun, false,
		"Show the changes as a diff without writing pyproject.toml")
	cmd.PersistentFlags().BoolP(flagVerbose, "v", false,
		"Enable verbose output")
}

// commonOptions holds the values every controller needs before running.
type commonOptions struct {
	projectDir string
	dryRun     bool
	settings   *entities.Settings
}

// resolveCommonOptions reads the shared flags, the optional project
// directory argument and the settings file.
func resolveCommonOptions(cmd *cobra.Command, arguments []string) (*commonOptions, error) {
	configPath, _ := cmd.Flags().GetString(flagConfig)
	dryRun, _ := cmd.Flags().GetBool(flagDryRun)
	verbose, _ := cmd.Flags().GetBool(flagVerbose)

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	projectDir := "."
	if len(arguments) > 0 {
		projectDir = arguments[0]
	}

	settings, err := entities.LoadSettings(configPath, projectDir)
	if err != nil {
		return nil, err
	}

	return &commonOptions{projectDir: projectDir, dryRun: dryRun, settings: settings}, nil
}
