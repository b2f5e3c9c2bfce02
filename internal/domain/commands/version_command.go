package commands

import (
	"context"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/technologybrewery/habushu/internal/domain/entities"
	"github.com/technologybrewery/habushu/internal/domain/repositories"
)

// Version is the interface for the package version synchronization command.
type Version interface {
	Execute(ctx context.Context, settings *entities.Settings, opts VersionOptions) (*VersionResult, error)
}

// VersionOptions holds runtime options for version synchronization.
type VersionOptions struct {
	ProjectDir        string
	PomVersion        string
	AddSnapshotNumber bool
	DryRun            bool
}

// VersionResult describes the outcome of a version check.
type VersionResult struct {
	Path     string
	Current  string
	Expected string
	Updated  bool
	Preview  string
}

// VersionCommand aligns tool.poetry.version with the PEP 440 form of the
// build's POM version.
type VersionCommand struct {
	pyprojectRepository repositories.PyprojectRepository
	worktreeRepository  repositories.WorktreeRepository
	now                 func() time.Time
}

// NewVersionCommand creates a new VersionCommand.
func NewVersionCommand(
	pyprojectRepository repositories.PyprojectRepository,
	worktreeRepository repositories.WorktreeRepository,
) *VersionCommand {
	return &VersionCommand{
		pyprojectRepository: pyprojectRepository,
		worktreeRepository:  worktreeRepository,
		now:                 time.Now,
	}
}

// Execute compares the declared package version with the expected one and
// rewrites it when override_package_version is enabled.
func (it *VersionCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts VersionOptions,
) (*VersionResult, error) {
	if opts.PomVersion == "" {
		return nil, entities.NewHabushuError("a POM version is required (use --pom-version)", nil)
	}

	path := settings.PyprojectPath(opts.ProjectDir)
	doc, err := it.pyprojectRepository.Load(path)
	if err != nil {
		return nil, err
	}

	result := &VersionResult{
		Path:     path,
		Current:  entities.CurrentPackageVersion(doc),
		Expected: entities.PythonPackageVersion(opts.PomVersion, opts.AddSnapshotNumber, "", it.now()),
	}

	if result.Current == result.Expected {
		logger.Infof("[version] Poetry package version %s already matches POM version %s", result.Current, opts.PomVersion)
		return result, nil
	}

	if !settings.OverridePackageVersion {
		logger.Warnf("[version] Poetry package version set to %s in %s does not align with expected "+
			"POM-derived version of %s", result.Current, path, result.Expected)
		return result, nil
	}

	lines, changed := entities.SetPackageVersion(doc.Lines, result.Expected)
	if !changed {
		return nil, entities.NewHabushuError("no version key found under ["+entities.SectionPoetry+"] in "+path, nil)
	}

	if opts.DryRun {
		result.Preview = buildPreview(path, doc.Lines, lines)
		return result, nil
	}

	logger.Infof("[version] Setting Poetry package version to %s", result.Expected)
	logger.Info("[version] If you do *not* want the Poetry package version to be automatically synced " +
		"with the POM version, set override_package_version: false in habushu.yaml")
	if writeErr := it.pyprojectRepository.WriteLines(path, lines); writeErr != nil {
		return nil, writeErr
	}
	result.Updated = true
	reportWorktreeStatus(it.worktreeRepository, path)

	return result, nil
}
