package commands

import (
	"context"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/technologybrewery/habushu/internal/domain/entities"
	"github.com/technologybrewery/habushu/internal/domain/repositories"
)

// Sources is the interface for the package source injection command.
type Sources interface {
	Execute(ctx context.Context, settings *entities.Settings, opts SourcesOptions) (*SourcesResult, error)
}

// SourcesOptions holds runtime options for package source injection.
type SourcesOptions struct {
	ProjectDir string
	DryRun     bool
}

// SourcesResult describes the outcome of a package source check.
type SourcesResult struct {
	Path     string
	IndexURL string
	Added    bool
	Preview  string
}

// SourcesCommand appends the configured private PyPI repository as a
// secondary [[tool.poetry.source]] when the project does not declare it yet.
type SourcesCommand struct {
	pyprojectRepository repositories.PyprojectRepository
	worktreeRepository  repositories.WorktreeRepository
	now                 func() time.Time
}

// NewSourcesCommand creates a new SourcesCommand.
func NewSourcesCommand(
	pyprojectRepository repositories.PyprojectRepository,
	worktreeRepository repositories.WorktreeRepository,
) *SourcesCommand {
	return &SourcesCommand{
		pyprojectRepository: pyprojectRepository,
		worktreeRepository:  worktreeRepository,
		now:                 time.Now,
	}
}

// Execute checks and, when needed, extends the package sources.
func (it *SourcesCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts SourcesOptions,
) (*SourcesResult, error) {
	path := settings.PyprojectPath(opts.ProjectDir)
	result := &SourcesResult{Path: path}

	if settings.PyPI.RepoURL == "" || !settings.PyPI.AddAsPackageSource {
		logger.Info("[sources] No private PyPI repository to add as package source")
		return result, nil
	}

	indexURL, err := entities.SimpleIndexURL(settings.PyPI.RepoURL, settings.PyPI.SimpleSuffix)
	if err != nil {
		return nil, entities.NewHabushuError("could not derive the PyPI simple index URL", err)
	}
	result.IndexURL = indexURL

	doc, err := it.pyprojectRepository.Load(path)
	if err != nil {
		return nil, err
	}

	if entities.HasPackageSource(doc, indexURL) {
		logger.Debugf("[sources] Configured PyPI repository %s already declared in [[%s]]",
			settings.PyPI.RepoURL, entities.SectionPackageSources)
		return result, nil
	}

	logger.Infof("[sources] Private PyPI repository entry for %s not found in %s", settings.PyPI.RepoURL, path)
	block := entities.BuildPackageSourceBlock(indexURL, settings.PyPI.RepoID, it.now())
	lines := entities.AppendLines(doc.Lines, block)

	if opts.DryRun {
		result.Preview = buildPreview(path, doc.Lines, lines)
		return result, nil
	}

	logger.Infof("[sources] Adding %s as secondary repository from which dependencies may be installed", indexURL)
	if writeErr := it.pyprojectRepository.WriteLines(path, lines); writeErr != nil {
		return nil, writeErr
	}
	result.Added = true
	reportWorktreeStatus(it.worktreeRepository, path)

	return result, nil
}
