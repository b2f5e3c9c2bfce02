package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/technologybrewery/habushu/internal/domain/entities"
	"github.com/technologybrewery/habushu/internal/domain/repositories"
)

// Reconcile is the interface for the managed dependency reconciliation command.
type Reconcile interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ReconcileOptions) (*ReconcileResult, error)
}

// ReconcileOptions holds runtime options for a single reconciliation.
type ReconcileOptions struct {
	ProjectDir string
	DryRun     bool
}

// ReconcileResult summarizes what a reconciliation found and did.
type ReconcileResult struct {
	Path       string
	Mismatches []entities.TomlReplacement // every active mismatch, sorted by package then section
	Unmatched  []entities.TomlReplacement // mismatches whose declaration line was not found
	Preview    string                     // unified diff, dry runs only
	Written    bool
}

// ReconcileCommand detects declarations that drift from the managed
// dependency definitions and either fails the build or rewrites them.
type ReconcileCommand struct {
	pyprojectRepository repositories.PyprojectRepository
	worktreeRepository  repositories.WorktreeRepository
}

// NewReconcileCommand creates a new ReconcileCommand.
func NewReconcileCommand(
	pyprojectRepository repositories.PyprojectRepository,
	worktreeRepository repositories.WorktreeRepository,
) *ReconcileCommand {
	return &ReconcileCommand{
		pyprojectRepository: pyprojectRepository,
		worktreeRepository:  worktreeRepository,
	}
}

// Execute reconciles the project's pyproject.toml against the settings.
func (it *ReconcileCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts ReconcileOptions,
) (*ReconcileResult, error) {
	path := settings.PyprojectPath(opts.ProjectDir)
	result := &ReconcileResult{Path: path}

	if len(settings.ManagedDependencies) == 0 {
		logger.Info("[reconcile] No managed dependencies configured, nothing to do")
		return result, nil
	}

	doc, err := it.pyprojectRepository.Load(path)
	if err != nil {
		return nil, err
	}

	reconciler := entities.NewManagedDependencyReconciler(settings.OverridePackageVersion)
	replacements := reconciler.Reconcile(doc, settings.ManagedDependencies, entities.DependencySections(doc))
	result.Mismatches = replacements.Sorted()

	if replacements.Len() == 0 {
		logger.Infof("[reconcile] All managed dependencies in %s are up to date", path)
		return result, nil
	}

	if settings.FailOnManagedDependenciesMismatches || !settings.UpdateManagedDependenciesWhenFound {
		for _, mismatch := range result.Mismatches {
			logger.Warnf("Package %s is not up to date with common project package definition guidance! "+
				"Currently %s, but should be %s!",
				mismatch.PackageName, mismatch.OriginalOperatorAndVersion, mismatch.UpdatedOperatorAndVersion)
		}
	}

	if settings.FailOnManagedDependenciesMismatches {
		if settings.UpdateManagedDependenciesWhenFound {
			logger.Warn("update_managed_dependencies_when_found=true will never be processed " +
				"when fail_on_managed_dependencies_mismatches also equals true!")
		}
		return result, entities.NewHabushuError(
			fmt.Sprintf("found %d managed dependency mismatch(es) - please fix before proceeding! "+
				"(see 'Package abc is not up to date with common project package definition guidance!' log messages above)",
				replacements.Len()),
			entities.ErrManagedDependencyMismatch,
		)
	}

	if !settings.UpdateManagedDependenciesWhenFound {
		return result, nil
	}

	rewrite := entities.RewriteSections(doc.Lines, replacements)
	result.Unmatched = rewrite.Unmatched
	for _, unmatched := range rewrite.Unmatched {
		logger.Warnf("[reconcile] Could not find `%s = %s` in %s, leaving it unchanged",
			unmatched.PackageName, entities.EscapeRightHandSide(unmatched.OriginalOperatorAndVersion), path)
	}

	if !rewrite.Changed() {
		return result, nil
	}

	if opts.DryRun {
		result.Preview = buildPreview(path, doc.Lines, rewrite.Lines)
		logger.Infof("[reconcile] Dry run: %d declaration(s) would be updated in %s", len(rewrite.Applied), path)
		return result, nil
	}

	if writeErr := it.pyprojectRepository.WriteLines(path, rewrite.Lines); writeErr != nil {
		return nil, writeErr
	}
	result.Written = true
	logger.Infof("[reconcile] Updated %d managed dependency declaration(s) in %s", len(rewrite.Applied), path)
	reportWorktreeStatus(it.worktreeRepository, path)

	return result, nil
}
