package commands

import (
	"context"
	"slices"

	logger "github.com/sirupsen/logrus"

	"github.com/technologybrewery/habushu/internal/domain/entities"
	"github.com/technologybrewery/habushu/internal/domain/repositories"
	infraRepos "github.com/technologybrewery/habushu/internal/infrastructure/repositories"
)

// Migrate is the interface for the migrate command.
type Migrate interface {
	Execute(ctx context.Context, settings *entities.Settings, opts MigrateOptions) (*MigrateResult, error)
	List() []MigrationInfo
}

// MigrateOptions holds runtime options for a migration run.
type MigrateOptions struct {
	ProjectDir string
	DryRun     bool
	Only       []string // If set, run exactly these migrations regardless of settings
}

// MigrationInfo describes a registered migration.
type MigrationInfo struct {
	Name        string
	Description string
	Enabled     bool
}

// MigrateResult lists what a migration run did.
type MigrateResult struct {
	Path     string
	Migrated []string          // migrations that rewrote the file
	Skipped  []string          // enabled migrations the file did not need
	Previews map[string]string // dry runs only, keyed by migration name
}

// MigrateCommand runs the enabled pyproject migrations in registration order.
type MigrateCommand struct {
	migrationRegistry   *infraRepos.MigrationRegistry
	pyprojectRepository repositories.PyprojectRepository
	worktreeRepository  repositories.WorktreeRepository
}

// NewMigrateCommand creates a new MigrateCommand.
func NewMigrateCommand(
	migrationRegistry *infraRepos.MigrationRegistry,
	pyprojectRepository repositories.PyprojectRepository,
	worktreeRepository repositories.WorktreeRepository,
) *MigrateCommand {
	return &MigrateCommand{
		migrationRegistry:   migrationRegistry,
		pyprojectRepository: pyprojectRepository,
		worktreeRepository:  worktreeRepository,
	}
}

// List describes every registered migration with its default state.
func (it *MigrateCommand) List() []MigrationInfo {
	migrations := it.migrationRegistry.All()
	result := make([]MigrationInfo, 0, len(migrations))
	for _, migration := range migrations {
		result = append(result, MigrationInfo{
			Name:        migration.Name(),
			Description: migration.Description(),
			Enabled:     entities.DefaultMigrationEnabled(migration.Name()),
		})
	}
	return result
}

// Execute runs every selected migration against the project's pyproject.toml.
// In dry-run mode each migration is previewed against the file as it is on
// disk, so previews do not build on each other.
func (it *MigrateCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts MigrateOptions,
) (*MigrateResult, error) {
	path := settings.PyprojectPath(opts.ProjectDir)
	result := &MigrateResult{Path: path, Previews: map[string]string{}}

	selected, err := it.selectMigrations(settings, opts.Only)
	if err != nil {
		return nil, err
	}

	for _, migration := range selected {
		should, checkErr := migration.ShouldExecuteOnFile(path)
		if checkErr != nil {
			return nil, checkErr
		}
		if !should {
			logger.Debugf("[migration:%s] Not needed for %s", migration.Name(), path)
			result.Skipped = append(result.Skipped, migration.Name())
			continue
		}

		if opts.DryRun {
			doc, loadErr := it.pyprojectRepository.Load(path)
			if loadErr != nil {
				return nil, loadErr
			}
			if lines, changed := migration.Apply(doc); changed {
				result.Previews[migration.Name()] = buildPreview(path, doc.Lines, lines)
				result.Migrated = append(result.Migrated, migration.Name())
			}
			continue
		}

		migrated, migrateErr := migration.PerformMigration(path)
		if migrateErr != nil {
			return nil, entities.NewHabushuError("migration "+migration.Name()+" failed", migrateErr)
		}
		if migrated {
			result.Migrated = append(result.Migrated, migration.Name())
		}
	}

	if !opts.DryRun && len(result.Migrated) > 0 {
		reportWorktreeStatus(it.worktreeRepository, path)
	}
	return result, nil
}

func (it *MigrateCommand) selectMigrations(
	settings *entities.Settings,
	only []string,
) ([]repositories.MigrationRepository, error) {
	if len(only) > 0 {
		for _, name := range only {
			if _, err := it.migrationRegistry.Get(name); err != nil {
				return nil, entities.NewHabushuError("invalid --migration value", err)
			}
		}
	}

	var selected []repositories.MigrationRepository
	for _, migration := range it.migrationRegistry.All() {
		if len(only) > 0 {
			if slices.Contains(only, migration.Name()) {
				selected = append(selected, migration)
			}
			continue
		}
		if settings.IsMigrationEnabled(migration.Name()) {
			selected = append(selected, migration)
		}
	}
	return selected, nil
}
