package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/technologybrewery/habushu/internal/domain/repositories"
	gitRepo "github.com/technologybrewery/habushu/internal/infrastructure/repositories/git"
	"github.com/technologybrewery/habushu/internal/infrastructure/repositories/migrations"
	"github.com/technologybrewery/habushu/internal/infrastructure/repositories/pyproject"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(pyproject.NewFileRepository); err != nil {
		return err
	}
	if err := container.Provide(gitRepo.NewWorktreeRepository); err != nil {
		return err
	}

	// Register migration registry with all migrations, in execution order
	if err := container.Provide(func(pyprojectRepo domainRepos.PyprojectRepository) *MigrationRegistry {
		reg := NewMigrationRegistry()
		reg.Register(migrations.NewRemoveMonorepoGroupMigration(pyprojectRepo))
		reg.Register(migrations.NewMonorepoGroupMigration(pyprojectRepo))
		reg.Register(migrations.NewPoetrycoreVersionMigration(pyprojectRepo))
		return reg
	}); err != nil {
		return err
	}

	return nil
}
