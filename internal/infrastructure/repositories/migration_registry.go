package repositories

import (
	"fmt"

	domainRepos "github.com/technologybrewery/habushu/internal/domain/repositories"
)

// MigrationRegistry manages all registered pyproject migrations. Migrations
// are returned in registration order, which is also the order they run in.
type MigrationRegistry struct {
	migrations map[string]domainRepos.MigrationRepository
	order      []string
}

// NewMigrationRegistry creates an empty migration registry.
func NewMigrationRegistry() *MigrationRegistry {
	return &MigrationRegistry{
		migrations: make(map[string]domainRepos.MigrationRepository),
	}
}

// Register adds a migration under its name, replacing any previous one.
func (r *MigrationRegistry) Register(m domainRepos.MigrationRepository) {
	if _, exists := r.migrations[m.Name()]; !exists {
		r.order = append(r.order, m.Name())
	}
	r.migrations[m.Name()] = m
}

// Get returns the migration with the given name.
func (r *MigrationRegistry) Get(name string) (domainRepos.MigrationRepository, error) {
	m, ok := r.migrations[name]
	if !ok {
		return nil, fmt.Errorf("unknown migration: %q", name)
	}
	return m, nil
}

// All returns every registered migration.
func (r *MigrationRegistry) All() []domainRepos.MigrationRepository {
	result := make([]domainRepos.MigrationRepository, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.migrations[name])
	}
	return result
}

// Names returns the list of registered migration names.
func (r *MigrationRegistry) Names() []string {
	return append([]string(nil), r.order...)
}
