//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"maps"
	"slices"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/technologybrewery/habushu/internal/domain/entities"
)

// SettingsBuilder helps create Settings starting from the production defaults.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	settings *entities.Settings
}

// NewSettingsBuilder creates a new builder seeded with entities.NewDefaultSettings.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		settings:    entities.NewDefaultSettings(),
	}
}

// WithManagedDependency appends a managed dependency definition.
func (b *SettingsBuilder) WithManagedDependency(dep entities.ManagedDependency) *SettingsBuilder {
	b.settings.ManagedDependencies = append(b.settings.ManagedDependencies, dep)
	return b
}

// WithFailOnMismatch sets fail_on_managed_dependencies_mismatches.
func (b *SettingsBuilder) WithFailOnMismatch(fail bool) *SettingsBuilder {
	b.settings.FailOnManagedDependenciesMismatches = fail
	return b
}

// WithUpdateWhenFound sets update_managed_dependencies_when_found.
func (b *SettingsBuilder) WithUpdateWhenFound(update bool) *SettingsBuilder {
	b.settings.UpdateManagedDependenciesWhenFound = update
	return b
}

// WithOverridePackageVersion sets override_package_version.
func (b *SettingsBuilder) WithOverridePackageVersion(override bool) *SettingsBuilder {
	b.settings.OverridePackageVersion = override
	return b
}

// WithPyPIRepoURL sets the private PyPI repository URL.
func (b *SettingsBuilder) WithPyPIRepoURL(url string) *SettingsBuilder {
	b.settings.PyPI.RepoURL = url
	return b
}

// WithMigration toggles a migration by name.
func (b *SettingsBuilder) WithMigration(name string, enabled bool) *SettingsBuilder {
	if b.settings.Migrations == nil {
		b.settings.Migrations = map[string]entities.MigrationSettings{}
	}
	b.settings.Migrations[name] = entities.MigrationSettings{Enabled: enabled}
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return copySettings(b.settings)
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.settings = entities.NewDefaultSettings()
	return b
}

// Clone creates a copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		settings:    copySettings(b.settings),
	}
}

func copySettings(settings *entities.Settings) *entities.Settings {
	built := *settings
	built.ManagedDependencies = slices.Clone(settings.ManagedDependencies)
	built.Migrations = maps.Clone(settings.Migrations)
	return &built
}
