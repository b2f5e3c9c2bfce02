//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/technologybrewery/habushu/internal/domain/entities"
)

// ManagedDependencyBuilder helps create managed dependency definitions with a fluent interface.
type ManagedDependencyBuilder struct {
	*testkit.BaseBuilder
	packageName        string
	operatorAndVersion string
	active             bool
}

// NewManagedDependencyBuilder creates a new builder with sensible defaults.
func NewManagedDependencyBuilder() *ManagedDependencyBuilder {
	return &ManagedDependencyBuilder{
		BaseBuilder:        testkit.NewBaseBuilder(),
		packageName:        "black",
		operatorAndVersion: "^23.3.0",
		active:             true,
	}
}

// WithPackageName sets the package name.
func (b *ManagedDependencyBuilder) WithPackageName(name string) *ManagedDependencyBuilder {
	b.packageName = name
	return b
}

// WithOperatorAndVersion sets the managed constraint.
func (b *ManagedDependencyBuilder) WithOperatorAndVersion(version string) *ManagedDependencyBuilder {
	b.operatorAndVersion = version
	return b
}

// Inactive marks the definition as report-only.
func (b *ManagedDependencyBuilder) Inactive() *ManagedDependencyBuilder {
	b.active = false
	return b
}

// Build creates the definition (satisfies testkit.Builder interface).
func (b *ManagedDependencyBuilder) Build() interface{} {
	return b.BuildManagedDependency()
}

// BuildManagedDependency creates the definition with a concrete return type.
func (b *ManagedDependencyBuilder) BuildManagedDependency() entities.ManagedDependency {
	return entities.ManagedDependency{
		PackageName:        b.packageName,
		OperatorAndVersion: b.operatorAndVersion,
		Active:             b.active,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ManagedDependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.packageName = "black"
	b.operatorAndVersion = "^23.3.0"
	b.active = true
	return b
}

// Clone creates a deep copy of the ManagedDependencyBuilder.
func (b *ManagedDependencyBuilder) Clone() testkit.Builder {
	return &ManagedDependencyBuilder{
		BaseBuilder:        b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		packageName:        b.packageName,
		operatorAndVersion: b.operatorAndVersion,
		active:             b.active,
	}
}
