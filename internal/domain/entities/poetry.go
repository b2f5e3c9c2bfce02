package entities

const (
	// SectionDependencies is the default Poetry dependency group.
	SectionDependencies = "tool.poetry.dependencies"
	// SectionDevDependencies is the legacy Poetry development dependency table.
	SectionDevDependencies = "tool.poetry.dev-dependencies"
	// SectionMonorepoGroup is the group table holding settings such as optional.
	SectionMonorepoGroup = "tool.poetry.group.monorepo"
	// SectionMonorepoDependencies holds path-based dependencies between sibling modules.
	SectionMonorepoDependencies = "tool.poetry.group.monorepo.dependencies"
	// SectionPackageSources is the array of tables declaring package indexes.
	SectionPackageSources = "tool.poetry.source"
	// SectionPoetry is the table holding the package metadata (name, version).
	SectionPoetry = "tool.poetry"
	// SectionBuildSystem is the PEP 518 build-system table.
	SectionBuildSystem = "build-system"

	// GroupSectionPrefix starts every custom dependency group header.
	GroupSectionPrefix = "[tool.poetry.group"

	// PoetryCorePackage is the build backend pinned in build-system.requires.
	PoetryCorePackage = "poetry-core"
	// RequiresKey lists build requirements inside build-system.
	RequiresKey = "requires"

	// PoetryCoreVersionRequirement is the minimum poetry-core build backend.
	PoetryCoreVersionRequirement = "^1.6.0"
)

// DefaultDependencySections returns the standard dependency tables that are
// always inspected, before any custom group discovered in the file.
func DefaultDependencySections() []string {
	return []string{SectionDependencies, SectionDevDependencies}
}
