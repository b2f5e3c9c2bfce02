package migrations

import (
	logger "github.com/sirupsen/logrus"

	"github.com/technologybrewery/habushu/internal/domain/entities"
	"github.com/technologybrewery/habushu/internal/domain/repositories"
)

// MonorepoGroupMigration moves local path dependencies out of
// [tool.poetry.dependencies] into [tool.poetry.group.monorepo.dependencies],
// so that packaged artifacts never reference sibling modules by path.
type MonorepoGroupMigration struct {
	repo repositories.PyprojectRepository
}

var _ repositories.MigrationRepository = (*MonorepoGroupMigration)(nil)

// NewMonorepoGroupMigration creates the migration.
func NewMonorepoGroupMigration(repo repositories.PyprojectRepository) *MonorepoGroupMigration {
	return &MonorepoGroupMigration{repo: repo}
}

func (m *MonorepoGroupMigration) Name() string { return entities.MigrationMonorepoGroup }

func (m *MonorepoGroupMigration) Description() string {
	return "Move local path dependencies into the [" + entities.SectionMonorepoDependencies + "] group"
}

// ShouldExecuteOnFile is true when the default group declares at least one
// local development dependency.
func (m *MonorepoGroupMigration) ShouldExecuteOnFile(path string) (bool, error) {
	return shouldExecute(m.repo, path, func(doc *entities.PyprojectDocument) bool {
		return len(planMonorepoGroup(doc).relocations) > 0
	})
}

// PerformMigration rewrites the file with the relocated dependencies.
func (m *MonorepoGroupMigration) PerformMigration(path string) (bool, error) {
	return perform(m.repo, m.Name(), path, m.Apply)
}

// monorepoPlan is the outcome of the detection phase.
type monorepoPlan struct {
	relocations    entities.Replacements
	ordered        []entities.Dependency
	alreadyInGroup map[string]bool
}

func planMonorepoGroup(doc *entities.PyprojectDocument) monorepoPlan {
	plan := monorepoPlan{
		relocations:    entities.Replacements{},
		alreadyInGroup: map[string]bool{},
	}

	for _, dep := range entities.DependenciesOf(doc, entities.SectionDependencies) {
		if !dep.IsLocalDevelopment() {
			continue
		}
		logger.Infof("[migration:%s] Found local dependency not within monorepo group! (%s)",
			entities.MigrationMonorepoGroup, dep.Declaration())
		plan.relocations[dep.Name] = entities.TomlReplacement{
			PackageName:                dep.Name,
			OriginalOperatorAndVersion: dep.OperatorAndVersion(),
		}
		plan.ordered = append(plan.ordered, dep)
	}

	group, _ := doc.Section(entities.SectionMonorepoDependencies)
	for name := range group {
		plan.alreadyInGroup[name] = true
	}

	return plan
}

// Apply drops relocated declarations from the default group and re-declares
// them right after the monorepo group header, creating that header at the
// first blank line after the default group when it does not exist yet.
func (m *MonorepoGroupMigration) Apply(doc *entities.PyprojectDocument) ([]string, bool) {
	plan := planMonorepoGroup(doc)
	lines := doc.Lines
	if len(plan.relocations) == 0 {
		return lines, false
	}

	defStart, defEnd := entities.FindSection(lines, entities.SectionDependencies)
	if defStart < 0 {
		logger.Warnf("[migration:%s] [%s] is not declared with its own header, skipping",
			m.Name(), entities.SectionDependencies)
		return lines, false
	}

	names := make(map[string]bool, len(plan.relocations))
	for name := range plan.relocations {
		names[name] = true
	}

	removed := map[int]bool{}
	removedNames := map[string]bool{}
	for i := defStart + 1; i < defEnd; i++ {
		if key, ok := keyIn(lines[i], names); ok && !removedNames[key] {
			removed[i] = true
			removedNames[key] = true
		}
	}
	if len(removed) == 0 {
		return lines, false
	}

	var injected []string
	for _, dep := range plan.ordered {
		if !removedNames[dep.Name] {
			logger.Warnf("[migration:%s] Could not locate the declaration of %s, leaving it in place", m.Name(), dep.Name)
			continue
		}
		if plan.alreadyInGroup[dep.Name] {
			logger.Warnf("[migration:%s] %s is already declared in the monorepo group, dropping the duplicate",
				m.Name(), dep.Name)
			continue
		}
		injected = append(injected, redeclare(m.Name(), dep))
	}

	groupStart, _ := entities.FindSection(lines, entities.SectionMonorepoDependencies)
	insertAt, trailingBlank := -1, false
	if groupStart < 0 {
		insertAt = defEnd
		for i := defStart + 1; i < defEnd; i++ {
			if isBlank(lines[i]) && !removed[i] {
				insertAt = i
				break
			}
		}
		trailingBlank = insertAt == defEnd && defEnd < len(lines)
	}

	result := make([]string, 0, len(lines)+len(injected)+3)
	for i, line := range lines {
		if i == insertAt {
			result = append(result, newGroupBlock(injected, trailingBlank)...)
		}
		if removed[i] {
			continue
		}
		result = append(result, line)
		if i == groupStart {
			result = append(result, injected...)
		}
	}
	if insertAt == len(lines) {
		result = append(result, newGroupBlock(injected, false)...)
	}

	return result, true
}

func newGroupBlock(entries []string, trailingBlank bool) []string {
	block := []string{"", entities.HeaderLine(entities.SectionMonorepoDependencies)}
	block = append(block, entries...)
	if trailingBlank {
		block = append(block, "")
	}
	return block
}
