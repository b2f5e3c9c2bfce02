package migrations

import (
	logger "github.com/sirupsen/logrus"

	"github.com/technologybrewery/habushu/internal/domain/entities"
	"github.com/technologybrewery/habushu/internal/domain/repositories"
)

// RemoveMonorepoGroupMigration folds [tool.poetry.group.monorepo.dependencies]
// back into [tool.poetry.dependencies]. It is the inverse of
// MonorepoGroupMigration.
type RemoveMonorepoGroupMigration struct {
	repo repositories.PyprojectRepository
}

var _ repositories.MigrationRepository = (*RemoveMonorepoGroupMigration)(nil)

// NewRemoveMonorepoGroupMigration creates the migration.
func NewRemoveMonorepoGroupMigration(repo repositories.PyprojectRepository) *RemoveMonorepoGroupMigration {
	return &RemoveMonorepoGroupMigration{repo: repo}
}

func (m *RemoveMonorepoGroupMigration) Name() string { return entities.MigrationRemoveMonorepoGroup }

func (m *RemoveMonorepoGroupMigration) Description() string {
	return "Move [" + entities.SectionMonorepoDependencies + "] entries back into [" +
		entities.SectionDependencies + "] and drop the group"
}

// ShouldExecuteOnFile is true whenever the monorepo group exists, even empty.
func (m *RemoveMonorepoGroupMigration) ShouldExecuteOnFile(path string) (bool, error) {
	return shouldExecute(m.repo, path, func(doc *entities.PyprojectDocument) bool {
		return doc.HasSection(entities.SectionMonorepoDependencies)
	})
}

// PerformMigration rewrites the file without the monorepo group.
func (m *RemoveMonorepoGroupMigration) PerformMigration(path string) (bool, error) {
	return perform(m.repo, m.Name(), path, m.Apply)
}

// Apply removes the monorepo group header and every non-comment line below
// it, then declares its entries right after the default group header. When
// the default group has no header, the monorepo header is replaced by one.
// A bare [tool.poetry.group.monorepo] table is removed the same way.
func (m *RemoveMonorepoGroupMigration) Apply(doc *entities.PyprojectDocument) ([]string, bool) {
	lines := doc.Lines
	groupStart, groupEnd := entities.FindSection(lines, entities.SectionMonorepoDependencies)
	if groupStart < 0 {
		return lines, false
	}

	existing, _ := doc.Section(entities.SectionDependencies)
	var injected []string
	for _, dep := range entities.DependenciesOf(doc, entities.SectionMonorepoDependencies) {
		logger.Infof("[migration:%s] Found local dependency within monorepo group! (%s)", m.Name(), dep.Declaration())
		if _, duplicate := existing[dep.Name]; duplicate {
			logger.Warnf("[migration:%s] %s is already declared in [%s], dropping the monorepo entry",
				m.Name(), dep.Name, entities.SectionDependencies)
			continue
		}
		injected = append(injected, redeclare(m.Name(), dep))
	}

	defStart, _ := entities.FindSection(lines, entities.SectionDependencies)
	tableStart, tableEnd := entities.FindSection(lines, entities.SectionMonorepoGroup)
	if tableStart >= 0 {
		logger.Infof("[migration:%s] Removing the [%s] table along with its dependencies",
			m.Name(), entities.SectionMonorepoGroup)
	}

	result := make([]string, 0, len(lines)+len(injected)+1)
	for i, line := range lines {
		if i == groupStart {
			if defStart < 0 {
				result = append(result, entities.HeaderLine(entities.SectionDependencies))
				result = append(result, injected...)
			}
			continue
		}
		if i == tableStart {
			continue
		}
		if tableStart >= 0 && i > tableStart && i < tableEnd && !isComment(line) {
			if i == len(lines)-1 && isBlank(line) && len(result) > 0 && !isBlank(result[len(result)-1]) {
				result = append(result, line)
			}
			continue
		}
		if i > groupStart && i < groupEnd && !isComment(line) {
			if defStart < 0 && isBlank(line) {
				// the replacement header still needs its separators
				result = append(result, line)
				continue
			}
			if i == len(lines)-1 && isBlank(line) && len(result) > 0 && !isBlank(result[len(result)-1]) {
				// keep the final newline of the file
				result = append(result, line)
			}
			continue
		}
		result = append(result, line)
		if i == defStart {
			result = append(result, injected...)
		}
	}

	return result, true
}
