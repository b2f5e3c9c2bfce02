package migrations

import (
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/technologybrewery/habushu/internal/domain/entities"
	"github.com/technologybrewery/habushu/internal/domain/repositories"
)

// applyFunc computes the migrated lines of a document.
type applyFunc func(doc *entities.PyprojectDocument) ([]string, bool)

// shouldExecute loads the file and runs a detection function on it.
func shouldExecute(
	repo repositories.PyprojectRepository,
	path string,
	detect func(doc *entities.PyprojectDocument) bool,
) (bool, error) {
	doc, err := repo.Load(path)
	if err != nil {
		return false, err
	}
	return detect(doc), nil
}

// perform runs the full read, migrate, write cycle for a single file. The
// file is only written when the migration actually changed a line.
func perform(repo repositories.PyprojectRepository, name, path string, apply applyFunc) (bool, error) {
	doc, err := repo.Load(path)
	if err != nil {
		return false, err
	}

	lines, changed := apply(doc)
	if !changed {
		logger.Infof("[migration:%s] Nothing to migrate in %s", name, path)
		return false, nil
	}

	if writeErr := repo.WriteLines(path, lines); writeErr != nil {
		return false, writeErr
	}
	logger.Infof("[migration:%s] Migrated %s", name, path)
	return true, nil
}

// redeclare renders dep for its new location, warning about table keys the
// canonical rendering cannot carry over.
func redeclare(name string, dep entities.Dependency) string {
	if dropped := dep.UnrenderedKeys(); len(dropped) > 0 {
		logger.Warnf("[migration:%s] Moving %s drops its %s setting(s), re-add them by hand if needed",
			name, dep.Name, strings.Join(dropped, ", "))
	}
	return dep.Declaration()
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// keyIn reports whether the line declares one of names.
func keyIn(line string, names map[string]bool) (string, bool) {
	key, ok := entities.ExtractKey(line)
	if !ok {
		return "", false
	}
	return key, names[key]
}
