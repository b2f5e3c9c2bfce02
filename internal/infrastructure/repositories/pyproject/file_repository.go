package pyproject

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	logger "github.com/sirupsen/logrus"

	"github.com/technologybrewery/habushu/internal/domain/entities"
	"github.com/technologybrewery/habushu/internal/domain/repositories"
)

const defaultFileMode = 0o644

// FileRepository implements repositories.PyprojectRepository on the local
// filesystem. go-toml decodes the file for inspection only; content is
// always written back from lines so comments and formatting survive.
type FileRepository struct{}

// NewFileRepository creates a new pyproject file repository.
func NewFileRepository() repositories.PyprojectRepository {
	return &FileRepository{}
}

// Load reads and decodes a pyproject.toml file.
func (r *FileRepository) Load(path string) (*entities.PyprojectDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, entities.NewHabushuError(fmt.Sprintf("problem reading %s", path), err)
	}

	tree := map[string]any{}
	if decodeErr := toml.Unmarshal(data, &tree); decodeErr != nil {
		var derr *toml.DecodeError
		if errors.As(decodeErr, &derr) {
			row, col := derr.Position()
			logger.Debugf("Malformed TOML in %s at %d:%d\n%s", path, row, col, derr.String())
		}
		return nil, entities.NewHabushuError(fmt.Sprintf("problem parsing %s", path), decodeErr)
	}

	return entities.NewPyprojectDocument(path, tree, string(data)), nil
}

// WriteLines writes the joined lines to a temporary file next to path and
// renames it over the original, keeping the original permissions.
func (r *FileRepository) WriteLines(path string, lines []string) error {
	if err := writeFileAtomic(path, []byte(entities.JoinLines(lines))); err != nil {
		return entities.NewHabushuError(fmt.Sprintf("problem writing %s", path), err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	mode := os.FileMode(defaultFileMode)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmpName)
	}()

	if _, writeErr := tmp.Write(data); writeErr != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", writeErr)
	}
	if syncErr := tmp.Sync(); syncErr != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", syncErr)
	}
	if closeErr := tmp.Close(); closeErr != nil {
		return fmt.Errorf("failed to close temp file: %w", closeErr)
	}
	if chmodErr := os.Chmod(tmpName, mode); chmodErr != nil {
		return fmt.Errorf("failed to set file mode: %w", chmodErr)
	}

	if renameErr := os.Rename(tmpName, path); renameErr != nil {
		return fmt.Errorf("failed to replace %s: %w", path, renameErr)
	}
	return nil
}
