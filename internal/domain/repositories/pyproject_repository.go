package repositories

import (
	"github.com/technologybrewery/habushu/internal/domain/entities"
)

// PyprojectRepository reads and writes pyproject.toml files. Reads decode the
// structure for inspection only; writes replace the whole file with lines that
// were already assembled in memory.
type PyprojectRepository interface {
	// Load decodes the file into a structural view that also carries the raw
	// lines. Malformed TOML or an unreadable file is a *entities.HabushuError.
	Load(path string) (*entities.PyprojectDocument, error)

	// WriteLines replaces the file content atomically.
	WriteLines(path string, lines []string) error
}
