//go:build unit

package entities_test

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"

	"github.com/technologybrewery/habushu/internal/domain/entities"
)

func newDocument(t *testing.T, content string) *entities.PyprojectDocument {
	t.Helper()

	tree := map[string]any{}
	require.NoError(t, toml.Unmarshal([]byte(content), &tree))
	return entities.NewPyprojectDocument("pyproject.toml", tree, content)
}
