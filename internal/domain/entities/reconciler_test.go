//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/technologybrewery/habushu/internal/domain/entities"
	"github.com/technologybrewery/habushu/test/domain/entitybuilders"
)

const blackProject = `[tool.poetry]
name = "demo"
version = "1.0.0"

[tool.poetry.dependencies]
python = "^3.11"
black = "^22.0.0"
foo = {path = "../foo", develop = true}

[build-system]
requires = ["poetry-core>=1.6.0"]
build-backend = "poetry.core.masonry.api"
`

func TestManagedDependencyReconcilerReconcile(t *testing.T) {
	t.Parallel()

	t.Run("should propose a replacement for an active mismatch", func(t *testing.T) {
		t.Parallel()

		// given
		doc := newDocument(t, blackProject)
		black := entitybuilders.NewManagedDependencyBuilder().BuildManagedDependency()
		reconciler := entities.NewManagedDependencyReconciler(true)

		// when
		replacements := reconciler.Reconcile(doc, []entities.ManagedDependency{black}, entities.DependencySections(doc))

		// then
		require.Equal(t, 1, replacements.Len())
		assert.Equal(t, entities.TomlReplacement{
			PackageName:                "black",
			Section:                    entities.SectionDependencies,
			OriginalOperatorAndVersion: "^22.0.0",
			UpdatedOperatorAndVersion:  "^23.3.0",
		}, replacements[entities.SectionDependencies]["black"])
	})

	t.Run("should never propose a replacement for inactive definitions", func(t *testing.T) {
		t.Parallel()

		// given
		doc := newDocument(t, blackProject)
		black := entitybuilders.NewManagedDependencyBuilder().Inactive().BuildManagedDependency()
		reconciler := entities.NewManagedDependencyReconciler(true)

		// when
		replacements := reconciler.Reconcile(doc, []entities.ManagedDependency{black}, entities.DependencySections(doc))

		// then
		assert.Empty(t, replacements)
	})

	t.Run("should never manage local development dependencies", func(t *testing.T) {
		t.Parallel()

		// given
		doc := newDocument(t, blackProject)
		foo := entitybuilders.NewManagedDependencyBuilder().
			WithPackageName("foo").
			WithOperatorAndVersion("^1.0.0").
			BuildManagedDependency()
		reconciler := entities.NewManagedDependencyReconciler(true)

		// when
		replacements := reconciler.Reconcile(doc, []entities.ManagedDependency{foo}, entities.DependencySections(doc))

		// then
		assert.Empty(t, replacements)
	})

	t.Run("should ignore packages and sections that are absent", func(t *testing.T) {
		t.Parallel()

		// given
		doc := newDocument(t, blackProject)
		absent := entitybuilders.NewManagedDependencyBuilder().WithPackageName("absent").BuildManagedDependency()
		reconciler := entities.NewManagedDependencyReconciler(true)

		// when
		replacements := reconciler.Reconcile(doc, []entities.ManagedDependency{absent},
			[]string{entities.SectionDependencies, "tool.poetry.group.missing.dependencies"})

		// then
		assert.Empty(t, replacements)
	})

	t.Run("should report no mismatch when literals render identically", func(t *testing.T) {
		t.Parallel()

		// given
		doc := newDocument(t, `[tool.poetry.dependencies]
uvicorn = {extras = ["standard"], version = "^0.22.0"}
`)
		uvicorn := entitybuilders.NewManagedDependencyBuilder().
			WithPackageName("uvicorn").
			WithOperatorAndVersion(`{version = "^0.22.0", extras = ["standard"]}`).
			BuildManagedDependency()
		reconciler := entities.NewManagedDependencyReconciler(true)

		// when
		replacements := reconciler.Reconcile(doc, []entities.ManagedDependency{uvicorn}, entities.DependencySections(doc))

		// then
		assert.Empty(t, replacements)
	})

	t.Run("should inspect custom dependency groups", func(t *testing.T) {
		t.Parallel()

		// given
		doc := newDocument(t, `[tool.poetry.dependencies]
python = "^3.11"

[tool.poetry.group.lint.dependencies]
black = "^22.0.0"
`)
		black := entitybuilders.NewManagedDependencyBuilder().BuildManagedDependency()
		reconciler := entities.NewManagedDependencyReconciler(true)

		// when
		replacements := reconciler.Reconcile(doc, []entities.ManagedDependency{black}, entities.DependencySections(doc))

		// then
		require.Contains(t, replacements, "tool.poetry.group.lint.dependencies")
		assert.Equal(t, "^22.0.0",
			replacements["tool.poetry.group.lint.dependencies"]["black"].OriginalOperatorAndVersion)
	})

	t.Run("should translate snapshot constraints when overriding package versions", func(t *testing.T) {
		t.Parallel()

		// given
		doc := newDocument(t, `[tool.poetry.dependencies]
sibling = "1.2.0.dev"
`)
		sibling := entitybuilders.NewManagedDependencyBuilder().
			WithPackageName("sibling").
			WithOperatorAndVersion("1.2.0-SNAPSHOT").
			BuildManagedDependency()

		// when
		withOverride := entities.NewManagedDependencyReconciler(true).
			Reconcile(doc, []entities.ManagedDependency{sibling}, entities.DependencySections(doc))
		withoutOverride := entities.NewManagedDependencyReconciler(false).
			Reconcile(doc, []entities.ManagedDependency{sibling}, entities.DependencySections(doc))

		// then
		assert.Empty(t, withOverride)
		require.Contains(t, withoutOverride[entities.SectionDependencies], "sibling")
		assert.Equal(t, "1.2.0-SNAPSHOT",
			withoutOverride[entities.SectionDependencies]["sibling"].UpdatedOperatorAndVersion)
	})

	t.Run("should inspect custom groups whose header carries a comment", func(t *testing.T) {
		t.Parallel()

		// given
		doc := newDocument(t, `[tool.poetry.group.lint.dependencies] # linters
black = "^22.0.0"
`)
		black := entitybuilders.NewManagedDependencyBuilder().BuildManagedDependency()
		reconciler := entities.NewManagedDependencyReconciler(true)

		// when
		replacements := reconciler.Reconcile(doc, []entities.ManagedDependency{black}, entities.DependencySections(doc))
		rewrite := entities.RewriteSections(doc.Lines, replacements)

		// then
		require.Equal(t, 1, replacements.Len())
		assert.Equal(t, `black = "^23.3.0"`, rewrite.Lines[1])
	})

	t.Run("should keep one replacement per section declaring the package", func(t *testing.T) {
		t.Parallel()

		// given
		doc := newDocument(t, `[tool.poetry.dependencies]
black = "^22.0.0"

[tool.poetry.group.dev.dependencies]
black = "^21.0.0"
`)
		black := entitybuilders.NewManagedDependencyBuilder().BuildManagedDependency()
		reconciler := entities.NewManagedDependencyReconciler(true)

		// when
		replacements := reconciler.Reconcile(doc, []entities.ManagedDependency{black}, entities.DependencySections(doc))

		// then
		require.Equal(t, 2, replacements.Len())
		assert.Equal(t, "^22.0.0", replacements[entities.SectionDependencies]["black"].OriginalOperatorAndVersion)
		assert.Equal(t, "^21.0.0",
			replacements["tool.poetry.group.dev.dependencies"]["black"].OriginalOperatorAndVersion)
	})
}

func TestReconcileAndRewrite(t *testing.T) {
	t.Parallel()

	t.Run("should be idempotent and only touch the mismatched line", func(t *testing.T) {
		t.Parallel()

		// given
		content := `[tool.poetry.dependencies]
python = "^3.11"
black = "^22.0.0"
# a comment that stays
requests = "^2.31.0"
`
		doc := newDocument(t, content)
		black := entitybuilders.NewManagedDependencyBuilder().BuildManagedDependency()
		reconciler := entities.NewManagedDependencyReconciler(true)

		// when
		first := entities.RewriteSections(doc.Lines,
			reconciler.Reconcile(doc, []entities.ManagedDependency{black}, entities.DependencySections(doc)))
		rewritten := newDocument(t, entities.JoinLines(first.Lines))
		second := reconciler.Reconcile(rewritten, []entities.ManagedDependency{black}, entities.DependencySections(rewritten))

		// then
		assert.Equal(t, `[tool.poetry.dependencies]
python = "^3.11"
black = "^23.3.0"
# a comment that stays
requests = "^2.31.0"
`, entities.JoinLines(first.Lines))
		assert.Empty(t, second)
	})

	t.Run("should leave the file byte-identical for inactive definitions", func(t *testing.T) {
		t.Parallel()

		// given
		content := "[tool.poetry.dependencies]\nblack = \"^22.0.0\"\n"
		doc := newDocument(t, content)
		black := entitybuilders.NewManagedDependencyBuilder().Inactive().BuildManagedDependency()
		reconciler := entities.NewManagedDependencyReconciler(true)

		// when
		result := entities.RewriteSections(doc.Lines,
			reconciler.Reconcile(doc, []entities.ManagedDependency{black}, entities.DependencySections(doc)))

		// then
		assert.Equal(t, content, entities.JoinLines(result.Lines))
	})

	t.Run("should converge when a package is declared in several sections", func(t *testing.T) {
		t.Parallel()

		// given
		content := `[tool.poetry.dependencies]
black = "^22.0.0"

[tool.poetry.group.dev.dependencies]
black = "^21.0.0"

[tool.poetry.group.lint.dependencies]
black = "^22.0.0"
`
		doc := newDocument(t, content)
		black := entitybuilders.NewManagedDependencyBuilder().BuildManagedDependency()
		reconciler := entities.NewManagedDependencyReconciler(true)

		// when
		first := entities.RewriteSections(doc.Lines,
			reconciler.Reconcile(doc, []entities.ManagedDependency{black}, entities.DependencySections(doc)))
		rewritten := newDocument(t, entities.JoinLines(first.Lines))
		second := reconciler.Reconcile(rewritten, []entities.ManagedDependency{black}, entities.DependencySections(rewritten))

		// then
		assert.Equal(t, `[tool.poetry.dependencies]
black = "^23.3.0"

[tool.poetry.group.dev.dependencies]
black = "^23.3.0"

[tool.poetry.group.lint.dependencies]
black = "^23.3.0"
`, entities.JoinLines(first.Lines))
		assert.Len(t, first.Applied, 3)
		assert.Empty(t, first.Unmatched)
		assert.Zero(t, second.Len())
	})
}

func TestReplaceSnapshotWithDev(t *testing.T) {
	t.Parallel()

	t.Run("should replace the marker and drop what follows", func(t *testing.T) {
		t.Parallel()

		// given, when, then
		assert.Equal(t, "^1.2.0.dev", entities.ReplaceSnapshotWithDev("^1.2.0-SNAPSHOT"))
		assert.Equal(t, "1.2.0.dev", entities.ReplaceSnapshotWithDev("1.2.0-SNAPSHOT-extra"))
		assert.Equal(t, "^1.2.0", entities.ReplaceSnapshotWithDev("^1.2.0"))
	})
}
