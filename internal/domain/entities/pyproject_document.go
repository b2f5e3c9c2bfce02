package entities

import (
	"sort"
	"strings"
)

// PyprojectDocument is a transient structural view of a pyproject.toml file:
// the decoded tree used for inspection plus the raw lines it was decoded
// from, which are the only source of key order.
type PyprojectDocument struct {
	Path  string
	Tree  map[string]any
	Lines []string
}

// NewPyprojectDocument builds a document from a decoded tree and raw content.
func NewPyprojectDocument(path string, tree map[string]any, content string) *PyprojectDocument {
	if tree == nil {
		tree = map[string]any{}
	}
	return &PyprojectDocument{Path: path, Tree: tree, Lines: SplitLines(content)}
}

// Section looks up a dotted table path. A missing path, or one that resolves
// to something other than a table, is reported as absent; a declared but
// empty table is present with no keys.
func (d *PyprojectDocument) Section(dottedPath string) (map[string]any, bool) {
	var current any = d.Tree
	for _, part := range strings.Split(dottedPath, ".") {
		table, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = table[part]
		if !ok {
			return nil, false
		}
	}

	table, ok := current.(map[string]any)
	return table, ok
}

// HasSection reports whether the dotted table path exists.
func (d *PyprojectDocument) HasSection(dottedPath string) bool {
	_, ok := d.Section(dottedPath)
	return ok
}

// SectionKeys returns the keys of a section in file order. Keys the line scan
// cannot place (dotted or indented declarations) follow in sorted order.
func (d *PyprojectDocument) SectionKeys(dottedPath string) []string {
	section, ok := d.Section(dottedPath)
	if !ok {
		return nil
	}

	ordered := make([]string, 0, len(section))
	seen := make(map[string]bool, len(section))
	for _, key := range SectionKeyOrder(d.Lines, dottedPath) {
		if _, exists := section[key]; exists && !seen[key] {
			ordered = append(ordered, key)
			seen[key] = true
		}
	}

	var remaining []string
	for key := range section {
		if !seen[key] {
			remaining = append(remaining, key)
		}
	}
	sort.Strings(remaining)

	return append(ordered, remaining...)
}

// TableArray returns the elements of an array of tables such as
// [[tool.poetry.source]]. Anything that is not a table is skipped.
func (d *PyprojectDocument) TableArray(dottedPath string) []map[string]any {
	idx := strings.LastIndex(dottedPath, ".")
	parent, leaf := d.Tree, dottedPath
	if idx >= 0 {
		table, ok := d.Section(dottedPath[:idx])
		if !ok {
			return nil
		}
		parent, leaf = table, dottedPath[idx+1:]
	}

	switch items := parent[leaf].(type) {
	case []map[string]any:
		return items
	case []any:
		result := make([]map[string]any, 0, len(items))
		for _, item := range items {
			if table, ok := item.(map[string]any); ok {
				result = append(result, table)
			}
		}
		return result
	default:
		return nil
	}
}
