package entities

import "sort"

// TomlReplacement describes one pending change to a `key = value` declaration.
// Both operator fields hold RHS text in operator-and-version form: plain
// constraints unquoted, structured tables in canonical inline form. An empty
// UpdatedOperatorAndVersion means "remove from the source location".
type TomlReplacement struct {
	PackageName                string
	Section                    string // Dotted path of the group the declaration was found in
	OriginalOperatorAndVersion string
	UpdatedOperatorAndVersion  string
}

// Replacements maps package names to the replacement computed for them during
// a single reconciliation or migration pass.
type Replacements map[string]TomlReplacement

// Sorted returns the replacements ordered by package name.
func (r Replacements) Sorted() []TomlReplacement {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]TomlReplacement, 0, len(names))
	for _, name := range names {
		result = append(result, r[name])
	}
	return result
}

// SectionReplacements groups replacements by the dependency section holding
// the declaration, so that a package declared in several groups gets one
// replacement per group.
type SectionReplacements map[string]Replacements

// Add records replacement under its section.
func (s SectionReplacements) Add(replacement TomlReplacement) {
	if s[replacement.Section] == nil {
		s[replacement.Section] = Replacements{}
	}
	s[replacement.Section][replacement.PackageName] = replacement
}

// Len counts the replacements across every section.
func (s SectionReplacements) Len() int {
	count := 0
	for _, replacements := range s {
		count += len(replacements)
	}
	return count
}

// Sorted returns every replacement ordered by package name, then section.
func (s SectionReplacements) Sorted() []TomlReplacement {
	result := make([]TomlReplacement, 0, s.Len())
	for _, replacements := range s {
		result = append(result, replacements.Sorted()...)
	}
	sortReplacements(result)
	return result
}
