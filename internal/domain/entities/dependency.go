package entities

// Dependency represents a single `name = rhs` declaration found in a
// dependency group of a pyproject document.
type Dependency struct {
	Name    string // Package name as declared
	Section string // Dotted path of the group holding it
	Value   any    // Decoded right-hand side (string or table)
}

// IsLocalDevelopment reports whether the declaration is a path reference.
func (d Dependency) IsLocalDevelopment() bool {
	return IsLocalDevelopmentVersion(d.Value)
}

// OperatorAndVersion renders the right-hand side in replacement-tuple form.
func (d Dependency) OperatorAndVersion() string {
	return OperatorAndVersion(d.Value)
}

// Declaration renders the full TOML line for the dependency.
func (d Dependency) Declaration() string {
	return d.Name + " = " + ToLiteral(d.Value)
}

// UnrenderedKeys lists the table keys Declaration leaves out.
func (d Dependency) UnrenderedKeys() []string {
	return UnrenderedKeys(d.Value)
}

// DependenciesOf lists the declarations of a section in file order.
// An absent section yields nil.
func DependenciesOf(doc *PyprojectDocument, section string) []Dependency {
	table, ok := doc.Section(section)
	if !ok {
		return nil
	}

	keys := doc.SectionKeys(section)
	result := make([]Dependency, 0, len(keys))
	for _, key := range keys {
		result = append(result, Dependency{Name: key, Section: section, Value: table[key]})
	}
	return result
}
