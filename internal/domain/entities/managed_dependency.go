package entities

import "gopkg.in/yaml.v3"

// ManagedDependency is an organization-wide pin: PackageName should be
// declared with OperatorAndVersion. Inactive definitions are reported but
// never enforced.
type ManagedDependency struct {
	PackageName        string `yaml:"package_name"`
	OperatorAndVersion string `yaml:"operator_and_version"`
	Active             bool   `yaml:"active"`
}

// UnmarshalYAML decodes a definition, defaulting Active to true when the key
// is omitted.
func (d *ManagedDependency) UnmarshalYAML(value *yaml.Node) error {
	type plain ManagedDependency
	decoded := plain{Active: true}
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	*d = ManagedDependency(decoded)
	return nil
}
