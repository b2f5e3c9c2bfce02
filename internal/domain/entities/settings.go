package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPyprojectFile is the Poetry project descriptor name.
	DefaultPyprojectFile = "pyproject.toml"

	// MigrationMonorepoGroup moves local path dependencies into the monorepo group.
	MigrationMonorepoGroup = "monorepo-group"
	// MigrationRemoveMonorepoGroup folds the monorepo group back into the default group.
	MigrationRemoveMonorepoGroup = "remove-monorepo-group"
	// MigrationPoetrycoreVersion raises the poetry-core build requirement.
	MigrationPoetrycoreVersion = "poetrycore-version"
)

// ErrConfigNotFound is returned by FindConfigFile when no settings file exists.
var ErrConfigNotFound = errors.New("config file not found in default locations")

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Settings is the habushu configuration, read from habushu.yaml.
type Settings struct {
	PyprojectFile                       string                       `yaml:"pyproject_file"`
	ManagedDependencies                 []ManagedDependency          `yaml:"managed_dependencies"`
	UpdateManagedDependenciesWhenFound  bool                         `yaml:"update_managed_dependencies_when_found"`
	FailOnManagedDependenciesMismatches bool                         `yaml:"fail_on_managed_dependencies_mismatches"`
	OverridePackageVersion              bool                         `yaml:"override_package_version"`
	PyPI                                PyPISettings                 `yaml:"pypi"`
	Migrations                          map[string]MigrationSettings `yaml:"migrations"`
}

// PyPISettings describes the private package index used as a secondary source.
type PyPISettings struct {
	RepoURL            string `yaml:"repo_url"`
	RepoID             string `yaml:"repo_id"`
	SimpleSuffix       string `yaml:"simple_suffix"`
	AddAsPackageSource bool   `yaml:"add_as_package_source"`
}

// MigrationSettings toggles a single migration.
type MigrationSettings struct {
	Enabled bool `yaml:"enabled"`
}

// NewDefaultSettings returns the settings used when no file is present.
func NewDefaultSettings() *Settings {
	return &Settings{
		PyprojectFile:                      DefaultPyprojectFile,
		UpdateManagedDependenciesWhenFound: true,
		OverridePackageVersion:             true,
		PyPI: PyPISettings{
			RepoID:             PublicPyPIRepoID,
			SimpleSuffix:       DefaultSimpleSuffix,
			AddAsPackageSource: true,
		},
		Migrations: map[string]MigrationSettings{},
	}
}

// NewSettings reads and validates a settings file. Keys that are omitted keep
// their default values.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewHabushuError(fmt.Sprintf("failed to read config file %q", path), err)
	}

	settings := NewDefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, NewHabushuError("failed to parse config file", unmarshalErr)
	}
	if settings.Migrations == nil {
		settings.Migrations = map[string]MigrationSettings{}
	}

	settings.PyPI.RepoURL = expandEnv(settings.PyPI.RepoURL)
	settings.PyPI.RepoID = expandEnv(settings.PyPI.RepoID)
	settings.PyprojectFile = expandEnv(settings.PyprojectFile)

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, NewHabushuError("invalid config file", validateErr)
	}

	return settings, nil
}

// LoadSettings reads configPath when given, otherwise the first settings file
// found around projectDir; with no file at all the defaults apply.
func LoadSettings(configPath, projectDir string) (*Settings, error) {
	if configPath == "" {
		found, err := FindConfigFile(projectDir)
		if err != nil {
			logger.Debugf("No habushu config file found, using defaults: %v", err)
			return NewDefaultSettings(), nil
		}
		configPath = found
	}

	logger.Infof("Using config file: %s", configPath)
	return NewSettings(configPath)
}

// FindConfigFile searches for a settings file in the project directory and
// the standard locations relative to it.
func FindConfigFile(projectDir string) (string, error) {
	if projectDir == "" {
		projectDir = "."
	}

	locations := []string{
		projectDir,
		filepath.Join(projectDir, ".config"),
		filepath.Join(projectDir, "configs"),
	}

	patterns := []string{
		".habushu.yaml",
		".habushu.yml",
		"habushu.yaml",
		"habushu.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", ErrConfigNotFound
}

// Validate checks for required values.
func (s *Settings) Validate() error {
	if s.PyprojectFile == "" {
		return errors.New("pyproject_file must not be empty")
	}

	for i, dep := range s.ManagedDependencies {
		if dep.PackageName == "" {
			return fmt.Errorf("managed_dependencies[%d].package_name is required", i)
		}
		if dep.OperatorAndVersion == "" {
			return fmt.Errorf("managed_dependencies[%d].operator_and_version is required", i)
		}
	}

	if s.PyPI.RepoURL != "" && s.PyPI.SimpleSuffix == "" {
		return errors.New("pypi.simple_suffix must not be empty when pypi.repo_url is set")
	}

	return nil
}

// PyprojectPath resolves the pyproject file against the project directory.
func (s *Settings) PyprojectPath(projectDir string) string {
	if filepath.IsAbs(s.PyprojectFile) {
		return s.PyprojectFile
	}
	return filepath.Join(projectDir, s.PyprojectFile)
}

// IsMigrationEnabled reports whether a migration should run. Migrations not
// mentioned in the settings fall back to DefaultMigrationEnabled.
func (s *Settings) IsMigrationEnabled(name string) bool {
	if migration, ok := s.Migrations[name]; ok {
		return migration.Enabled
	}
	return DefaultMigrationEnabled(name)
}

// DefaultMigrationEnabled reports the out-of-the-box state of a migration.
// monorepo-group is opt-in because it undoes remove-monorepo-group.
func DefaultMigrationEnabled(name string) bool {
	switch name {
	case MigrationRemoveMonorepoGroup, MigrationPoetrycoreVersion:
		return true
	default:
		return false
	}
}

// expandEnv replaces ${VAR} references with their environment values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
