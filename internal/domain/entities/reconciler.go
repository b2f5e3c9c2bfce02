package entities

import (
	"strings"

	logger "github.com/sirupsen/logrus"
)

const (
	snapshotMarker = "-SNAPSHOT"
	devSuffix      = ".dev"
)

// ManagedDependencyReconciler compares managed dependency definitions with
// the declarations found in the dependency groups of a pyproject document.
type ManagedDependencyReconciler struct {
	// OverridePackageVersion rewrites a -SNAPSHOT constraint into its .dev
	// development-release form before comparing.
	OverridePackageVersion bool
}

// NewManagedDependencyReconciler creates a reconciler.
func NewManagedDependencyReconciler(overridePackageVersion bool) *ManagedDependencyReconciler {
	return &ManagedDependencyReconciler{OverridePackageVersion: overridePackageVersion}
}

// DependencySections returns every dependency group worth inspecting: the
// default and dev tables first, then each custom group header in file order.
func DependencySections(doc *PyprojectDocument) []string {
	return append(DefaultDependencySections(), FindCustomGroupSections(doc.Lines)...)
}

// Reconcile returns, per section, one replacement for each active definition
// whose declared right-hand side differs textually from the managed
// constraint. Absent sections and packages are ignored; local development
// dependencies are never managed.
func (it *ManagedDependencyReconciler) Reconcile(
	doc *PyprojectDocument,
	definitions []ManagedDependency,
	sectionPaths []string,
) SectionReplacements {
	replacements := SectionReplacements{}

	for _, sectionPath := range sectionPaths {
		section, ok := doc.Section(sectionPath)
		if !ok {
			logger.Debugf("[reconcile] Section %s not present, skipping", sectionPath)
			continue
		}

		for _, definition := range definitions {
			rhs, found := section[definition.PackageName]
			if !found {
				continue
			}

			if IsLocalDevelopmentVersion(rhs) {
				logger.Infof("%s does not have a specific version to manage - skipping", definition.PackageName)
				logger.Debugf("\t %v", rhs)
				continue
			}

			original := OperatorAndVersion(rhs)
			updated := it.desiredOperatorAndVersion(definition)
			if original == updated {
				continue
			}

			if !definition.Active {
				logger.Infof("Package %s is not up to date with common project package definition guidance, "+
					"but the check has been inactivated", definition.PackageName)
				continue
			}

			replacements.Add(TomlReplacement{
				PackageName:                definition.PackageName,
				Section:                    sectionPath,
				OriginalOperatorAndVersion: original,
				UpdatedOperatorAndVersion:  updated,
			})
		}
	}

	return replacements
}

func (it *ManagedDependencyReconciler) desiredOperatorAndVersion(definition ManagedDependency) string {
	if it.OverridePackageVersion && strings.Contains(definition.OperatorAndVersion, snapshotMarker) {
		return ReplaceSnapshotWithDev(definition.OperatorAndVersion)
	}
	return definition.OperatorAndVersion
}

// ReplaceSnapshotWithDev turns "X-SNAPSHOT" into "X.dev", dropping anything
// after the marker. Values without the marker are returned unchanged.
func ReplaceSnapshotWithDev(version string) string {
	idx := strings.Index(version, snapshotMarker)
	if idx < 0 {
		return version
	}
	return version[:idx] + devSuffix
}
