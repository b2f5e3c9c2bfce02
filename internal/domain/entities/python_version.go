package entities

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const packageVersionKey = "version"

// semver2Pattern matches POM pre-release versions such as 1.2.3-rc.1.
var semver2Pattern = regexp.MustCompile(`(?i)^\d+\.\d+\.\d+-(rc|alpha|beta)\.\d+$`)

// PythonPackageVersion converts a POM version into a PEP 440 package version.
// Pre-releases like 1.2.3-rc.1 become 1.2.3rc1, snapshots like 1.2.3-SNAPSHOT
// become 1.2.3.dev, and release versions are returned as-is. When
// addSnapshotNumber is set a snapshot also gets a numeric suffix: now
// formatted with snapshotNumberLayout, or epoch seconds when the layout is
// empty.
func PythonPackageVersion(pomVersion string, addSnapshotNumber bool, snapshotNumberLayout string, now time.Time) string {
	if match := semver2Pattern.FindStringSubmatch(pomVersion); match != nil {
		qualifier := match[1]
		pomVersion = strings.Replace(pomVersion, "-"+qualifier+".", qualifier, 1)
	}

	if !IsSnapshotVersion(pomVersion) {
		return pomVersion
	}

	version := ReplaceSnapshotWithDev(pomVersion)
	if addSnapshotNumber {
		if snapshotNumberLayout != "" {
			version += now.UTC().Format(snapshotNumberLayout)
		} else {
			version += strconv.FormatInt(now.Unix(), 10)
		}
	}
	return version
}

// IsSnapshotVersion reports whether a POM version ends with -SNAPSHOT.
func IsSnapshotVersion(pomVersion string) bool {
	return strings.HasSuffix(pomVersion, snapshotMarker)
}

// CurrentPackageVersion returns tool.poetry.version, or "" when unset.
func CurrentPackageVersion(doc *PyprojectDocument) string {
	poetry, ok := doc.Section(SectionPoetry)
	if !ok {
		return ""
	}
	version, _ := poetry[packageVersionKey].(string)
	return version
}

// SetPackageVersion rewrites the quoted value of the version key declared
// directly under [tool.poetry]; keys of other tables are never touched. It
// returns the new lines and whether anything changed.
func SetPackageVersion(lines []string, version string) ([]string, bool) {
	result := append([]string(nil), lines...)

	start, end := FindSection(lines, SectionPoetry)
	if start < 0 {
		return result, false
	}

	for i := start + 1; i < end; i++ {
		key, ok := ExtractKey(lines[i])
		if !ok || key != packageVersionKey {
			continue
		}
		rewritten, changed := replaceQuotedValue(lines[i], version)
		result[i] = rewritten
		return result, changed
	}

	return result, false
}

// replaceQuotedValue swaps the first quoted string after the equals sign,
// keeping the quote style and anything around it.
func replaceQuotedValue(line, value string) (string, bool) {
	equalsIdx := strings.Index(line, equalsSign)
	if equalsIdx < 0 {
		return line, false
	}

	rest := line[equalsIdx+1:]
	openIdx := strings.IndexAny(rest, `"'`)
	if openIdx < 0 {
		return line, false
	}
	quote := rest[openIdx : openIdx+1]
	closeIdx := strings.Index(rest[openIdx+1:], quote)
	if closeIdx < 0 {
		return line, false
	}

	current := rest[openIdx+1 : openIdx+1+closeIdx]
	if current == value {
		return line, false
	}

	prefix := line[:equalsIdx+1] + rest[:openIdx+1]
	suffix := rest[openIdx+1+closeIdx:]
	return prefix + value + suffix, true
}
