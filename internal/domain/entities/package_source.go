package entities

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	// PublicPyPIRepoID identifies the public index; it never names a source.
	PublicPyPIRepoID = "pypi"
	// DefaultPackageSourceName is used when no private repository id is set.
	DefaultPackageSourceName = "private-pypi-repo"
	// DefaultSimpleSuffix is the PEP 503 simple index path segment.
	DefaultSimpleSuffix = "simple"

	packageSourceURLKey = "url"
)

// SimpleIndexURL derives the PEP 503 simple index URL of a PyPI repository:
// the suffix is appended as a path segment unless it already is the last one,
// and the result always ends with "/".
func SimpleIndexURL(repoURL, simpleSuffix string) (string, error) {
	if simpleSuffix == "" {
		simpleSuffix = DefaultSimpleSuffix
	}

	parsed, err := url.Parse(strings.TrimSuffix(repoURL, "/"))
	if err != nil {
		return "", fmt.Errorf("could not parse PyPI repository URL %q: %w", repoURL, err)
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if segments[len(segments)-1] != simpleSuffix {
		parsed = parsed.JoinPath(simpleSuffix)
	}

	result := parsed.String()
	if !strings.HasSuffix(result, "/") {
		result += "/"
	}
	return result, nil
}

// HasPackageSource reports whether any [[tool.poetry.source]] element already
// points at indexURL.
func HasPackageSource(doc *PyprojectDocument, indexURL string) bool {
	for _, source := range doc.TableArray(SectionPackageSources) {
		if value, ok := source[packageSourceURLKey].(string); ok && value == indexURL {
			return true
		}
	}
	return false
}

// PackageSourceName picks the name written for a private package source.
func PackageSourceName(repoID string) string {
	if repoID == "" || repoID == PublicPyPIRepoID {
		return DefaultPackageSourceName
	}
	return repoID
}

// BuildPackageSourceBlock renders the commented [[tool.poetry.source]] block
// appended for a private repository, starting with a blank separator line.
func BuildPackageSourceBlock(indexURL, repoID string, now time.Time) []string {
	return []string{
		"",
		fmt.Sprintf("# Added by habushu at %s to use %s as source PyPi repository for installing dependencies",
			now.Format(time.RFC3339), indexURL),
		"[[" + SectionPackageSources + "]]",
		fmt.Sprintf("name = %q", PackageSourceName(repoID)),
		fmt.Sprintf("url = %q", indexURL),
		"secondary = true",
	}
}

// AppendLines adds block at the end of the file lines, keeping a final
// newline when the original content had one.
func AppendLines(lines []string, block []string) []string {
	result := make([]string, 0, len(lines)+len(block)+1)
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		result = append(result, lines[:len(lines)-1]...)
		result = append(result, block...)
		return append(result, "")
	}
	result = append(result, lines...)
	return append(result, block...)
}
