package migrations

import (
	"fmt"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/technologybrewery/habushu/internal/domain/entities"
	"github.com/technologybrewery/habushu/internal/domain/repositories"
)

const constraintOperators = "=<>~^!"

// PoetrycoreVersionMigration raises the poetry-core requirement declared in
// build-system.requires to the minimum major/minor habushu supports.
type PoetrycoreVersionMigration struct {
	repo     repositories.PyprojectRepository
	required string
}

var _ repositories.MigrationRepository = (*PoetrycoreVersionMigration)(nil)

// NewPoetrycoreVersionMigration creates the migration for
// entities.PoetryCoreVersionRequirement.
func NewPoetrycoreVersionMigration(repo repositories.PyprojectRepository) *PoetrycoreVersionMigration {
	return &PoetrycoreVersionMigration{
		repo:     repo,
		required: semverOf(entities.PoetryCoreVersionRequirement),
	}
}

func (m *PoetrycoreVersionMigration) Name() string { return entities.MigrationPoetrycoreVersion }

func (m *PoetrycoreVersionMigration) Description() string {
	return fmt.Sprintf("Raise the build-system %s requirement to %s",
		entities.PoetryCorePackage, entities.PoetryCoreVersionRequirement)
}

// ShouldExecuteOnFile is true when the declared poetry-core version is below
// the required major/minor.
func (m *PoetrycoreVersionMigration) ShouldExecuteOnFile(path string) (bool, error) {
	return shouldExecute(m.repo, path, func(doc *entities.PyprojectDocument) bool {
		return m.detect(doc).needed()
	})
}

// PerformMigration rewrites the poetry-core requirement in place.
func (m *PoetrycoreVersionMigration) PerformMigration(path string) (bool, error) {
	return perform(m.repo, m.Name(), path, m.Apply)
}

// poetrycoreUpdate records which version components must change.
type poetrycoreUpdate struct {
	major bool
	minor bool
}

func (u poetrycoreUpdate) needed() bool { return u.major || u.minor }

func (m *PoetrycoreVersionMigration) detect(doc *entities.PyprojectDocument) poetrycoreUpdate {
	for _, requirement := range buildRequirements(doc) {
		version, ok := declaredVersion(requirement)
		if !ok {
			continue
		}

		installed := "v" + version.major
		if version.minor != "" {
			installed += "." + version.minor
		}
		if !semver.IsValid(installed) {
			logger.Warnf("[migration:%s] Could not interpret %q", m.Name(), requirement)
			continue
		}

		if semver.Compare(semver.Major(installed), semver.Major(m.required)) < 0 {
			logger.Infof("[migration:%s] Found build-system's poetry-core version %s less than the required %s",
				m.Name(), strings.TrimPrefix(installed, "v"), entities.PoetryCoreVersionRequirement)
			return poetrycoreUpdate{major: true, minor: true}
		}
		if semver.Compare(semver.Major(installed), semver.Major(m.required)) == 0 &&
			semver.Compare(semver.MajorMinor(installed), semver.MajorMinor(m.required)) < 0 {
			logger.Infof("[migration:%s] Found build-system's poetry-core version %s less than the required %s",
				m.Name(), strings.TrimPrefix(installed, "v"), entities.PoetryCoreVersionRequirement)
			return poetrycoreUpdate{minor: true}
		}
	}
	return poetrycoreUpdate{}
}

// Apply replaces only the major and/or minor digits of the poetry-core
// requirement inside [build-system]; operators, the patch component and any
// further constraints stay as they are.
func (m *PoetrycoreVersionMigration) Apply(doc *entities.PyprojectDocument) ([]string, bool) {
	update := m.detect(doc)
	lines := doc.Lines
	if !update.needed() {
		return lines, false
	}

	start, end := entities.FindSection(lines, entities.SectionBuildSystem)
	if start < 0 {
		return lines, false
	}

	result := append([]string(nil), lines...)
	for i := start + 1; i < end; i++ {
		if !strings.Contains(lines[i], entities.PoetryCorePackage) {
			continue
		}
		rewritten, ok := m.rewriteVersion(lines[i], update)
		if !ok {
			continue
		}
		logger.Infof("[migration:%s] Updating poetry-core version to %s", m.Name(), strings.TrimPrefix(m.required, "v"))
		result[i] = rewritten
		return result, true
	}

	return lines, false
}

func (m *PoetrycoreVersionMigration) rewriteVersion(line string, update poetrycoreUpdate) (string, bool) {
	idx := strings.Index(line, entities.PoetryCorePackage)
	span, ok := locateVersion(line[idx+len(entities.PoetryCorePackage):])
	if !ok {
		return line, false
	}
	offset := idx + len(entities.PoetryCorePackage)

	requiredMajor := strings.TrimPrefix(semver.Major(m.required), "v")
	requiredMinor := strings.TrimPrefix(semver.MajorMinor(m.required), semver.Major(m.required)+".")

	// minor first so the major offsets stay valid
	if update.minor {
		if span.minorStart < 0 {
			at := offset + span.majorEnd
			line = line[:at] + "." + requiredMinor + line[at:]
		} else {
			line = line[:offset+span.minorStart] + requiredMinor + line[offset+span.minorEnd:]
		}
	}
	if update.major {
		line = line[:offset+span.majorStart] + requiredMajor + line[offset+span.majorEnd:]
	}
	return line, true
}

type declared struct {
	major string
	minor string
}

// versionSpan holds byte offsets of the major and minor digit runs.
type versionSpan struct {
	majorStart, majorEnd int
	minorStart, minorEnd int
}

// locateVersion finds the first digit run following a comparison operator,
// and the digit run right after its first dot.
func locateVersion(text string) (versionSpan, bool) {
	digit := strings.IndexAny(text, "0123456789")
	if digit < 0 || !strings.ContainsAny(text[:digit], constraintOperators) {
		return versionSpan{}, false
	}

	span := versionSpan{majorStart: digit, majorEnd: digitRunEnd(text, digit), minorStart: -1, minorEnd: -1}
	if span.majorEnd < len(text) && text[span.majorEnd] == '.' &&
		span.majorEnd+1 < len(text) && isDigit(text[span.majorEnd+1]) {
		span.minorStart = span.majorEnd + 1
		span.minorEnd = digitRunEnd(text, span.minorStart)
	}
	return span, true
}

func declaredVersion(requirement string) (declared, bool) {
	idx := strings.Index(requirement, entities.PoetryCorePackage)
	if idx < 0 {
		return declared{}, false
	}
	text := requirement[idx+len(entities.PoetryCorePackage):]
	span, ok := locateVersion(text)
	if !ok {
		return declared{}, false
	}

	version := declared{major: normalizeNumber(text[span.majorStart:span.majorEnd])}
	if span.minorStart >= 0 {
		version.minor = normalizeNumber(text[span.minorStart:span.minorEnd])
	}
	return version, true
}

// buildRequirements collects every requirement string of build-system that
// may pin poetry-core: requires entries and a literal poetry-core key.
func buildRequirements(doc *entities.PyprojectDocument) []string {
	buildSystem, ok := doc.Section(entities.SectionBuildSystem)
	if !ok {
		return nil
	}

	var requirements []string
	switch requires := buildSystem[entities.RequiresKey].(type) {
	case string:
		requirements = append(requirements, requires)
	case []any:
		for _, item := range requires {
			if s, isString := item.(string); isString {
				requirements = append(requirements, s)
			}
		}
	}
	if value, found := buildSystem[entities.PoetryCorePackage].(string); found {
		requirements = append(requirements, entities.PoetryCorePackage+value)
	}
	return requirements
}

// semverOf turns a Poetry constraint such as "^1.6.0" into "v1.6.0".
func semverOf(constraint string) string {
	return "v" + strings.TrimLeft(constraint, constraintOperators+" ")
}

// normalizeNumber drops leading zeros, which semver rejects.
func normalizeNumber(digits string) string {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return digits
	}
	return strconv.Itoa(n)
}

func digitRunEnd(text string, from int) int {
	end := from
	for end < len(text) && isDigit(text[end]) {
		end++
	}
	return end
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
