package entities

import (
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"
)

// RewriteResult is the outcome of a line rewrite. Lines always has the same
// length as the input; Applied and Unmatched are sorted by package name.
type RewriteResult struct {
	Lines     []string
	Applied   []TomlReplacement
	Unmatched []TomlReplacement
}

// Changed reports whether at least one replacement was applied.
func (r RewriteResult) Changed() bool {
	return len(r.Applied) > 0
}

// RewriteLines performs a single forward pass over lines, replacing the
// trailing right-hand side of `name = original` declarations with the updated
// value. Each replacement is applied at most once; lines whose right-hand side
// no longer matches the recorded original are left untouched. Every line not
// rewritten is returned verbatim.
func RewriteLines(lines []string, replacements Replacements) RewriteResult {
	result := RewriteResult{Lines: make([]string, len(lines))}
	applied := make(map[string]bool, len(replacements))

	for i, line := range lines {
		result.Lines[i] = line

		key, ok := ExtractKey(line)
		if !ok {
			continue
		}
		replacement, found := replacements[key]
		if !found || applied[key] {
			continue
		}

		if rewritten, matched := replaceTrailing(line, replacement); matched {
			result.Lines[i] = rewritten
			applied[key] = true
			logger.Infof("Updated %s: %s --> %s", replacement.PackageName,
				EscapeRightHandSide(replacement.OriginalOperatorAndVersion),
				EscapeRightHandSide(replacement.UpdatedOperatorAndVersion))
		}
	}

	for _, replacement := range replacements.Sorted() {
		if applied[replacement.PackageName] {
			result.Applied = append(result.Applied, replacement)
			continue
		}
		logger.Debugf("No declaration of %s matched %s, leaving it unchanged",
			replacement.PackageName, EscapeRightHandSide(replacement.OriginalOperatorAndVersion))
		result.Unmatched = append(result.Unmatched, replacement)
	}

	return result
}

// RewriteSections applies each section's replacements only to the lines
// between that section's header and the next one. A section without its own
// header is rewritten over the whole file. Line count never changes, so the
// ranges stay valid across sections.
func RewriteSections(lines []string, replacements SectionReplacements) RewriteResult {
	result := RewriteResult{Lines: append([]string(nil), lines...)}

	sections := make([]string, 0, len(replacements))
	for section := range replacements {
		sections = append(sections, section)
	}
	sort.Strings(sections)

	for _, section := range sections {
		start, end := FindSection(result.Lines, section)
		if start < 0 {
			start, end = -1, len(result.Lines)
		}

		scoped := RewriteLines(result.Lines[start+1:end], replacements[section])
		copy(result.Lines[start+1:end], scoped.Lines)
		result.Applied = append(result.Applied, scoped.Applied...)
		result.Unmatched = append(result.Unmatched, scoped.Unmatched...)
	}

	sortReplacements(result.Applied)
	sortReplacements(result.Unmatched)
	return result
}

func sortReplacements(replacements []TomlReplacement) {
	sort.SliceStable(replacements, func(i, j int) bool {
		if replacements[i].PackageName != replacements[j].PackageName {
			return replacements[i].PackageName < replacements[j].PackageName
		}
		return replacements[i].Section < replacements[j].Section
	})
}

// replaceTrailing swaps the quoted original right-hand side at the end of the
// line (ignoring a trailing carriage return) for the quoted updated one.
func replaceTrailing(line string, replacement TomlReplacement) (string, bool) {
	body, suffix := line, ""
	if strings.HasSuffix(body, carriageReturn) {
		body, suffix = strings.TrimSuffix(body, carriageReturn), carriageReturn
	}

	original := EscapeRightHandSide(replacement.OriginalOperatorAndVersion)
	if !strings.HasSuffix(body, original) {
		return line, false
	}

	updated := EscapeRightHandSide(replacement.UpdatedOperatorAndVersion)
	return strings.TrimSuffix(body, original) + updated + suffix, true
}
