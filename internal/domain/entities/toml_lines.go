package entities

import (
	"strings"
)

const (
	lineSeparator  = "\n"
	carriageReturn = "\r"
	equalsSign     = "="
	whitespace     = " \t"
	commentPrefix  = "#"
)

// SplitLines splits file content on "\n". Joining the result with JoinLines
// reproduces the content byte-for-byte, including any "\r" and a trailing
// newline (kept as a final empty element).
func SplitLines(content string) []string {
	return strings.Split(content, lineSeparator)
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, lineSeparator)
}

// ExtractKey returns the candidate key of a `key = value` line. Only lines
// that contain both whitespace and an equals sign are considered; the key is
// the text before the first whitespace when that whitespace comes before the
// equals sign, otherwise the text before the equals sign, trimmed.
func ExtractKey(line string) (string, bool) {
	spaceIdx := strings.IndexAny(line, whitespace)
	equalsIdx := strings.Index(line, equalsSign)
	if spaceIdx < 0 || equalsIdx < 0 {
		return "", false
	}

	end := equalsIdx
	if spaceIdx < equalsIdx {
		end = spaceIdx
	}

	key := strings.TrimSpace(line[:end])
	return key, key != ""
}

// IsTableHeader reports whether the line opens a table or array-of-tables.
func IsTableHeader(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "[")
}

// HeaderName returns the dotted table path of a header line, without
// brackets or a trailing comment. Non-header lines yield "".
func HeaderName(line string) string {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "[") {
		return ""
	}
	if idx := strings.Index(trimmed, "]"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(strings.Trim(trimmed, "[]"))
}

// HeaderLine renders the header line for a dotted table path.
func HeaderLine(section string) string {
	return "[" + section + "]"
}

// FindSection returns the index of the header line of section and the index
// of the next header (or len(lines)). The start is -1 when the section is
// not declared with its own header.
func FindSection(lines []string, section string) (int, int) {
	start := -1
	for i, line := range lines {
		if IsTableHeader(line) && HeaderName(line) == section {
			start = i
			break
		}
	}
	if start < 0 {
		return -1, len(lines)
	}
	return start, NextHeaderIndex(lines, start)
}

// NextHeaderIndex returns the index of the first header after from, or
// len(lines) if none follows.
func NextHeaderIndex(lines []string, from int) int {
	for i := from + 1; i < len(lines); i++ {
		if IsTableHeader(lines[i]) {
			return i
		}
	}
	return len(lines)
}

// SectionKeyOrder lists the keys declared under a section header, in the
// order they appear in the file.
func SectionKeyOrder(lines []string, section string) []string {
	start, end := FindSection(lines, section)
	if start < 0 {
		return nil
	}

	var keys []string
	for i := start + 1; i < end; i++ {
		if isCommentOrBlank(lines[i]) {
			continue
		}
		if key, ok := ExtractKey(lines[i]); ok {
			keys = append(keys, unquoteKey(key))
		}
	}
	return keys
}

// FindCustomGroupSections scans raw lines for `[tool.poetry.group...]`
// headers and returns their dotted paths in file order. The scan works on
// text so that groups declared without any entries are still found.
func FindCustomGroupSections(lines []string) []string {
	var groups []string
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), GroupSectionPrefix) {
			groups = append(groups, HeaderName(line))
		}
	}
	return groups
}

func isCommentOrBlank(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, commentPrefix)
}

func unquoteKey(key string) string {
	if len(key) >= 2 && (key[0] == '"' || key[0] == '\'') && key[len(key)-1] == key[0] {
		return key[1 : len(key)-1]
	}
	return key
}
