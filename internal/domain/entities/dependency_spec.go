package entities

import (
	"fmt"
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"
)

const (
	rhsKeyPath    = "path"
	rhsKeyDevelop = "develop"
	rhsKeyVersion = "version"
	rhsKeyExtras  = "extras"

	doubleQuote = `"`
)

// IsLocalDevelopmentVersion reports whether a dependency right-hand side is a
// structured table without a "version" key, i.e. a path reference to a
// sibling module that no registry can resolve.
func IsLocalDevelopmentVersion(rhs any) bool {
	table, ok := rhs.(map[string]any)
	if !ok {
		return false
	}
	_, hasVersion := table[rhsKeyVersion]
	return !hasVersion
}

// OperatorAndVersion renders a dependency right-hand side in the form stored
// on replacement tuples: plain constraints as-is, tables as a canonical inline
// table with keys ordered path, develop, version, extras.
func OperatorAndVersion(rhs any) string {
	switch value := rhs.(type) {
	case string:
		return value
	case map[string]any:
		return renderInlineTable(value)
	default:
		logger.Warnf("Unexpected dependency value type %T (%v), rendering as-is", rhs, rhs)
		return fmt.Sprint(rhs)
	}
}

// EscapeRightHandSide double-quotes a value unless it is an inline table.
func EscapeRightHandSide(value string) string {
	if strings.Contains(value, "{") {
		return value
	}
	return doubleQuote + value + doubleQuote
}

// ToLiteral renders a right-hand side exactly as it is expected to appear
// after the `=` of a declaration line.
func ToLiteral(rhs any) string {
	return EscapeRightHandSide(OperatorAndVersion(rhs))
}

// UnrenderedKeys lists, sorted, the keys of a table right-hand side that the
// canonical inline rendering leaves out (optional, markers, ...). Plain
// constraints yield nil.
func UnrenderedKeys(rhs any) []string {
	table, ok := rhs.(map[string]any)
	if !ok {
		return nil
	}

	var dropped []string
	for key := range table {
		switch key {
		case rhsKeyPath, rhsKeyDevelop, rhsKeyVersion, rhsKeyExtras:
		default:
			dropped = append(dropped, key)
		}
	}
	sort.Strings(dropped)
	return dropped
}

func renderInlineTable(table map[string]any) string {
	parts := make([]string, 0, len(table))

	if path, ok := table[rhsKeyPath]; ok && path != nil {
		parts = append(parts, rhsKeyPath+" = "+quoteScalar(path))
	}
	if develop, ok := table[rhsKeyDevelop]; ok && develop != nil {
		parts = append(parts, rhsKeyDevelop+" = "+quoteScalar(develop))
	}
	if version, ok := table[rhsKeyVersion]; ok && version != nil {
		parts = append(parts, rhsKeyVersion+" = "+quoteScalar(version))
	}
	if extras := toStrings(table[rhsKeyExtras]); len(extras) > 0 {
		quoted := make([]string, 0, len(extras))
		for _, extra := range extras {
			quoted = append(quoted, doubleQuote+extra+doubleQuote)
		}
		parts = append(parts, rhsKeyExtras+" = ["+strings.Join(quoted, ", ")+"]")
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// quoteScalar quotes strings and leaves booleans and numbers bare.
func quoteScalar(value any) string {
	if s, ok := value.(string); ok {
		return doubleQuote + s + doubleQuote
	}
	return fmt.Sprint(value)
}

func toStrings(value any) []string {
	switch items := value.(type) {
	case []string:
		return items
	case []any:
		result := make([]string, 0, len(items))
		for _, item := range items {
			result = append(result, fmt.Sprint(item))
		}
		return result
	default:
		return nil
	}
}
