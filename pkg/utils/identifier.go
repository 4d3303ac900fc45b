package utils

import (
	"regexp"
	"strings"

	"github.com/dorisops/dorisctl/pkg/errkind"
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	queryIDPattern    = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// ValidIdentifier rejects database, table, and column names that could not
// have come from a schema. Identifiers end up interpolated into SHOW/DESC/
// LOAD statement text (the server does not accept placeholders there), so
// anything outside the allow-list is refused up front.
func ValidIdentifier(name string) error {
	if name == "" {
		return errkind.New(errkind.Validation, "empty identifier")
	}
	if !identifierPattern.MatchString(name) {
		return errkind.Newf(errkind.Validation, "invalid identifier %q", name)
	}
	return nil
}

// ValidQueryID checks a query id before it is placed into a KILL statement
// or an HTTP path. Doris query ids are hex fragments joined by dashes or
// underscores; plain connection ids are numeric. Both fit the same
// allow-list.
func ValidQueryID(id string) error {
	if id == "" || !queryIDPattern.MatchString(id) {
		return errkind.Newf(errkind.Validation, "invalid query id %q", id)
	}
	return nil
}

// Backtick wraps a single identifier in backticks unless it already is.
//
// Examples:
//   - "events" -> "`events`"
//   - "`events`" -> "`events`"
//   - "" -> ""
func Backtick(name string) string {
	if name == "" {
		return ""
	}
	if len(name) >= 2 && name[0] == '`' && name[len(name)-1] == '`' && !strings.Contains(name[1:len(name)-1], "`") {
		return name
	}
	return "`" + name + "`"
}

// QualifiedName formats a database-qualified object name with backticks.
// An empty database yields just the backticked name.
//
// Examples:
//   - ("analytics", "events") -> "`analytics`.`events`"
//   - ("", "events") -> "`events`"
func QualifiedName(database, name string) string {
	if database == "" {
		return Backtick(name)
	}
	return Backtick(database) + "." + Backtick(name)
}
