package query

import (
	"fmt"
	"regexp"
)

// Identifier kinds reported by IdentifierError.
const (
	KindTable  = "table"
	KindColumn = "column"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsSafeIdentifier reports whether name may be interpolated into a statement
// as a table or column name. Identifiers are never escaped, only accepted or
// rejected.
func IsSafeIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// IdentifierError is returned by the statement builders when a table or
// column name fails IsSafeIdentifier.
type IdentifierError struct {
	Kind string
	Name string
}

func (e *IdentifierError) Error() string {
	if e.Kind == KindTable {
		return fmt.Sprintf("invalid table_name %q: use letters, numbers, and underscores only", e.Name)
	}
	return fmt.Sprintf("invalid column name: %s", e.Name)
}

func checkIdentifier(kind, name string) error {
	if !IsSafeIdentifier(name) {
		return &IdentifierError{Kind: kind, Name: name}
	}
	return nil
}
