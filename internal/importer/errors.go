package importer

import "fmt"

// ErrorKind classifies import failures so callers can present an actionable
// message for each.
type ErrorKind string

const (
	// KindFile covers filesystem access problems (missing file, permissions).
	KindFile ErrorKind = "file"
	// KindParse covers malformed JSON or a document that does not match the
	// expected structure.
	KindParse ErrorKind = "parse"
	// KindInvalidEnum covers day/group/set type values outside their closed
	// enumerations.
	KindInvalidEnum ErrorKind = "invalid_enum"
	// KindUnresolvedExercise covers exercise references that match no catalog
	// entry.
	KindUnresolvedExercise ErrorKind = "unresolved_exercise"
)

// ImportError is the surfaced import failure: its kind, the document location
// it occurred at and, for unresolved references, the offending name.
type ImportError struct {
	Kind ErrorKind
	Path string // JSON path, e.g. "phases[1].weeks[0].days[2].dayType"
	Name string // unresolved exercise name, when applicable
	Err  error
}

func (e *ImportError) Error() string {
	switch {
	case e.Name != "":
		return fmt.Sprintf("import %s at %s: %q: %v", e.Kind, e.Path, e.Name, e.Err)
	case e.Path != "":
		return fmt.Sprintf("import %s at %s: %v", e.Kind, e.Path, e.Err)
	default:
		return fmt.Sprintf("import %s: %v", e.Kind, e.Err)
	}
}

func (e *ImportError) Unwrap() error { return e.Err }
