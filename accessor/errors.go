package accessor

import (
	"errors"
	"strings"

	"propbind/primitive"
)

var (
	ErrNilRoot               = errors.New("accessor: nil root type")
	ErrEmptyPath             = errors.New("accessor: empty path")
	ErrMemberNotFound        = errors.New("accessor: member not found")
	ErrUnsupportedMemberKind = errors.New("accessor: unsupported member kind")
	ErrNotReadable           = errors.New("accessor: member is not readable")
	ErrNotWritable           = errors.New("accessor: member is not writable")
	ErrTraversalFailure      = errors.New("accessor: traversal failure")
	ErrWriteFailed           = errors.New("accessor: write failed")

	// Conversion failures surface from Set unchanged.
	ErrNotConvertible   = primitive.ErrNotConvertible
	ErrConversionFailed = primitive.ErrConversionFailed
)

// PathError records a failure to resolve or evaluate one segment of a path.
type PathError struct {
	Op      string // "resolve" or "set"
	Path    string
	Segment string
	Err     error

	// Suggestions holds near-miss member names when Err is ErrMemberNotFound.
	Suggestions []string
}

func (e *PathError) Error() string {
	var b strings.Builder

	b.WriteString(e.Op)
	b.WriteString(" ")
	b.WriteString(e.Path)

	if e.Segment != "" && e.Segment != e.Path {
		b.WriteString(" at ")
		b.WriteString(e.Segment)
	}

	b.WriteString(": ")
	b.WriteString(e.Err.Error())

	if len(e.Suggestions) > 0 {
		b.WriteString(" (did you mean ")
		b.WriteString(strings.Join(e.Suggestions, ", "))
		b.WriteString("?)")
	}

	return b.String()
}

func (e *PathError) Unwrap() error { return e.Err }
