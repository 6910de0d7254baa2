package accessor

import (
	"reflect"
	"strings"
)

//go:generate go tool stringer -type=MemberKind -output=memberkind_string.go

// MemberKind tells how a path segment is read and written.
type MemberKind int

const (
	Field MemberKind = iota + 1
	Property
)

// Descriptor is one resolved segment of a path.
type Descriptor struct {
	Name     string
	Kind     MemberKind
	Type     reflect.Type // declared type of the member
	Owner    reflect.Type // type the member was resolved on
	Readable bool
	Writable bool

	index  []int  // field index sequence, promoted fields included
	getter string // property getter method, empty when write-only
	setter string // property setter method, empty when read-only
}

// Path is a resolved dotted path. Members is never empty.
type Path struct {
	Root    reflect.Type
	Text    string
	Members []Descriptor
}

// Terminal returns the member that is actually read or written.
func (p Path) Terminal() Descriptor {
	return p.Members[len(p.Members)-1]
}

// Type returns the declared type of the terminal member.
func (p Path) Type() reflect.Type {
	return p.Terminal().Type
}

func (p Path) String() string {
	if p.Root == nil {
		return p.Text
	}

	return p.Root.String() + "." + p.Text
}

// splitPath splits a dotted path, dropping empty segments.
func splitPath(path string) []string {
	var segments []string

	for seg := range strings.SplitSeq(path, ".") {
		if seg = strings.TrimSpace(seg); seg != "" {
			segments = append(segments, seg)
		}
	}

	return segments
}
