package analyze

import (
	"fmt"
	"go/types"
	"strings"

	"propbind/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "propbind/scene"
	Name    string // e.g., "Player"
}

// ParseTypeID parses "import/path.Name". A leading "*" is ignored: bindings
// hold pointers, and member lookup treats T and *T alike.
func ParseTypeID(s string) (TypeID, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "*")

	i := strings.LastIndex(s, ".")
	if i <= 0 || i == len(s)-1 {
		return TypeID{}, fmt.Errorf("invalid type %q: expected import/path.Name", s)
	}

	return TypeID{PkgPath: s[:i], Name: s[i+1:]}, nil
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a named type's underlying type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindInterface          // interface type
	TypeKindOther              // map, slice, func and the like
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindInterface:
		return "interface"
	case TypeKindOther:
		return "other"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a named type in the type graph.
type TypeInfo struct {
	ID     TypeID
	Kind   TypeKind
	GoType types.Type
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all exported named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Exported named types defined in this package
}
