package analyze

import (
	"fmt"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"propbind/accessor"
	"propbind/internal/match"
)

const opCheck = "check"

var errorType = types.Universe.Lookup("error").Type()

// StaticMember is one segment of a path resolved over go/types.
type StaticMember struct {
	Name     string
	Kind     accessor.MemberKind
	Type     types.Type
	Readable bool
	Writable bool
}

// StaticPath is a dotted path resolved over go/types. Members is never
// empty on success.
type StaticPath struct {
	Root    types.Type
	Text    string
	Members []StaticMember
}

// Terminal returns the last member of the path.
func (p StaticPath) Terminal() StaticMember {
	return p.Members[len(p.Members)-1]
}

// ResolvePath resolves path on the named type id.
func (g *TypeGraph) ResolvePath(id TypeID, path string) (StaticPath, error) {
	info := g.GetType(id)
	if info == nil {
		return StaticPath{}, fmt.Errorf("type %s not found", id)
	}

	return ResolveGoType(info.GoType, path)
}

// ResolveGoType resolves path on root. Failures are *accessor.PathError
// values matching the accessor sentinels, so a static check reports the
// same errors a binding would at run time.
func ResolveGoType(root types.Type, path string) (StaticPath, error) {
	var segments []string

	for seg := range strings.SplitSeq(path, ".") {
		if seg = strings.TrimSpace(seg); seg != "" {
			segments = append(segments, seg)
		}
	}

	if len(segments) == 0 {
		return StaticPath{}, &accessor.PathError{Op: opCheck, Path: path, Err: accessor.ErrEmptyPath}
	}

	out := StaticPath{Root: root, Text: strings.Join(segments, ".")}

	owner := root
	for i, seg := range segments {
		at := strings.Join(segments[:i+1], ".")

		member, suggestions, err := lookupMember(owner, seg)
		if err != nil {
			return StaticPath{}, &accessor.PathError{
				Op:          opCheck,
				Path:        out.Text,
				Segment:     at,
				Err:         err,
				Suggestions: suggestions,
			}
		}

		if i < len(segments)-1 && !member.Readable {
			return StaticPath{}, &accessor.PathError{Op: opCheck, Path: out.Text, Segment: at, Err: accessor.ErrNotReadable}
		}

		out.Members = append(out.Members, member)
		owner = member.Type
	}

	return out, nil
}

func lookupMember(owner types.Type, name string) (StaticMember, []string, error) {
	if token.IsExported(name) {
		obj, _, _ := types.LookupFieldOrMethod(owner, true, nil, name)
		if v, ok := obj.(*types.Var); ok && v.IsField() {
			return StaticMember{
				Name:     name,
				Kind:     accessor.Field,
				Type:     v.Type(),
				Readable: true,
				Writable: true,
			}, nil, nil
		}

		member, ok, err := lookupProperty(owner, name)
		if err != nil {
			return StaticMember{}, nil, err
		}

		if ok {
			return member, nil, nil
		}
	}

	switch deref(owner).Underlying().(type) {
	case *types.Map, *types.Slice, *types.Array, *types.Chan, *types.Signature:
		return StaticMember{}, nil, accessor.ErrUnsupportedMemberKind
	default:
		return StaticMember{}, match.Suggest(name, memberNames(owner), 3), accessor.ErrMemberNotFound
	}
}

func lookupProperty(owner types.Type, name string) (StaticMember, bool, error) {
	member := StaticMember{Name: name, Kind: accessor.Property}
	misshapen := false

	for _, getter := range []string{name, "Get" + name} {
		sig, ok := methodSig(owner, getter)
		if !ok {
			continue
		}

		if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
			misshapen = true

			continue
		}

		member.Type, member.Readable = sig.Results().At(0).Type(), true

		break
	}

	if sig, ok := methodSig(owner, "Set"+name); ok {
		switch {
		case !isSetter(sig):
			misshapen = true
		case !member.Readable:
			member.Type, member.Writable = sig.Params().At(0).Type(), true
		case types.Identical(sig.Params().At(0).Type(), member.Type):
			member.Writable = true
		}
	}

	if member.Readable || member.Writable {
		return member, true, nil
	}

	if misshapen {
		return StaticMember{}, false, accessor.ErrUnsupportedMemberKind
	}

	return StaticMember{}, false, nil
}

func methodSig(owner types.Type, name string) (*types.Signature, bool) {
	obj, _, _ := types.LookupFieldOrMethod(owner, true, nil, name)

	fn, ok := obj.(*types.Func)
	if !ok {
		return nil, false
	}

	sig, ok := fn.Type().(*types.Signature)

	return sig, ok
}

func isSetter(sig *types.Signature) bool {
	if sig.Params().Len() != 1 || sig.Variadic() {
		return false
	}

	results := sig.Results()

	return results.Len() == 0 || (results.Len() == 1 && types.Identical(results.At(0).Type(), errorType))
}

// memberNames lists the exported field and property names of owner.
func memberNames(owner types.Type) []string {
	seen := map[string]struct{}{}

	if st, ok := deref(owner).Underlying().(*types.Struct); ok {
		for i := range st.NumFields() {
			if f := st.Field(i); f.Exported() {
				seen[f.Name()] = struct{}{}
			}
		}
	}

	mset := types.NewMethodSet(owner)
	if _, isPtr := owner.(*types.Pointer); !isPtr && !types.IsInterface(owner) {
		mset = types.NewMethodSet(types.NewPointer(owner))
	}

	for i := range mset.Len() {
		fn := mset.At(i).Obj()
		if !fn.Exported() {
			continue
		}

		name := fn.Name()
		if trimmed, ok := strings.CutPrefix(name, "Get"); ok && trimmed != "" {
			name = trimmed
		} else if trimmed, ok := strings.CutPrefix(name, "Set"); ok && trimmed != "" {
			name = trimmed
		}

		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func deref(t types.Type) types.Type {
	for {
		ptr, ok := t.(*types.Pointer)
		if !ok {
			return t
		}

		t = ptr.Elem()
	}
}
