package accessor

import (
	"go/token"
	"reflect"
	"slices"
	"strings"

	"propbind/internal/match"
)

const (
	opResolve = "resolve"
	opSet     = "set"

	maxSuggestions = 3
)

var errorType = reflect.TypeFor[error]()

// Resolve resolves path against the dynamic type of root.
func Resolve(root any, path string) (Path, error) {
	return ResolveType(reflect.TypeOf(root), path)
}

// ResolveType resolves path against t. The first segment is looked up on t,
// every following segment on the declared type of the previous member, so
// no value is needed and nothing is traversed.
func ResolveType(t reflect.Type, path string) (Path, error) {
	if t == nil {
		return Path{}, &PathError{Op: opResolve, Path: path, Err: ErrNilRoot}
	}

	segments := splitPath(path)
	if len(segments) == 0 {
		return Path{}, &PathError{Op: opResolve, Path: path, Err: ErrEmptyPath}
	}

	out := Path{
		Root:    t,
		Text:    strings.Join(segments, "."),
		Members: make([]Descriptor, 0, len(segments)),
	}

	owner := t
	for i, seg := range segments {
		at := strings.Join(segments[:i+1], ".")

		desc, suggestions, err := lookupMember(owner, seg)
		if err != nil {
			return Path{}, &PathError{
				Op:          opResolve,
				Path:        out.Text,
				Segment:     at,
				Err:         err,
				Suggestions: suggestions,
			}
		}

		if i < len(segments)-1 && !desc.Readable {
			return Path{}, &PathError{Op: opResolve, Path: out.Text, Segment: at, Err: ErrNotReadable}
		}

		out.Members = append(out.Members, desc)
		owner = desc.Type
	}

	return out, nil
}

// lookupMember finds name on owner: an exported field first, then a
// property. On a miss it returns near-miss names.
func lookupMember(owner reflect.Type, name string) (Descriptor, []string, error) {
	if desc, ok := lookupField(owner, name); ok {
		return desc, nil, nil
	}

	desc, ok, err := lookupProperty(owner, name)
	if err != nil {
		return Descriptor{}, nil, err
	}

	if ok {
		return desc, nil, nil
	}

	switch deref(owner).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Chan, reflect.Func:
		return Descriptor{}, nil, ErrUnsupportedMemberKind
	default:
		return Descriptor{}, match.Suggest(name, memberNames(owner), maxSuggestions), ErrMemberNotFound
	}
}

func lookupField(owner reflect.Type, name string) (Descriptor, bool) {
	base := deref(owner)
	if base.Kind() != reflect.Struct || !token.IsExported(name) {
		return Descriptor{}, false
	}

	sf, ok := base.FieldByName(name)
	if !ok || !sf.IsExported() {
		return Descriptor{}, false
	}

	return Descriptor{
		Name:     name,
		Kind:     Field,
		Type:     sf.Type,
		Owner:    owner,
		Readable: true,
		Writable: true,
		index:    sf.Index,
	}, true
}

// lookupProperty looks for name() or Getname() and Setname(v). A method
// with the right name but the wrong shape is an unsupported member.
func lookupProperty(owner reflect.Type, name string) (Descriptor, bool, error) {
	if !token.IsExported(name) {
		return Descriptor{}, false, nil
	}

	desc := Descriptor{Name: name, Kind: Property, Owner: owner}
	misshapen := false

	for _, getter := range []string{name, "Get" + name} {
		sig, ok := findMethod(owner, getter)
		if !ok {
			continue
		}

		if !sig.isGetter() {
			misshapen = true

			continue
		}

		desc.getter, desc.Type, desc.Readable = getter, sig.out[0], true

		break
	}

	setter := "Set" + name
	if sig, ok := findMethod(owner, setter); ok {
		switch {
		case !sig.isSetter():
			misshapen = true
		case !desc.Readable:
			desc.setter, desc.Type, desc.Writable = setter, sig.in[0], true
		case sig.in[0] == desc.Type:
			desc.setter, desc.Writable = setter, true
		}
	}

	if desc.Readable || desc.Writable {
		return desc, true, nil
	}

	if misshapen {
		return Descriptor{}, false, ErrUnsupportedMemberKind
	}

	return Descriptor{}, false, nil
}

type methodSig struct {
	in       []reflect.Type
	out      []reflect.Type
	variadic bool
}

func (s methodSig) isGetter() bool {
	return len(s.in) == 0 && len(s.out) == 1
}

func (s methodSig) isSetter() bool {
	if len(s.in) != 1 || s.variadic {
		return false
	}

	return len(s.out) == 0 || (len(s.out) == 1 && s.out[0] == errorType)
}

// findMethod looks name up on owner and, for non-pointer owners, on *owner.
func findMethod(owner reflect.Type, name string) (methodSig, bool) {
	for _, t := range methodSets(owner) {
		m, ok := t.MethodByName(name)
		if !ok {
			continue
		}

		// interface method types carry no receiver
		first := 1
		if t.Kind() == reflect.Interface {
			first = 0
		}

		sig := methodSig{variadic: m.Type.IsVariadic()}
		for i := first; i < m.Type.NumIn(); i++ {
			sig.in = append(sig.in, m.Type.In(i))
		}

		for i := range m.Type.NumOut() {
			sig.out = append(sig.out, m.Type.Out(i))
		}

		return sig, true
	}

	return methodSig{}, false
}

func methodSets(owner reflect.Type) []reflect.Type {
	switch owner.Kind() {
	case reflect.Interface:
		return []reflect.Type{owner}
	case reflect.Ptr:
		if owner.Elem().Kind() == reflect.Ptr {
			return nil
		}

		return []reflect.Type{owner}
	default:
		return []reflect.Type{owner, reflect.PointerTo(owner)}
	}
}

// memberNames lists every exported field and property name of owner.
func memberNames(owner reflect.Type) []string {
	seen := map[string]struct{}{}

	if base := deref(owner); base.Kind() == reflect.Struct {
		for _, sf := range reflect.VisibleFields(base) {
			if sf.IsExported() {
				seen[sf.Name] = struct{}{}
			}
		}
	}

	for _, t := range methodSets(owner) {
		for i := range t.NumMethod() {
			m := t.Method(i)
			if !m.IsExported() {
				continue
			}

			name := m.Name
			if trimmed, ok := strings.CutPrefix(name, "Get"); ok && trimmed != "" {
				name = trimmed
			} else if trimmed, ok := strings.CutPrefix(name, "Set"); ok && trimmed != "" {
				name = trimmed
			}

			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func deref(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}
