package accessor

import (
	"fmt"
	"reflect"
)

// step reads or locates one member on an owner value.
type step interface {
	// get reads the member. It reports false when the owner does not carry
	// the member or the member cannot be read.
	get(owner reflect.Value) (reflect.Value, bool)
	// locate prepares a write of the member on owner without writing yet.
	locate(owner reflect.Value) (writeFunc, error)
}

type writeFunc func(v reflect.Value) error

func newStep(desc Descriptor) step {
	if desc.Kind == Field {
		return fieldStep{desc: desc, owner: deref(desc.Owner)}
	}

	return propertyStep{desc: desc}
}

type fieldStep struct {
	desc  Descriptor
	owner reflect.Type // struct type the index sequence applies to
}

func (s fieldStep) get(owner reflect.Value) (reflect.Value, bool) {
	owner, ok := s.structOf(owner)
	if !ok {
		return reflect.Value{}, false
	}

	// fails on a nil embedded pointer
	v, err := owner.FieldByIndexErr(s.desc.index)
	if err != nil {
		return reflect.Value{}, false
	}

	return v, true
}

func (s fieldStep) locate(owner reflect.Value) (writeFunc, error) {
	owner, ok := s.structOf(owner)
	if !ok {
		return nil, ErrTraversalFailure
	}

	field, err := owner.FieldByIndexErr(s.desc.index)
	if err != nil {
		return nil, ErrTraversalFailure
	}

	if !field.CanSet() {
		return nil, ErrNotWritable
	}

	return func(v reflect.Value) error {
		field.Set(v)

		return nil
	}, nil
}

func (s fieldStep) structOf(owner reflect.Value) (reflect.Value, bool) {
	owner, ok := indirect(owner)
	if !ok || owner.Type() != s.owner {
		return reflect.Value{}, false
	}

	return owner, true
}

type propertyStep struct {
	desc Descriptor
}

func (s propertyStep) get(owner reflect.Value) (reflect.Value, bool) {
	if s.desc.getter == "" {
		return reflect.Value{}, false
	}

	m, ok := methodOf(owner, s.desc.getter, false)
	if !ok || m.Type().NumIn() != 0 || m.Type().NumOut() != 1 {
		return reflect.Value{}, false
	}

	return m.Call(nil)[0], true
}

func (s propertyStep) locate(owner reflect.Value) (writeFunc, error) {
	if s.desc.setter == "" {
		return nil, ErrNotWritable
	}

	if absent(owner) {
		return nil, ErrTraversalFailure
	}

	m, ok := methodOf(owner, s.desc.setter, true)
	if !ok || m.Type().NumIn() != 1 || m.Type().In(0) != s.desc.Type {
		return nil, ErrNotWritable
	}

	return func(v reflect.Value) error {
		out := m.Call([]reflect.Value{v})
		if len(out) == 1 && !out[0].IsNil() {
			return fmt.Errorf("%w: %s: %w", ErrWriteFailed, s.desc.setter, out[0].Interface().(error))
		}

		return nil
	}, nil
}

// methodOf returns the bound method name of owner. Pointer-receiver
// methods of an unaddressable value are called on a copy when reading and
// are unavailable when writing.
func methodOf(owner reflect.Value, name string, write bool) (reflect.Value, bool) {
	for owner.IsValid() && owner.Kind() == reflect.Interface {
		if owner.IsNil() {
			return reflect.Value{}, false
		}

		owner = owner.Elem()
	}

	if absent(owner) || !owner.CanInterface() {
		return reflect.Value{}, false
	}

	if m := owner.MethodByName(name); m.IsValid() {
		return m, true
	}

	if owner.Kind() == reflect.Ptr {
		return reflect.Value{}, false
	}

	if owner.CanAddr() {
		m := owner.Addr().MethodByName(name)

		return m, m.IsValid()
	}

	if write {
		return reflect.Value{}, false
	}

	cp := reflect.New(owner.Type())
	cp.Elem().Set(owner)

	m := cp.MethodByName(name)

	return m, m.IsValid()
}

// indirect follows pointers and interfaces down to a concrete value.
func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() {
		switch v.Kind() {
		case reflect.Ptr, reflect.Interface:
			if v.IsNil() {
				return reflect.Value{}, false
			}

			v = v.Elem()
		default:
			return v, true
		}
	}

	return reflect.Value{}, false
}

// absent reports whether v carries no value.
func absent(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
