package accessor

import (
	"reflect"
	"strings"

	"propbind/primitive"
)

// Accessor is a compiled path: a getter and a setter sharing one ordered
// list of steps. It holds no state besides the path and is safe for
// concurrent use.
type Accessor struct {
	path     Path
	steps    []step
	segments []string // segments[i] is the path text up to step i
	allowed  primitive.CategoryEnum
}

// Compile builds an accessor for p. Values written through Set are converted
// to the terminal type with the allowed conversion categories.
func Compile(p Path, allowed primitive.CategoryEnum) *Accessor {
	a := &Accessor{
		path:     p,
		steps:    make([]step, len(p.Members)),
		segments: make([]string, len(p.Members)),
		allowed:  allowed,
	}

	names := make([]string, 0, len(p.Members))
	for i, desc := range p.Members {
		names = append(names, desc.Name)
		a.steps[i] = newStep(desc)
		a.segments[i] = strings.Join(names, ".")
	}

	return a
}

// Path returns the resolved path the accessor was compiled from.
func (a *Accessor) Path() Path { return a.path }

// Type returns the declared type of the terminal member.
func (a *Accessor) Type() reflect.Type { return a.path.Type() }

// Readable reports whether Get can ever yield a value.
func (a *Accessor) Readable() bool { return a.path.Terminal().Readable }

// Writable reports whether the terminal member has a write path.
func (a *Accessor) Writable() bool { return a.path.Terminal().Writable }

func (a *Accessor) String() string { return a.path.String() }

// Get reads the terminal member of obj. It reports false when any link of
// the chain is nil, when the terminal value itself is nil, or when the
// terminal member is write-only.
func (a *Accessor) Get(obj any) (any, bool) {
	v := reflect.ValueOf(obj)

	for _, s := range a.steps {
		if absent(v) {
			return nil, false
		}

		var ok bool
		if v, ok = s.get(v); !ok {
			return nil, false
		}
	}

	if absent(v) || !v.CanInterface() {
		return nil, false
	}

	return v.Interface(), true
}

// Set converts value to the terminal type and writes it to obj. Nothing is
// written when any step fails. obj must be a pointer for field writes to
// reach it.
func (a *Accessor) Set(obj, value any) error {
	last := len(a.steps) - 1

	if !a.path.Terminal().Writable {
		return a.fail(last, ErrNotWritable)
	}

	owner := reflect.ValueOf(obj)
	for i, s := range a.steps[:last] {
		next, ok := s.get(owner)
		if absent(owner) || !ok || absent(next) {
			return a.fail(i, ErrTraversalFailure)
		}

		owner = next
	}

	write, err := a.steps[last].locate(owner)
	if err != nil {
		return a.fail(last, err)
	}

	v, err := a.convert(value)
	if err != nil {
		return a.fail(last, err)
	}

	if err := write(v); err != nil {
		return a.fail(last, err)
	}

	return nil
}

func (a *Accessor) convert(value any) (reflect.Value, error) {
	dst := a.path.Type()

	out, err := primitive.Convert(value, dst, a.allowed)
	if err != nil {
		return reflect.Value{}, err
	}

	if out == nil {
		return reflect.Zero(dst), nil
	}

	return reflect.ValueOf(out), nil
}

func (a *Accessor) fail(i int, err error) error {
	return &PathError{Op: opSet, Path: a.path.Text, Segment: a.segments[i], Err: err}
}
