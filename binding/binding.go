package binding

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"propbind/accessor"
	"propbind/diagnostic"
	"propbind/primitive"
)

var (
	ErrMissingEndpoint = errors.New("binding: missing endpoint")
	ErrInvalidMode     = errors.New("binding: invalid mode")
	// ErrApplied is the reason of a OneTime binding that has done its write.
	ErrApplied = errors.New("binding: one-time binding applied")
)

// Binding links a member path on a source object to a member path on a
// target object. It is not safe for concurrent use.
type Binding struct {
	name       string
	source     any
	target     any
	sourcePath string
	targetPath string
	requested  Mode
	status     Status

	sourceAcc *accessor.Accessor
	targetAcc *accessor.Accessor

	// readings snapshotted at the start of the tick, refreshed after
	// writes under DetectChanges
	lastSource any
	lastTarget any

	// DetectChanges only: readings at the end of the previous tick
	prevSource any
	prevTarget any
	primed     bool

	sink       diagnostic.Sink
	registry   *accessor.Registry
	categories primitive.CategoryEnum
	detect     ChangeDetection
}

// New creates a binding and resolves both paths. It never fails: a nil
// endpoint, an inactive mode or a path that does not resolve leaves the
// binding Invalid, with the reason in Status and reported once to the sink.
func New(source, target any, sourcePath, targetPath string, mode Mode, opts ...Option) *Binding {
	b := &Binding{
		source:     source,
		target:     target,
		sourcePath: sourcePath,
		targetPath: targetPath,
		requested:  mode,
		sink:       diagnostic.Discard,
		registry:   accessor.Default,
		categories: primitive.CategoryAll,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.name == "" {
		b.name = sourcePath + " -> " + targetPath
	}

	b.init()

	return b
}

func (b *Binding) init() {
	var missing []string
	if isNil(b.source) {
		missing = append(missing, "source")
	}

	if isNil(b.target) {
		missing = append(missing, "target")
	}

	if len(missing) > 0 {
		b.invalidate(fmt.Errorf("%w: %s", ErrMissingEndpoint, describeMissing(missing)))

		return
	}

	if !b.requested.Active() {
		b.invalidate(fmt.Errorf("%w: %s", ErrInvalidMode, b.requested))

		return
	}

	var err error

	b.sourceAcc, err = b.registry.Lookup(reflect.TypeOf(b.source), b.sourcePath, b.categories)
	if err != nil {
		b.invalidate(fmt.Errorf("source: %w", err))

		return
	}

	b.targetAcc, err = b.registry.Lookup(reflect.TypeOf(b.target), b.targetPath, b.categories)
	if err != nil {
		b.invalidate(fmt.Errorf("target: %w", err))

		return
	}

	b.status = Status{Mode: b.requested}
}

// Name returns the name used in diagnostics.
func (b *Binding) Name() string { return b.name }

// Mode returns the mode the binding currently runs in, Invalid once it
// stopped.
func (b *Binding) Mode() Mode { return b.status.Mode }

// RequestedMode returns the mode the binding was created with.
func (b *Binding) RequestedMode() Mode { return b.requested }

// Status returns the current mode and, when Invalid, the reason.
func (b *Binding) Status() Status { return b.status }

// LastSource returns the source reading snapshotted by the latest tick.
func (b *Binding) LastSource() any { return b.lastSource }

// LastTarget returns the target reading snapshotted by the latest tick.
func (b *Binding) LastTarget() any { return b.lastTarget }

func (b *Binding) String() string {
	return b.name + " [" + b.status.String() + "]"
}

// Tick runs one synchronisation cycle. It returns an error only for
// failures that may go away by themselves: a nil link in a path being
// written, a value that does not convert, or a setter that failed. A
// binding whose target can never be written turns Invalid instead and Tick
// returns nil.
func (b *Binding) Tick() error {
	if !b.status.Active() {
		return nil
	}

	if b.detect == DetectChanges {
		b.prevSource, b.prevTarget = b.lastSource, b.lastTarget
	}

	b.lastSource = b.read("source", b.sourceAcc, b.source)
	b.lastTarget = b.read("target", b.targetAcc, b.target)

	var err error

	switch b.status.Mode {
	case OneTime:
		var applied bool
		if applied, err = b.updateTarget(true); applied {
			b.status = Status{Mode: Invalid, Reason: ErrApplied}
			b.report(diagnostic.DiagnosticDebug, "applied once")
		}
	case OneWayToSource:
		err = b.updateSource()
	case OneWayToTarget:
		_, err = b.updateTarget(false)
	case TwoWay:
		err = b.updateSource()
		if b.status.Active() {
			_, targetErr := b.updateTarget(false)
			err = errors.Join(err, targetErr)
		}
	}

	b.primed = true

	return err
}

func (b *Binding) read(side string, acc *accessor.Accessor, obj any) any {
	v, ok := acc.Get(obj)
	if !ok {
		b.report(diagnostic.DiagnosticDebug, side+" "+acc.Path().Text+" has no value")
	}

	return v
}

// updateTarget copies the source reading to the target. It reports whether
// a write was applied.
func (b *Binding) updateTarget(force bool) (bool, error) {
	fresh, ok := b.sourceAcc.Get(b.source)
	if !ok {
		return false, nil
	}

	if !force {
		switch b.detect {
		case DetectChanges:
			if b.primed && equal(fresh, b.prevSource) {
				return false, nil
			}
		default:
			if !equal(fresh, b.lastSource) {
				return false, nil
			}
		}
	}

	if err := b.targetAcc.Set(b.target, fresh); err != nil {
		return false, b.writeFailed("target", err)
	}

	if b.detect == DetectChanges {
		b.lastSource = fresh
		b.lastTarget, _ = b.targetAcc.Get(b.target)
	}

	return true, nil
}

// updateSource copies the target reading to the source.
func (b *Binding) updateSource() error {
	fresh, ok := b.targetAcc.Get(b.target)
	if !ok {
		return nil
	}

	switch b.detect {
	case DetectChanges:
		if !b.primed || equal(fresh, b.prevTarget) {
			return nil
		}
	default:
		if equal(fresh, b.lastTarget) {
			return nil
		}
	}

	if err := b.sourceAcc.Set(b.source, fresh); err != nil {
		return b.writeFailed("source", err)
	}

	if b.detect == DetectChanges {
		b.lastTarget = fresh
		b.lastSource, _ = b.sourceAcc.Get(b.source)
		// the source now mirrors the target; do not echo it back
		b.prevSource = b.lastSource
	}

	return nil
}

// writeFailed turns a write error into the binding outcome: permanent
// failures invalidate the binding, the rest are returned to the caller.
func (b *Binding) writeFailed(side string, err error) error {
	err = fmt.Errorf("%s: %w", side, err)

	if errors.Is(err, accessor.ErrNotWritable) || errors.Is(err, accessor.ErrNotConvertible) {
		b.invalidate(err)

		return nil
	}

	b.report(diagnostic.DiagnosticWarning, err.Error())

	return fmt.Errorf("binding %s: %w", b.name, err)
}

func (b *Binding) invalidate(reason error) {
	b.status = Status{Mode: Invalid, Reason: reason}
	b.report(diagnostic.DiagnosticError, reason.Error())
}

func (b *Binding) report(severity diagnostic.DiagnosticSeverity, message string) {
	b.sink.Report(severity, "binding "+b.name+": "+message)
}

// equal is reflect.DeepEqual except that a NaN equals a NaN of the same
// type.
func equal(a, b any) bool {
	if isNaN(a) && isNaN(b) && reflect.TypeOf(a) == reflect.TypeOf(b) {
		return true
	}

	return reflect.DeepEqual(a, b)
}

func isNaN(v any) bool {
	rv := reflect.ValueOf(v)

	return rv.CanFloat() && math.IsNaN(rv.Float())
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func describeMissing(sides []string) string {
	if len(sides) == 2 {
		return sides[0] + " and " + sides[1] + " are nil"
	}

	return sides[0] + " is nil"
}
