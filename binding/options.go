package binding

import (
	"propbind/accessor"
	"propbind/diagnostic"
	"propbind/primitive"
)

// Option configures a Binding.
type Option func(*Binding)

// WithSink sets where the binding reports diagnostics. A nil sink keeps the
// default, which discards everything.
func WithSink(sink diagnostic.Sink) Option {
	return func(b *Binding) {
		if sink != nil {
			b.sink = sink
		}
	}
}

// WithName names the binding in diagnostics and errors.
func WithName(name string) Option {
	return func(b *Binding) {
		b.name = name
	}
}

// WithRegistry sets the registry accessors are looked up in.
func WithRegistry(r *accessor.Registry) Option {
	return func(b *Binding) {
		if r != nil {
			b.registry = r
		}
	}
}

// WithCategories restricts the value conversions applied on write.
func WithCategories(allowed primitive.CategoryEnum) Option {
	return func(b *Binding) {
		b.categories = allowed
	}
}

// WithChangeDetection selects the change detection policy.
func WithChangeDetection(detect ChangeDetection) Option {
	return func(b *Binding) {
		b.detect = detect
	}
}
