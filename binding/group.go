package binding

import (
	"errors"
	"iter"
	"slices"
)

// Group ticks a set of bindings in insertion order.
type Group struct {
	bindings []*Binding
}

// NewGroup returns a group holding bindings.
func NewGroup(bindings ...*Binding) *Group {
	return &Group{bindings: slices.Clone(bindings)}
}

// Add appends bindings to the group.
func (g *Group) Add(bindings ...*Binding) {
	g.bindings = append(g.bindings, bindings...)
}

// Len returns the number of bindings, active or not.
func (g *Group) Len() int { return len(g.bindings) }

// Active returns the number of bindings that still run.
func (g *Group) Active() int {
	n := 0

	for _, b := range g.bindings {
		if b.Status().Active() {
			n++
		}
	}

	return n
}

// All iterates over the bindings in insertion order.
func (g *Group) All() iter.Seq[*Binding] {
	return slices.Values(g.bindings)
}

// Tick ticks every binding once and joins their errors.
func (g *Group) Tick() error {
	var errs []error

	for _, b := range g.bindings {
		if err := b.Tick(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
