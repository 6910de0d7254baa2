// Package accessor resolves dotted member paths against Go types and
// compiles them into accessors that read and write the terminal member of
// a live object graph.
//
// A path such as "Stats.Score" is resolved once, statically, against the
// declared type of each member. Two member kinds are recognised:
//
//   - Field: an exported struct field, promoted fields included.
//   - Property: a method pair following the Go getter/setter convention,
//     X() or GetX() for reading and SetX(v) for writing.
//
// Compiled accessors are immutable and safe to share. Registry caches them
// per (type, path, conversion categories) so repeated bindings on the same
// type reuse the same accessor.
package accessor
