// Package binding keeps a member of one object synchronised with a member
// of another, once per externally driven tick.
//
// A Binding is created with New, which resolves and compiles both paths.
// Any failure at that point leaves the binding Invalid for good; Tick on an
// Invalid binding does nothing. While active, each Tick reads both ends,
// snapshots the readings and applies the policy of the binding's Mode:
//
//   - OneWayToTarget copies source to target.
//   - OneWayToSource copies target to source.
//   - TwoWay runs the source-direction update, then the target-direction one.
//   - OneTime copies source to target once, then turns Invalid.
//
// Change detection defaults to DetectLegacy, which propagates toward the
// target when the source reading is equal to the tick snapshot and toward
// the source when the target reading differs from it. WithChangeDetection
// selects DetectChanges, which propagates in both directions only when the
// reading differs from the previous tick.
package binding
