// Package utils holds small generic helpers shared by the converter and the
// sample scene.
package utils

import "cmp"

// IsInRange reports whether lo <= v <= hi.
func IsInRange[T cmp.Ordered](lo, v, hi T) bool {
	return cmp.Compare(lo, v) <= 0 && cmp.Compare(v, hi) <= 0
}
