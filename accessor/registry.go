package accessor

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"propbind/primitive"
)

// Default is the process-wide registry.
var Default = NewRegistry()

// Registry caches compiled accessors per (type, path, categories). Failed
// resolutions are cached as well. Safe for concurrent use.
type Registry struct {
	entries sync.Map // map[registryKey]*registryEntry
	size    atomic.Int64
	flight  singleflight.Group
}

type registryKey struct {
	root    reflect.Type
	path    string
	allowed primitive.CategoryEnum
}

// String identifies the key by the type's address, which is unique per
// type for the life of the process.
func (k registryKey) String() string {
	return fmt.Sprintf("%p|%s|%d", k.root, k.path, k.allowed)
}

type registryEntry struct {
	accessor *Accessor
	err      error
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Lookup returns the accessor for path on root, resolving and compiling it
// on first use.
func (r *Registry) Lookup(root reflect.Type, path string, allowed primitive.CategoryEnum) (*Accessor, error) {
	key := registryKey{root: root, path: strings.Join(splitPath(path), "."), allowed: allowed}

	if v, ok := r.entries.Load(key); ok {
		e := v.(*registryEntry)

		return e.accessor, e.err
	}

	// concurrent misses on one key resolve once
	v, _, _ := r.flight.Do(key.String(), func() (any, error) {
		if v, ok := r.entries.Load(key); ok {
			return v, nil
		}

		entry := &registryEntry{}
		if p, err := ResolveType(root, path); err != nil {
			entry.err = err
		} else {
			entry.accessor = Compile(p, allowed)
		}

		v, loaded := r.entries.LoadOrStore(key, entry)
		if !loaded {
			r.size.Add(1)
		}

		return v, nil
	})

	e := v.(*registryEntry)

	return e.accessor, e.err
}

// Len returns the number of cached entries.
func (r *Registry) Len() int {
	return int(r.size.Load())
}

// Reset drops every cached entry.
func (r *Registry) Reset() {
	r.entries.Range(func(k, _ any) bool {
		if _, ok := r.entries.LoadAndDelete(k); ok {
			r.size.Add(-1)
		}

		return true
	})
}
