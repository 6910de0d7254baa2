// Package analyze loads Go packages and checks binding paths against their
// types without running any code.
//
// It uses golang.org/x/tools/go/packages with go/types to collect the
// exported named types of the loaded packages, then resolves dotted paths
// over them with the same member rules the accessor package applies at run
// time: exported fields first, then X()/GetX() and SetX(v) properties.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeGraph: every exported named type of the loaded packages
//   - StaticPath: a path resolved over go/types
package analyze
