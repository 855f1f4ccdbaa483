// Package kernel provides core domain primitives shared by every aggregate in
// the delivery system.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//
// These primitives are immutable and thread-safe, and enforce that identifiers
// entering the domain from outside (database, API) are always valid.
package kernel
