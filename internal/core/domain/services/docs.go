// Package services provides domain services that coordinate business rules
// spanning more than one aggregate.
//
// The package includes:
//   - OrderAccessPolicy: decides whether a caller may see or act on an order,
//     resolving customer ownership through the caller's user account
package services
