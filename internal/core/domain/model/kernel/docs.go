// Package kernel provides the primitives shared by every aggregate of the
// logistics domain.
//
// The package includes:
//   - UUID: the identifier value object used by users, companies, tasks, routes,
//     documents and messages
//   - Clock: the source of "now" injected into lifecycle services so that tests
//     can pin timestamps
//   - Versioned: the optimistic-lock counter embedded by mutable aggregates
//   - Transition: the record of a single task or route status change
package kernel
