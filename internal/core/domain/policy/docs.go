// Package policy decides who may do what to tasks, routes, documents and
// other users.
//
// Every predicate is a pure function of the actor and the target. A denial is
// an ordinary false, never an error. When several rules could grant the same
// action they are OR'd: the most permissive one wins.
//
// Common rules:
//   - Admin is allowed everything.
//   - Everyone else needs a company; an unassigned user gets nothing
//     tenant-scoped.
//   - A driver additionally needs a direct relation to the target (assignee,
//     route driver, uploader, explicit grant).
//   - Inactive users are denied everything.
//
// Require wraps a predicate into an errs.ForbiddenError for command handlers.
package policy
