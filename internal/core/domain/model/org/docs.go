// Package org models the tenants of the system and the people working for them.
//
// A Company is a tenant. Every User carries exactly one role profile, a tagged
// variant (AdminProfile, OwnerProfile, ManagerProfile, OperatorProfile,
// DriverProfile) whose type determines the user's Role. Changing a role swaps
// the whole profile in a single step, so a user can never hold two profiles or
// a profile that disagrees with its role.
//
// Hierarchy resolves the reporting chain Manager -> Operator -> Driver inside a
// company from a roster of users.
package org
