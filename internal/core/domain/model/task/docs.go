// Package task contains the Task aggregate and its status state machine.
//
// State transitions:
//
//	New ──> InProgress ──┬──> Completed
//	 │  \       ^  │     │
//	 │   \      │  v     └──> Cancelled
//	 │    └──> OnHold
//	 │
//	 └──> Completed | Cancelled
//
// Completed and Cancelled are terminal. Completing or cancelling is legal from
// every non-terminal status, including New.
package task
