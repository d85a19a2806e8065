package kernel

import "time"

// Entity kinds that take part in status transitions.
const (
	EntityTask  = "task"
	EntityRoute = "route"
)

// Transition records one status change of a task or route.
// Cascade is true when the change was caused by a transition on the linked entity.
type Transition struct {
	Entity    string
	ID        UUID
	CompanyID UUID
	ActorID   UUID
	From      string
	To        string
	At        time.Time
	Cascade   bool
}
