// Package route contains the Route aggregate: a planned trip with ordered
// waypoints, assigned to one driver and optionally linked to one task.
//
// State transitions:
//
//	Planned ──> InProgress ──> Completed
//	   │            │
//	   └────────────┴──> Cancelled
//
// Waypoints are completed strictly in order while the route is InProgress.
// Completing the last waypoint does not complete the route.
package route
