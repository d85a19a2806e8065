// Package services contains the domain services that coordinate more than one
// aggregate:
//
//   - TaskLifecycle applies task transitions and cascades them into the linked route.
//   - RouteLifecycle applies route transitions, waypoint progress, and cascades
//     them into the linked task.
//   - StatisticsAggregator computes reports from task and route snapshots.
//
// Lifecycle services check the access policy before touching any aggregate and
// return one kernel.Transition per status change they made, the primary change
// first. Persisting the aggregates and publishing the transitions is left to
// the caller.
package services
