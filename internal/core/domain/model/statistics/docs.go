// Package statistics holds the read-side report model: reporting periods,
// company/driver/supervisor metrics, and the snapshots persisted by the
// periodic statistics job.
package statistics
