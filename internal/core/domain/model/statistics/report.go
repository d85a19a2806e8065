package statistics

import (
	"time"

	"logistics/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// TaskCounts breaks task totals down by status.
type TaskCounts struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	InProgress int `json:"in_progress"`
	OnHold     int `json:"on_hold"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}

// CompanyStats are the tenant-wide metrics.
type CompanyStats struct {
	CompanyID      kernel.UUID `json:"company_id"`
	Managers       int         `json:"managers"`
	Operators      int         `json:"operators"`
	Drivers        int         `json:"drivers"`
	Tasks          TaskCounts  `json:"tasks"`
	CompletionRate float64     `json:"completion_rate"`
}

// DriverStats are the route metrics of one driver.
type DriverStats struct {
	DriverID                 kernel.UUID     `json:"driver_id"`
	TotalRoutes              int             `json:"total_routes"`
	CompletedRoutes          int             `json:"completed_routes"`
	TotalDistance            decimal.Decimal `json:"total_distance"`
	AverageCompletionMinutes float64         `json:"average_completion_minutes"`
	OnTimeRoutes             int             `json:"on_time_routes"`
	OnTimeCounted            int             `json:"on_time_counted"`
	OnTimeRate               float64         `json:"on_time_rate"`
}

// SupervisorStats aggregate the tasks assigned to the drivers below a manager or operator.
type SupervisorStats struct {
	SupervisorID   kernel.UUID `json:"supervisor_id"`
	Role           string      `json:"role"`
	Subordinates   int         `json:"subordinates"`
	Tasks          TaskCounts  `json:"tasks"`
	CompletionRate float64     `json:"completion_rate"`
}

// Report is the full statistics view of one company over one period.
type Report struct {
	Period       Period            `json:"period"`
	Company      CompanyStats      `json:"company"`
	Drivers      []DriverStats     `json:"drivers"`
	Supervisors  []SupervisorStats `json:"supervisors"`
	CalculatedAt time.Time         `json:"calculated_at"`
}

// Rate divides part by total, returning 0 when total is 0.
func Rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}
