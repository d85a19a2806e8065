// Package routerepo persists Route aggregates. Waypoints are stored as a
// JSON array on the route row.
package routerepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/dbutil"
	"logistics/internal/core/domain/model/route"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RouteDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	TaskID           *uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	DriverID         *uuid.UUID      `gorm:"type:uuid;index"`
	Status           string          `gorm:"size:20;not null;index"`
	StartPoint       string          `gorm:"size:255;not null"`
	EndPoint         string          `gorm:"size:255;not null"`
	Waypoints        []WaypointDTO   `gorm:"serializer:json;type:jsonb"`
	Distance         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	EstimatedMinutes int             `gorm:"not null"`
	StartTime        *time.Time      `gorm:"index"`
	ActualStartTime  *time.Time
	EndTime          *time.Time
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
	Version          int64     `gorm:"not null;default:1"`
}

func (RouteDTO) TableName() string {
	return "routes"
}

// WaypointDTO is one element of the waypoints JSON array.
type WaypointDTO struct {
	Location       string     `json:"location"`
	Order          int        `json:"order"`
	Completed      bool       `json:"completed"`
	CompletionTime *time.Time `json:"completion_time"`
}

func fromDomain(r *route.Route) RouteDTO {
	waypoints := r.Waypoints()
	wps := make([]WaypointDTO, 0, len(waypoints))
	for _, w := range waypoints {
		wps = append(wps, WaypointDTO{
			Location:       w.Location(),
			Order:          w.Order(),
			Completed:      w.Completed(),
			CompletionTime: w.CompletionTime(),
		})
	}

	return RouteDTO{
		ID:               r.ID().Bytes(),
		CompanyID:        r.CompanyID().Bytes(),
		TaskID:           dbutil.UUIDPtr(r.TaskID()),
		DriverID:         dbutil.UUIDPtr(r.DriverID()),
		Status:           r.Status().String(),
		StartPoint:       r.StartPoint(),
		EndPoint:         r.EndPoint(),
		Waypoints:        wps,
		Distance:         r.Distance(),
		EstimatedMinutes: r.EstimatedMinutes(),
		StartTime:        r.StartTime(),
		ActualStartTime:  r.ActualStartTime(),
		EndTime:          r.EndTime(),
		CreatedAt:        r.CreatedAt(),
		UpdatedAt:        r.UpdatedAt(),
		Version:          r.Version(),
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := dbutil.ID(dto.ID)
	if err != nil {
		return nil, err
	}
	companyID, err := dbutil.ID(dto.CompanyID)
	if err != nil {
		return nil, err
	}
	taskID, err := dbutil.IDPtr(dto.TaskID)
	if err != nil {
		return nil, err
	}
	driverID, err := dbutil.IDPtr(dto.DriverID)
	if err != nil {
		return nil, err
	}
	status, err := route.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	waypoints := make([]route.Waypoint, 0, len(dto.Waypoints))
	for _, w := range dto.Waypoints {
		wp, wpErr := route.RestoreWaypoint(w.Location, w.Order, w.Completed, dbutil.UTC(w.CompletionTime))
		if wpErr != nil {
			return nil, wpErr
		}
		waypoints = append(waypoints, wp)
	}

	plan := route.Plan{
		StartPoint:       dto.StartPoint,
		EndPoint:         dto.EndPoint,
		Waypoints:        waypoints,
		Distance:         dto.Distance,
		EstimatedMinutes: dto.EstimatedMinutes,
		StartTime:        dbutil.UTC(dto.StartTime),
	}

	return route.RestoreRoute(id, companyID, taskID, driverID, plan, status,
		dbutil.UTC(dto.ActualStartTime), dbutil.UTC(dto.EndTime), dto.CreatedAt.UTC(), dto.UpdatedAt.UTC(), dto.Version)
}
