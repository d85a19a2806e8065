package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"

	"github.com/shopspring/decimal"
)

type CreatedResponse struct {
	ID kernel.UUID `json:"id"`
}

type TaskRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	AssigneeID  *kernel.UUID `json:"assignee_id,omitempty"`
	Deadline    *time.Time   `json:"deadline,omitempty"`
}

type AssignRequest struct {
	DriverID kernel.UUID `json:"driver_id"`
}

type StatusRequest struct {
	Action string `json:"action"`
}

// PlanRequest lists waypoint locations in visiting order.
type PlanRequest struct {
	StartPoint       string          `json:"start_point"`
	EndPoint         string          `json:"end_point"`
	Waypoints        []string        `json:"waypoints"`
	Distance         decimal.Decimal `json:"distance"`
	EstimatedMinutes int             `json:"estimated_minutes"`
	StartTime        *time.Time      `json:"start_time,omitempty"`
}

func (p PlanRequest) plan() (route.Plan, error) {
	waypoints := make([]route.Waypoint, 0, len(p.Waypoints))
	for i, loc := range p.Waypoints {
		w, err := route.NewWaypoint(loc, i+1)
		if err != nil {
			return route.Plan{}, err
		}
		waypoints = append(waypoints, w)
	}
	return route.Plan{
		StartPoint:       p.StartPoint,
		EndPoint:         p.EndPoint,
		Waypoints:        waypoints,
		Distance:         p.Distance,
		EstimatedMinutes: p.EstimatedMinutes,
		StartTime:        p.StartTime,
	}, nil
}

type CreateRouteRequest struct {
	PlanRequest
	TaskID   *kernel.UUID `json:"task_id,omitempty"`
	DriverID *kernel.UUID `json:"driver_id,omitempty"`
}

// UpdateRouteRequest changes the plan, the driver, or both.
type UpdateRouteRequest struct {
	Plan     *PlanRequest `json:"plan,omitempty"`
	DriverID *kernel.UUID `json:"driver_id,omitempty"`
}

type DocumentRequest struct {
	Title        string       `json:"title"`
	FileRef      string       `json:"file_ref"`
	Category     string       `json:"category"`
	TaskID       *kernel.UUID `json:"task_id,omitempty"`
	RouteID      *kernel.UUID `json:"route_id,omitempty"`
	AccessUserID *kernel.UUID `json:"access_user_id,omitempty"`
}

type MessageRequest struct {
	RecipientID *kernel.UUID `json:"recipient_id,omitempty"`
	TaskID      *kernel.UUID `json:"task_id,omitempty"`
	Body        string       `json:"body"`
}

type RoleRequest struct {
	Role         string       `json:"role"`
	CompanyID    *kernel.UUID `json:"company_id,omitempty"`
	SupervisorID *kernel.UUID `json:"supervisor_id,omitempty"`
	AdminLevel   int          `json:"admin_level,omitempty"`
	License      string       `json:"license,omitempty"`
	Vehicle      string       `json:"vehicle,omitempty"`
}

type Task struct {
	ID          kernel.UUID  `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	CompanyID   kernel.UUID  `json:"company_id"`
	CreatorID   kernel.UUID  `json:"creator_id"`
	AssigneeID  *kernel.UUID `json:"assignee_id"`
	RouteID     *kernel.UUID `json:"route_id"`
	Deadline    *time.Time   `json:"deadline"`
	Overdue     bool         `json:"overdue"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func toTask(t queries.TaskResponse) Task {
	return Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		CompanyID:   t.CompanyID,
		CreatorID:   t.CreatorID,
		AssigneeID:  t.AssigneeID,
		RouteID:     t.RouteID,
		Deadline:    t.Deadline,
		Overdue:     t.Overdue,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type Waypoint struct {
	Location       string     `json:"location"`
	Order          int        `json:"order"`
	Completed      bool       `json:"completed"`
	CompletionTime *time.Time `json:"completion_time"`
}

type Progress struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Percentage     float64 `json:"percentage"`
	ActiveWaypoint *int    `json:"active_waypoint"`
}

type Route struct {
	ID               kernel.UUID     `json:"id"`
	CompanyID        kernel.UUID     `json:"company_id"`
	TaskID           *kernel.UUID    `json:"task_id"`
	DriverID         *kernel.UUID    `json:"driver_id"`
	Status           string          `json:"status"`
	StartPoint       string          `json:"start_point"`
	EndPoint         string          `json:"end_point"`
	Distance         decimal.Decimal `json:"distance"`
	EstimatedMinutes int             `json:"estimated_minutes"`
	StartTime        *time.Time      `json:"start_time"`
	ActualStartTime  *time.Time      `json:"actual_start_time"`
	EndTime          *time.Time      `json:"end_time"`
	Waypoints        []Waypoint      `json:"waypoints"`
	Progress         Progress        `json:"progress"`
	OnTime           *bool           `json:"on_time"`
}

func toRoute(r queries.RouteResponse) Route {
	waypoints := make([]Waypoint, len(r.Waypoints))
	for i, w := range r.Waypoints {
		waypoints[i] = Waypoint{
			Location:       w.Location,
			Order:          w.Order,
			Completed:      w.Completed,
			CompletionTime: w.CompletionTime,
		}
	}
	return Route{
		ID:               r.ID,
		CompanyID:        r.CompanyID,
		TaskID:           r.TaskID,
		DriverID:         r.DriverID,
		Status:           r.Status,
		StartPoint:       r.StartPoint,
		EndPoint:         r.EndPoint,
		Distance:         r.Distance,
		EstimatedMinutes: r.EstimatedMinutes,
		StartTime:        r.StartTime,
		ActualStartTime:  r.ActualStartTime,
		EndTime:          r.EndTime,
		Waypoints:        waypoints,
		Progress: Progress{
			Total:          r.Total,
			Completed:      r.Completed,
			Percentage:     r.Percentage,
			ActiveWaypoint: r.ActiveWaypoint,
		},
		OnTime: r.OnTime,
	}
}

type Document struct {
	ID         kernel.UUID  `json:"id"`
	Title      string       `json:"title"`
	FileRef    string       `json:"file_ref"`
	Category   string       `json:"category"`
	UploaderID kernel.UUID  `json:"uploader_id"`
	RouteID    *kernel.UUID `json:"route_id"`
	CreatedAt  time.Time    `json:"created_at"`
}

type Message struct {
	ID          kernel.UUID `json:"id"`
	SenderID    kernel.UUID `json:"sender_id"`
	RecipientID kernel.UUID `json:"recipient_id"`
	Body        string      `json:"body"`
	Read        bool        `json:"read"`
	SentAt      time.Time   `json:"sent_at"`
}

type Attachments struct {
	Documents []Document `json:"documents"`
	Messages  []Message  `json:"messages"`
}

func toAttachments(a queries.TaskAttachmentsResponse) Attachments {
	out := Attachments{
		Documents: make([]Document, len(a.Documents)),
		Messages:  make([]Message, len(a.Messages)),
	}
	for i, d := range a.Documents {
		out.Documents[i] = Document{
			ID:         d.ID,
			Title:      d.Title,
			FileRef:    d.FileRef,
			Category:   d.Category,
			UploaderID: d.UploaderID,
			RouteID:    d.RouteID,
			CreatedAt:  d.CreatedAt,
		}
	}
	for i, m := range a.Messages {
		out.Messages[i] = Message{
			ID:          m.ID,
			SenderID:    m.SenderID,
			RecipientID: m.RecipientID,
			Body:        m.Body,
			Read:        m.Read,
			SentAt:      m.SentAt,
		}
	}
	return out
}
