package task

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/pkg/errs"
)

// ErrTaskIsNotConstructed is returned by Validate on a zero-value Task.
var ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask or RestoreTask")

const maxTitleLength = 200

// Task is the aggregate root of a unit of delivery work inside one company.
//
// Invariants:
//   - companyID never changes after creation
//   - the assignee, when set, is a driver of the same company
//   - status changes only through the transition methods
type Task struct {
	kernel.Versioned

	id          kernel.UUID
	title       string
	description string
	status      Status
	companyID   kernel.UUID
	creatorID   kernel.UUID
	assigneeID  *kernel.UUID
	deadline    *time.Time
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewTask creates a task in status New.
func NewTask(
	id kernel.UUID,
	title, description string,
	companyID, creatorID kernel.UUID,
	deadline *time.Time,
	now time.Time,
) (*Task, error) {
	t := &Task{
		status:        New,
		description:   strings.TrimSpace(description),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setTitle(title),
		t.setCompany(companyID),
		t.setCreator(creatorID),
	); err != nil {
		return nil, err
	}
	t.deadline = copyTime(deadline)

	return t, nil
}

// RestoreTask rebuilds a task from persisted state without re-running assignment checks.
func RestoreTask(
	id kernel.UUID,
	title, description string,
	status Status,
	companyID, creatorID kernel.UUID,
	assigneeID *kernel.UUID,
	deadline *time.Time,
	createdAt, updatedAt time.Time,
	version int64,
) (*Task, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	t, err := NewTask(id, title, description, companyID, creatorID, deadline, createdAt)
	if err != nil {
		return nil, err
	}
	if assigneeID != nil {
		if err = assigneeID.Validate(); err != nil {
			return nil, err
		}
		t.assigneeID = kernel.Ptr(*assigneeID)
	}
	t.status = status
	t.updatedAt = updatedAt
	t.SetVersion(version)
	return t, nil
}

func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

func (t *Task) ID() kernel.UUID          { return t.id }
func (t *Task) Title() string            { return t.title }
func (t *Task) Description() string      { return t.description }
func (t *Task) Status() Status           { return t.status }
func (t *Task) CompanyID() kernel.UUID   { return t.companyID }
func (t *Task) CreatorID() kernel.UUID   { return t.creatorID }
func (t *Task) Assignee() *kernel.UUID   { return t.assigneeID }
func (t *Task) Deadline() *time.Time     { return copyTime(t.deadline) }
func (t *Task) CreatedAt() time.Time     { return t.createdAt }
func (t *Task) UpdatedAt() time.Time     { return t.updatedAt }
func (t *Task) IsEqual(other *Task) bool { return other != nil && t.id.IsEqual(other.id) }

// IsCreator reports whether id created the task.
func (t *Task) IsCreator(id kernel.UUID) bool { return t.creatorID.IsEqual(id) }

// IsAssignee reports whether id is the assigned driver.
func (t *Task) IsAssignee(id kernel.UUID) bool { return kernel.EqualPtr(t.assigneeID, id) }

// IsOverdue reports whether the deadline passed while the task is still open.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.deadline != nil && !t.status.IsTerminal() && now.After(*t.deadline)
}

// Assign sets the assignee. The driver must belong to the task's company.
// Assignment does not change the status and is refused on terminal tasks.
func (t *Task) Assign(driver *org.User, now time.Time) error {
	if t.status.IsTerminal() {
		return t.status.invalid("assign")
	}
	if err := ValidateAssignee(driver, t.companyID); err != nil {
		return err
	}
	t.assigneeID = kernel.Ptr(driver.ID())
	t.updatedAt = now
	return nil
}

// ValidateAssignee checks that u can be assigned to a task of companyID.
func ValidateAssignee(u *org.User, companyID kernel.UUID) error {
	if err := u.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("assignee", err)
	}
	if u.Role() != org.Driver {
		return errs.NewValueIsInvalidError("assignee must be a driver")
	}
	if !u.BelongsTo(companyID) {
		return errs.NewValueIsInvalidError("assignee must belong to the task company")
	}
	return nil
}

// Update edits the descriptive fields. Refused on terminal tasks.
func (t *Task) Update(title, description string, deadline *time.Time, now time.Time) error {
	if t.status.IsTerminal() {
		return t.status.invalid("edit")
	}
	if err := t.setTitle(title); err != nil {
		return err
	}
	t.description = strings.TrimSpace(description)
	t.deadline = copyTime(deadline)
	t.updatedAt = now
	return nil
}

func (t *Task) Start(now time.Time) error    { return t.apply(Status.Start, now) }
func (t *Task) Hold(now time.Time) error     { return t.apply(Status.Hold, now) }
func (t *Task) Resume(now time.Time) error   { return t.apply(Status.Resume, now) }
func (t *Task) Complete(now time.Time) error { return t.apply(Status.Complete, now) }
func (t *Task) Cancel(now time.Time) error   { return t.apply(Status.Cancel, now) }
func (t *Task) Reset(now time.Time) error    { return t.apply(Status.Reset, now) }

func (t *Task) apply(transition func(Status) (Status, error), now time.Time) error {
	next, err := transition(t.status)
	if err != nil {
		return err
	}
	t.status = next
	t.updatedAt = now
	return nil
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if len(title) > maxTitleLength {
		return errs.NewValueIsOutOfRangeError("title length", len(title), 1, maxTitleLength)
	}
	t.title = title
	return nil
}

func (t *Task) setCompany(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company id", err)
	}
	t.companyID = id
	return nil
}

func (t *Task) setCreator(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("creator id", err)
	}
	t.creatorID = id
	return nil
}

func copyTime(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
