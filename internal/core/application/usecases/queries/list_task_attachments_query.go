package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrListTaskAttachmentsQueryIsNotConstructed = errors.New(
	"ListTaskAttachmentsQuery must be created via NewListTaskAttachmentsQuery constructor",
)

// ListTaskAttachmentsQuery returns the documents and the message thread of a task.
type ListTaskAttachmentsQuery struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	taskID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewListTaskAttachmentsQuery(actorID, taskID kernel.UUID) (ListTaskAttachmentsQuery, error) {
	if err := errors.Join(validateID("actor id", actorID), validateID("task id", taskID)); err != nil {
		return ListTaskAttachmentsQuery{}, err
	}
	return ListTaskAttachmentsQuery{actorID: actorID, taskID: taskID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListTaskAttachmentsQuery) Validate() error {
	return q.guard.Validate(ErrListTaskAttachmentsQueryIsNotConstructed)
}

func (q ListTaskAttachmentsQuery) ActorID() kernel.UUID { return q.actorID }
func (q ListTaskAttachmentsQuery) TaskID() kernel.UUID  { return q.taskID }

type DocumentResponse struct {
	ID         kernel.UUID
	Title      string
	FileRef    string
	Category   string
	UploaderID kernel.UUID
	RouteID    *kernel.UUID
	CreatedAt  time.Time
}

type MessageResponse struct {
	ID          kernel.UUID
	SenderID    kernel.UUID
	RecipientID kernel.UUID
	Body        string
	Read        bool
	SentAt      time.Time
}

type TaskAttachmentsResponse struct {
	Documents []DocumentResponse
	Messages  []MessageResponse
}
