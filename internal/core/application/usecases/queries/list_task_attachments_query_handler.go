package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/policy"
)

// ListTaskAttachmentsQueryHandler requires task visibility, then filters
// documents through CanViewDocument. Drivers only see messages they sent or received.
type ListTaskAttachmentsQueryHandler struct {
	repos ReadModel
}

func NewListTaskAttachmentsQueryHandler(repos ReadModel) ListTaskAttachmentsQueryHandler {
	return ListTaskAttachmentsQueryHandler{repos: repos}
}

func (h ListTaskAttachmentsQueryHandler) Handle(
	ctx context.Context,
	query ListTaskAttachmentsQuery,
) (TaskAttachmentsResponse, error) {
	if err := query.Validate(); err != nil {
		return TaskAttachmentsResponse{}, err
	}

	actor, err := h.repos.UserRepository().Get(ctx, query.ActorID())
	if err != nil {
		return TaskAttachmentsResponse{}, err
	}
	t, err := h.repos.TaskRepository().Get(ctx, query.TaskID())
	if err != nil {
		return TaskAttachmentsResponse{}, err
	}
	if err = policy.Require(policy.CanViewTask(actor, t), actor, policy.ActionView,
		kernel.EntityTask+" "+t.ID().String()); err != nil {
		return TaskAttachmentsResponse{}, err
	}

	docs, err := h.repos.DocumentRepository().ListByTask(ctx, t.ID())
	if err != nil {
		return TaskAttachmentsResponse{}, err
	}
	msgs, err := h.repos.MessageRepository().ListByTask(ctx, t.ID())
	if err != nil {
		return TaskAttachmentsResponse{}, err
	}

	resp := TaskAttachmentsResponse{
		Documents: make([]DocumentResponse, 0, len(docs)),
		Messages:  make([]MessageResponse, 0, len(msgs)),
	}
	links := policy.DocumentLinks{Task: t}
	for _, d := range docs {
		if !policy.CanViewDocument(actor, d, links) {
			continue
		}
		resp.Documents = append(resp.Documents, DocumentResponse{
			ID:         d.ID(),
			Title:      d.Title(),
			FileRef:    d.FileRef(),
			Category:   string(d.Category()),
			UploaderID: d.UploaderID(),
			RouteID:    d.Links().RouteID,
			CreatedAt:  d.CreatedAt(),
		})
	}

	driver := actor.Role() == org.Driver
	for _, m := range msgs {
		if driver && !m.SenderID().IsEqual(actor.ID()) && !m.RecipientID().IsEqual(actor.ID()) {
			continue
		}
		resp.Messages = append(resp.Messages, MessageResponse{
			ID:          m.ID(),
			SenderID:    m.SenderID(),
			RecipientID: m.RecipientID(),
			Body:        m.Body(),
			Read:        m.Read(),
			SentAt:      m.SentAt(),
		})
	}
	return resp, nil
}
