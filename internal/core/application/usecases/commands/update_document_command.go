package commands

import (
	"errors"

	"logistics/internal/core/domain/model/document"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrUpdateDocumentCommandIsNotConstructed = errors.New(
	"UpdateDocumentCommand must be created via NewUpdateDocumentCommand constructor",
)

// UpdateDocumentCommand edits title and category and replaces the access
// grant. A nil AccessUserID revokes the grant.
type UpdateDocumentCommand struct { //nolint:recvcheck //using for validation
	actorID      kernel.UUID
	documentID   kernel.UUID
	title        string
	category     document.Category
	accessUserID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewUpdateDocumentCommand(
	actorID, documentID kernel.UUID,
	title string,
	category document.Category,
	accessUserID *kernel.UUID,
) (UpdateDocumentCommand, error) {
	if err := errors.Join(
		validateID("actor id", actorID),
		validateID("document id", documentID),
		validateOptionalID("access user id", accessUserID),
		category.Validate(),
	); err != nil {
		return UpdateDocumentCommand{}, err
	}

	return UpdateDocumentCommand{
		actorID:      actorID,
		documentID:   documentID,
		title:        title,
		category:     category,
		accessUserID: accessUserID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDocumentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDocumentCommandIsNotConstructed)
}

func (c UpdateDocumentCommand) ActorID() kernel.UUID        { return c.actorID }
func (c UpdateDocumentCommand) DocumentID() kernel.UUID     { return c.documentID }
func (c UpdateDocumentCommand) Title() string               { return c.title }
func (c UpdateDocumentCommand) Category() document.Category { return c.category }
func (c UpdateDocumentCommand) AccessUserID() *kernel.UUID  { return c.accessUserID }
