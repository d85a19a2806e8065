package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDeleteDocumentCommandIsNotConstructed = errors.New(
	"DeleteDocumentCommand must be created via NewDeleteDocumentCommand constructor",
)

type DeleteDocumentCommand struct { //nolint:recvcheck //using for validation
	actorID    kernel.UUID
	documentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteDocumentCommand(actorID, documentID kernel.UUID) (DeleteDocumentCommand, error) {
	if err := errors.Join(
		validateID("actor id", actorID),
		validateID("document id", documentID),
	); err != nil {
		return DeleteDocumentCommand{}, err
	}

	return DeleteDocumentCommand{actorID: actorID, documentID: documentID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteDocumentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDocumentCommandIsNotConstructed)
}

func (c DeleteDocumentCommand) ActorID() kernel.UUID    { return c.actorID }
func (c DeleteDocumentCommand) DocumentID() kernel.UUID { return c.documentID }
