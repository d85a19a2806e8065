package commands

import (
	"errors"

	"logistics/internal/core/domain/model/document"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAttachDocumentCommandIsNotConstructed = errors.New(
	"AttachDocumentCommand must be created via NewAttachDocumentCommand constructor",
)

// AttachDocumentCommand records an already stored file as a company document,
// optionally linked to a task and/or route and granted to one user.
type AttachDocumentCommand struct { //nolint:recvcheck //using for validation
	actorID      kernel.UUID
	companyID    kernel.UUID
	title        string
	fileRef      string
	category     document.Category
	links        document.Links
	accessUserID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewAttachDocumentCommand(
	actorID, companyID kernel.UUID,
	title, fileRef string,
	category document.Category,
	links document.Links,
	accessUserID *kernel.UUID,
) (AttachDocumentCommand, error) {
	if err := errors.Join(
		validateID("actor id", actorID),
		validateID("company id", companyID),
		validateOptionalID("task id", links.TaskID),
		validateOptionalID("route id", links.RouteID),
		validateOptionalID("access user id", accessUserID),
		category.Validate(),
	); err != nil {
		return AttachDocumentCommand{}, err
	}

	return AttachDocumentCommand{
		actorID:      actorID,
		companyID:    companyID,
		title:        title,
		fileRef:      fileRef,
		category:     category,
		links:        links,
		accessUserID: accessUserID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c AttachDocumentCommand) Validate() error {
	return c.guard.Validate(ErrAttachDocumentCommandIsNotConstructed)
}

func (c AttachDocumentCommand) ActorID() kernel.UUID        { return c.actorID }
func (c AttachDocumentCommand) CompanyID() kernel.UUID      { return c.companyID }
func (c AttachDocumentCommand) Title() string               { return c.title }
func (c AttachDocumentCommand) FileRef() string             { return c.fileRef }
func (c AttachDocumentCommand) Category() document.Category { return c.category }
func (c AttachDocumentCommand) Links() document.Links       { return c.links }
func (c AttachDocumentCommand) AccessUserID() *kernel.UUID  { return c.accessUserID }
