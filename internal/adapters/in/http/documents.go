package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/document"

	"github.com/labstack/echo/v4"
)

// AttachDocument handles POST /api/v1/companies/:companyID/documents.
// The file itself is uploaded elsewhere; file_ref is its storage key.
func (s *Server) AttachDocument(c echo.Context) error {
	companyID, err := pathID(c, "companyID")
	if err != nil {
		return err
	}
	var req DocumentRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewAttachDocumentCommand(
		actorFrom(c), companyID,
		req.Title, req.FileRef,
		document.Category(req.Category),
		document.Links{TaskID: req.TaskID, RouteID: req.RouteID},
		req.AccessUserID,
	)
	if err != nil {
		return err
	}
	id, err := s.uc.AttachDocument.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return created(c, id)
}

// UpdateDocument handles PUT /api/v1/documents/:documentID.
func (s *Server) UpdateDocument(c echo.Context) error {
	documentID, err := pathID(c, "documentID")
	if err != nil {
		return err
	}
	var req DocumentRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewUpdateDocumentCommand(
		actorFrom(c), documentID, req.Title, document.Category(req.Category), req.AccessUserID,
	)
	if err != nil {
		return err
	}
	if err = s.uc.UpdateDocument.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteDocument handles DELETE /api/v1/documents/:documentID.
func (s *Server) DeleteDocument(c echo.Context) error {
	documentID, err := pathID(c, "documentID")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteDocumentCommand(actorFrom(c), documentID)
	if err != nil {
		return err
	}
	if err = s.uc.DeleteDocument.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SendMessage handles POST /api/v1/messages. Without a recipient the message
// goes to the other side of the task thread.
func (s *Server) SendMessage(c echo.Context) error {
	var req MessageRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewSendMessageCommand(actorFrom(c), req.RecipientID, req.TaskID, req.Body)
	if err != nil {
		return err
	}
	id, err := s.uc.SendMessage.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return created(c, id)
}

// MarkMessageRead handles POST /api/v1/messages/:messageID/read.
func (s *Server) MarkMessageRead(c echo.Context) error {
	messageID, err := pathID(c, "messageID")
	if err != nil {
		return err
	}
	cmd, err := commands.NewMarkMessageReadCommand(actorFrom(c), messageID)
	if err != nil {
		return err
	}
	if err = s.uc.MarkRead.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
