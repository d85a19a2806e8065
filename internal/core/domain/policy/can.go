package policy

import (
	"logistics/internal/core/domain/model/document"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/task"
)

// LinkedDocument pairs a document with its loaded links for Can.
type LinkedDocument struct {
	Document *document.Document
	Links    DocumentLinks
}

// Can dispatches on the action and the target type. Unsupported
// combinations are denied.
func Can(actor *org.User, action Action, target any) bool {
	switch t := target.(type) {
	case *task.Task:
		return canTask(actor, action, t)
	case *route.Route:
		return canRoute(actor, action, t)
	case LinkedDocument:
		return canDocument(actor, action, t)
	case *org.User:
		if action == ActionMessage {
			return CanMessage(actor, t)
		}
		if action == ActionEdit {
			return CanManageUser(actor, t)
		}
	case kernel.UUID:
		if action == ActionCreate {
			return CanCreate(actor, t)
		}
		if action == ActionView {
			return CanViewReport(actor, t)
		}
	}
	return false
}

func canTask(actor *org.User, action Action, t *task.Task) bool {
	switch action {
	case ActionView:
		return CanViewTask(actor, t)
	case ActionEdit, ActionCancel:
		return CanEditTask(actor, t)
	case ActionDelete:
		return CanDeleteTask(actor, t)
	case ActionComplete:
		return CanCompleteTask(actor, t)
	case ActionDrive:
		return CanStartTask(actor, t)
	default:
		return false
	}
}

func canRoute(actor *org.User, action Action, r *route.Route) bool {
	switch action {
	case ActionView:
		return CanViewRoute(actor, r)
	case ActionEdit:
		return CanEditRoute(actor, r)
	case ActionDelete:
		return CanDeleteRoute(actor, r)
	case ActionCancel:
		return CanCancelRoute(actor, r)
	case ActionDrive, ActionComplete:
		return CanDriveRoute(actor, r)
	default:
		return false
	}
}

func canDocument(actor *org.User, action Action, d LinkedDocument) bool {
	if d.Document == nil {
		return false
	}
	switch action {
	case ActionView:
		return CanViewDocument(actor, d.Document, d.Links)
	case ActionEdit:
		return CanEditDocument(actor, d.Document)
	case ActionDelete:
		return CanDeleteDocument(actor, d.Document, d.Links)
	default:
		return false
	}
}
