package policy

import (
	"logistics/internal/core/domain/model/document"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/task"
)

// DocumentLinks carries the task and route a document is attached to, when loaded.
type DocumentLinks struct {
	Task  *task.Task
	Route *route.Route
}

func usable(actor *org.User) bool {
	return actor != nil && actor.Validate() == nil && actor.Active()
}

func isAdmin(actor *org.User) bool {
	return usable(actor) && actor.Role() == org.Admin
}

// member reports whether actor is an active user of companyID.
func member(actor *org.User, companyID kernel.UUID) bool {
	return usable(actor) && actor.BelongsTo(companyID)
}

// CanCreate allows creating tasks and routes in companyID.
func CanCreate(actor *org.User, companyID kernel.UUID) bool {
	if isAdmin(actor) {
		return true
	}
	return member(actor, companyID) && actor.Role().IsStaff()
}

// CanViewTask: any member of the company; drivers only for tasks assigned to them.
func CanViewTask(actor *org.User, t *task.Task) bool {
	if isAdmin(actor) {
		return true
	}
	if !member(actor, t.CompanyID()) {
		return false
	}
	if actor.Role() == org.Driver {
		return t.IsAssignee(actor.ID())
	}
	return true
}

// CanEditTask: owner, manager, operator or the creator.
func CanEditTask(actor *org.User, t *task.Task) bool {
	if isAdmin(actor) {
		return true
	}
	if !member(actor, t.CompanyID()) {
		return false
	}
	return actor.HasRole(org.CompanyOwner, org.Manager, org.Operator) || t.IsCreator(actor.ID())
}

// CanDeleteTask: owner, manager or the creator.
func CanDeleteTask(actor *org.User, t *task.Task) bool {
	if isAdmin(actor) {
		return true
	}
	if !member(actor, t.CompanyID()) {
		return false
	}
	return actor.HasRole(org.CompanyOwner, org.Manager) || t.IsCreator(actor.ID())
}

// CanCompleteTask: owner, manager, the creator or the assignee.
func CanCompleteTask(actor *org.User, t *task.Task) bool {
	if isAdmin(actor) {
		return true
	}
	if !member(actor, t.CompanyID()) {
		return false
	}
	return actor.HasRole(org.CompanyOwner, org.Manager) ||
		t.IsCreator(actor.ID()) ||
		t.IsAssignee(actor.ID())
}

// CanStartTask: the assignee, or anyone who may edit the task.
func CanStartTask(actor *org.User, t *task.Task) bool {
	if member(actor, t.CompanyID()) && t.IsAssignee(actor.ID()) {
		return true
	}
	return CanEditTask(actor, t)
}

// CanViewRoute: any member of the company; drivers only for their own routes.
func CanViewRoute(actor *org.User, r *route.Route) bool {
	if isAdmin(actor) {
		return true
	}
	if !member(actor, r.CompanyID()) {
		return false
	}
	if actor.Role() == org.Driver {
		return r.IsDriver(actor.ID())
	}
	return true
}

// CanEditRoute: owner, manager, operator; the driver while the route is not completed.
func CanEditRoute(actor *org.User, r *route.Route) bool {
	if isAdmin(actor) {
		return true
	}
	if !member(actor, r.CompanyID()) {
		return false
	}
	if actor.HasRole(org.CompanyOwner, org.Manager, org.Operator) {
		return true
	}
	return actor.Role() == org.Driver && r.IsDriver(actor.ID()) && r.Status() != route.Completed
}

// CanReassignRoute: anyone who may edit the route except drivers.
func CanReassignRoute(actor *org.User, r *route.Route) bool {
	return CanEditRoute(actor, r) && actor.Role() != org.Driver
}

// CanDeleteRoute: owner or manager.
func CanDeleteRoute(actor *org.User, r *route.Route) bool {
	if isAdmin(actor) {
		return true
	}
	return member(actor, r.CompanyID()) && actor.HasRole(org.CompanyOwner, org.Manager)
}

// CanCancelRoute: owner, manager, operator; the driver only before the route started.
func CanCancelRoute(actor *org.User, r *route.Route) bool {
	if isAdmin(actor) {
		return true
	}
	if !member(actor, r.CompanyID()) {
		return false
	}
	if actor.HasRole(org.CompanyOwner, org.Manager, org.Operator) {
		return true
	}
	return actor.Role() == org.Driver && r.IsDriver(actor.ID()) && r.Status() == route.Planned
}

// CanDriveRoute is reserved to the assigned driver: start, complete and waypoint progress.
func CanDriveRoute(actor *org.User, r *route.Route) bool {
	return member(actor, r.CompanyID()) && actor.Role() == org.Driver && r.IsDriver(actor.ID())
}

// CanViewDocument: any member of the company; drivers only when they uploaded it,
// were granted access, or are assigned to the linked task or route.
func CanViewDocument(actor *org.User, d *document.Document, links DocumentLinks) bool {
	if isAdmin(actor) {
		return true
	}
	if !member(actor, d.CompanyID()) {
		return false
	}
	if actor.Role() != org.Driver {
		return true
	}
	id := actor.ID()
	return d.IsUploader(id) ||
		d.HasGrant(id) ||
		(links.Task != nil && links.Task.IsAssignee(id)) ||
		(links.Route != nil && links.Route.IsDriver(id))
}

// CanAttachDocument allows uploading into companyID. Staff may upload
// anything; drivers only onto a task or route they can see. Linked entities
// must belong to the same company.
func CanAttachDocument(actor *org.User, companyID kernel.UUID, links DocumentLinks) bool {
	if links.Task != nil && !links.Task.CompanyID().IsEqual(companyID) {
		return false
	}
	if links.Route != nil && !links.Route.CompanyID().IsEqual(companyID) {
		return false
	}
	if CanCreate(actor, companyID) {
		return true
	}
	if !member(actor, companyID) {
		return false
	}
	return (links.Task != nil && CanViewTask(actor, links.Task)) ||
		(links.Route != nil && CanViewRoute(actor, links.Route))
}

// CanEditDocument: the uploader, owner or manager.
func CanEditDocument(actor *org.User, d *document.Document) bool {
	if isAdmin(actor) {
		return true
	}
	if !member(actor, d.CompanyID()) {
		return false
	}
	return d.IsUploader(actor.ID()) || actor.HasRole(org.CompanyOwner, org.Manager)
}

// CanDeleteDocument extends CanEditDocument to the creator of the linked task.
func CanDeleteDocument(actor *org.User, d *document.Document, links DocumentLinks) bool {
	if CanEditDocument(actor, d) {
		return true
	}
	return member(actor, d.CompanyID()) && links.Task != nil && links.Task.IsCreator(actor.ID())
}

// CanMessage: both users in the same company; drivers cannot message drivers
// and may reach only their own operator among operators.
func CanMessage(actor, other *org.User) bool {
	if !usable(actor) || other == nil || other.Validate() != nil || actor.IsEqual(other) {
		return false
	}
	if isAdmin(actor) {
		return true
	}
	companyID, ok := actor.CompanyID()
	if !ok || !other.BelongsTo(companyID) {
		return false
	}
	if actor.Role() != org.Driver {
		return true
	}
	switch other.Role() {
	case org.Driver:
		return false
	case org.Operator:
		operatorID, ok := org.SupervisorOf(actor)
		return ok && operatorID.IsEqual(other.ID())
	default:
		return true
	}
}

// CanMarkMessageRead: only the recipient.
func CanMarkMessageRead(actor *org.User, m *document.Message) bool {
	return usable(actor) && m != nil && m.RecipientID().IsEqual(actor.ID())
}

// CanDeleteCompany is reserved to admins.
func CanDeleteCompany(actor *org.User) bool {
	return isAdmin(actor)
}

// CanManageUser allows changing another user's role: admins anywhere, owners inside their company.
func CanManageUser(actor, target *org.User) bool {
	if isAdmin(actor) {
		return true
	}
	if !usable(actor) || actor.Role() != org.CompanyOwner || actor.IsEqual(target) {
		return false
	}
	companyID, ok := actor.CompanyID()
	return ok && target.BelongsTo(companyID)
}

// CanGrantProfile limits which profile an actor may hand out: admins any,
// owners only non-admin profiles inside their own company.
func CanGrantProfile(actor *org.User, p org.Profile) bool {
	if isAdmin(actor) {
		return true
	}
	if !usable(actor) || actor.Role() != org.CompanyOwner || p == nil || p.Role() == org.Admin {
		return false
	}
	companyID, ok := actor.CompanyID()
	return ok && kernel.EqualPtr(p.Company(), companyID)
}

// CanViewReport allows reading company statistics: admins, and owners/managers/operators of the company.
func CanViewReport(actor *org.User, companyID kernel.UUID) bool {
	return CanCreate(actor, companyID)
}

// TaskMessageRecipient picks the counterpart in a task thread: drivers write
// to the creator, everyone else writes to the assignee.
func TaskMessageRecipient(actor *org.User, t *task.Task) (kernel.UUID, bool) {
	if actor.Role() == org.Driver {
		return t.CreatorID(), true
	}
	if a := t.Assignee(); a != nil {
		return *a, true
	}
	return kernel.UUID{}, false
}
