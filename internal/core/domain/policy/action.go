package policy

// Action names an operation guarded by the policy.
type Action int

const (
	ActionUnknown Action = iota
	ActionView
	ActionCreate
	ActionEdit
	ActionDelete
	ActionComplete
	ActionCancel
	ActionMessage
	ActionDrive
)

func (a Action) String() string {
	switch a {
	case ActionView:
		return "view"
	case ActionCreate:
		return "create"
	case ActionEdit:
		return "edit"
	case ActionDelete:
		return "delete"
	case ActionComplete:
		return "complete"
	case ActionCancel:
		return "cancel"
	case ActionMessage:
		return "message"
	case ActionDrive:
		return "drive"
	default:
		return "unknown"
	}
}
