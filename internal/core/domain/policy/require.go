package policy

import (
	"logistics/internal/core/domain/model/org"
	"logistics/internal/pkg/errs"
)

// Require turns a predicate result into errs.ForbiddenError.
func Require(allowed bool, actor *org.User, action Action, target string) error {
	if allowed {
		return nil
	}
	actorID := "anonymous"
	if actor != nil && actor.Validate() == nil {
		actorID = actor.ID().String()
	}
	return errs.NewForbiddenError(action.String(), actorID, target)
}
