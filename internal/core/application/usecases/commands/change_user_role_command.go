package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
	"logistics/internal/pkg/guard"
)

var ErrChangeUserRoleCommandIsNotConstructed = errors.New(
	"ChangeUserRoleCommand must be created via NewChangeUserRoleCommand constructor",
)

// ProfileSpec describes the profile a user should get. SupervisorID is the
// manager of an operator or the operator of a driver; it is ignored for other roles.
type ProfileSpec struct {
	Role         org.Role
	CompanyID    *kernel.UUID
	SupervisorID *kernel.UUID
	AdminLevel   int
	License      string
	Vehicle      string
}

// Profile builds the tagged profile for the requested role.
func (s ProfileSpec) Profile() (org.Profile, error) {
	switch s.Role {
	case org.Admin:
		return org.AdminProfile{Level: s.AdminLevel}, nil
	case org.CompanyOwner:
		return org.OwnerProfile{CompanyID: s.CompanyID}, nil
	case org.Manager:
		return org.ManagerProfile{CompanyID: s.CompanyID}, nil
	case org.Operator:
		return org.OperatorProfile{CompanyID: s.CompanyID, ManagerID: s.SupervisorID}, nil
	case org.Driver:
		return org.DriverProfile{
			CompanyID:  s.CompanyID,
			OperatorID: s.SupervisorID,
			License:    s.License,
			Vehicle:    s.Vehicle,
		}, nil
	default:
		return nil, s.Role.Validate()
	}
}

// ChangeUserRoleCommand swaps a user's role profile. The old profile is
// dropped and the new one stored in the same write.
type ChangeUserRoleCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	userID  kernel.UUID
	profile org.Profile

	guard guard.ConstructorGuard
}

func NewChangeUserRoleCommand(actorID, userID kernel.UUID, spec ProfileSpec) (ChangeUserRoleCommand, error) {
	profile, profileErr := spec.Profile()
	if err := errors.Join(
		validateID("actor id", actorID),
		validateID("user id", userID),
		profileErr,
	); err != nil {
		return ChangeUserRoleCommand{}, err
	}

	return ChangeUserRoleCommand{
		actorID: actorID,
		userID:  userID,
		profile: profile,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserRoleCommandIsNotConstructed)
}

func (c ChangeUserRoleCommand) ActorID() kernel.UUID { return c.actorID }
func (c ChangeUserRoleCommand) UserID() kernel.UUID  { return c.userID }
func (c ChangeUserRoleCommand) Profile() org.Profile { return c.profile }
