package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDeleteCompanyCommandIsNotConstructed = errors.New(
	"DeleteCompanyCommand must be created via NewDeleteCompanyCommand constructor",
)

// DeleteCompanyCommand removes a tenant and everything it owns. Admin only.
type DeleteCompanyCommand struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCompanyCommand(actorID, companyID kernel.UUID) (DeleteCompanyCommand, error) {
	if err := errors.Join(
		validateID("actor id", actorID),
		validateID("company id", companyID),
	); err != nil {
		return DeleteCompanyCommand{}, err
	}

	return DeleteCompanyCommand{actorID: actorID, companyID: companyID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCompanyCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCompanyCommandIsNotConstructed)
}

func (c DeleteCompanyCommand) ActorID() kernel.UUID   { return c.actorID }
func (c DeleteCompanyCommand) CompanyID() kernel.UUID { return c.companyID }
