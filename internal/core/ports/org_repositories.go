package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/org"
)

// UserRepository persists users with their role profile.
type UserRepository interface {
	Add(ctx context.Context, u *org.User) error

	// Update writes the user and its profile in one statement, so a role
	// change never leaves two profiles behind. Optimistic-version contract as
	// TaskRepository.Update.
	Update(ctx context.Context, u *org.User) error

	Get(ctx context.Context, id kernel.UUID) (*org.User, error)
	ListByCompany(ctx context.Context, companyID kernel.UUID) ([]*org.User, error)
}

// CompanyRepository persists tenants.
type CompanyRepository interface {
	Add(ctx context.Context, c *org.Company) error
	Get(ctx context.Context, id kernel.UUID) (*org.Company, error)
	List(ctx context.Context) ([]*org.Company, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
