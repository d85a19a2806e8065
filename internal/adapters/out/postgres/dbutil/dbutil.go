// Package dbutil holds the mapping and optimistic-locking helpers shared by
// the GORM repositories.
package dbutil

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// AggregateTracker is implemented by the unit of work.
type AggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// UUIDPtr converts an optional domain id to its column value.
func UUIDPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

// ID converts a column value to a domain id.
func ID(raw uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(raw[:])
}

// IDPtr converts an optional column value to a domain id.
func IDPtr(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := ID(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// UTC normalizes an optional timestamp read from the database.
func UTC(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// NotFound maps gorm.ErrRecordNotFound to errs.ObjectNotFoundError and wraps anything else.
func NotFound(err error, entity string, id kernel.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(entity, id.String())
	}
	return errors.Wrapf(err, "load %s %s", entity, id)
}

// UpdateVersioned writes every column of dto except the primary key and
// created_at, guarded by the version read when the aggregate was loaded.
// dto must already carry version+1.
func UpdateVersioned(
	ctx context.Context,
	db *gorm.DB,
	dto any,
	entity string,
	id kernel.UUID,
	version int64,
) error {
	res := db.WithContext(ctx).
		Model(dto).
		Where("id = ? AND version = ?", id.Bytes(), version).
		Select("*").
		Omit("id", "created_at").
		Updates(dto)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "update %s %s", entity, id)
	}
	if res.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(dto).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return errors.Wrapf(err, "check %s %s", entity, id)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError(entity, id.String())
	}
	return errs.NewConflictError(entity, id.String(), version)
}
