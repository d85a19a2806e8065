package dbutil_test

import (
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/dbutil"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUUIDRoundTrip(t *testing.T) {
	assert.Nil(t, dbutil.UUIDPtr(nil))

	id := kernel.NewUUID()
	raw := dbutil.UUIDPtr(&id)
	require.NotNil(t, raw)

	back, err := dbutil.IDPtr(raw)
	require.NoError(t, err)
	assert.Equal(t, id, *back)

	none, err := dbutil.IDPtr(nil)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestUTC(t *testing.T) {
	assert.Nil(t, dbutil.UTC(nil))

	local := time.Date(2024, 6, 3, 10, 0, 0, 0, time.FixedZone("MSK", 3*3600))
	got := dbutil.UTC(&local)
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(local))
}

func TestNotFound(t *testing.T) {
	id := kernel.NewUUID()

	err := dbutil.NotFound(gorm.ErrRecordNotFound, "task", id)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	boom := errors.New("connection reset")
	err = dbutil.NotFound(boom, "task", id)
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "load task")
}
