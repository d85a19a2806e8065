package statistics_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/statistics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	p, err := statistics.NewPeriod(start, start.Add(24*time.Hour))
	require.NoError(t, err)
	assert.True(t, p.Contains(start))
	assert.False(t, p.Contains(start.Add(24*time.Hour)))
	assert.False(t, p.Contains(start.Add(-time.Nanosecond)))

	_, err = statistics.NewPeriod(start, start)
	assert.Error(t, err)
}

func TestPreviousDay(t *testing.T) {
	now := time.Date(2024, 5, 2, 13, 45, 0, 0, time.UTC)

	p := statistics.PreviousDay(now)

	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), p.End)
	assert.Equal(t, "2024-05-01T00:00:00Z_2024-05-02T00:00:00Z", p.Key())
}

func TestLastDays(t *testing.T) {
	now := time.Date(2024, 5, 8, 10, 0, 0, 0, time.UTC)

	p := statistics.LastDays(now, 7)

	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC), p.End)
	assert.True(t, p.Contains(now))
}

func TestRate(t *testing.T) {
	assert.Equal(t, 0.0, statistics.Rate(0, 0))
	assert.Equal(t, 0.0, statistics.Rate(5, 0))
	assert.InDelta(t, 0.25, statistics.Rate(1, 4), 1e-9)
}

func TestNewSnapshot(t *testing.T) {
	report := statistics.Report{Company: statistics.CompanyStats{CompanyID: kernel.NewUUID()}}

	s, err := statistics.NewSnapshot(kernel.NewUUID(), report)
	require.NoError(t, err)
	assert.True(t, s.CompanyID().IsEqual(report.Company.CompanyID))

	_, err = statistics.NewSnapshot(kernel.NewUUID(), statistics.Report{})
	assert.Error(t, err)
}
