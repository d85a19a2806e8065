// Package redis caches computed statistics reports.
package redis

import (
	"context"
	"encoding/json"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/statistics"
	"logistics/internal/core/ports"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var _ ports.ReportCache = (*ReportCache)(nil)

const keyPrefix = "report:"

// ReportCache stores one JSON report per company and period. Entries expire
// after ttl; deleting a company drops its entries at once.
type ReportCache struct {
	c   *redis.Client
	ttl time.Duration
}

func NewReportCache(addr string, ttl time.Duration) *ReportCache {
	return newReportCacheWithClient(redis.NewClient(&redis.Options{Addr: addr}), ttl)
}

func newReportCacheWithClient(c *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{c: c, ttl: ttl}
}

func reportKey(companyID kernel.UUID, period statistics.Period) string {
	return keyPrefix + companyID.String() + ":" + period.Key()
}

func (r *ReportCache) Get(ctx context.Context, companyID kernel.UUID, period statistics.Period) (statistics.Report, bool, error) {
	val, err := r.c.Get(ctx, reportKey(companyID, period)).Bytes()
	if errors.Is(err, redis.Nil) {
		return statistics.Report{}, false, nil
	}
	if err != nil {
		return statistics.Report{}, false, errors.Wrap(err, "redis get report")
	}

	var report statistics.Report
	if err = json.Unmarshal(val, &report); err != nil {
		return statistics.Report{}, false, errors.Wrap(err, "decode cached report")
	}
	return report, true, nil
}

func (r *ReportCache) Set(ctx context.Context, report statistics.Report) error {
	value, err := json.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "encode report")
	}
	key := reportKey(report.Company.CompanyID, report.Period)
	if err = r.c.Set(ctx, key, value, r.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set report")
	}
	return nil
}

func (r *ReportCache) Invalidate(ctx context.Context, companyID kernel.UUID) error {
	iter := r.c.Scan(ctx, 0, keyPrefix+companyID.String()+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "redis scan reports")
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.c.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrapf(err, "redis delete %d reports", len(keys))
	}
	return nil
}

// Ping checks the connection.
func (r *ReportCache) Ping(ctx context.Context) error {
	return errors.Wrap(r.c.Ping(ctx).Err(), "redis ping")
}

func (r *ReportCache) Close() error {
	return r.c.Close()
}
