package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/freshbites/planner/backend-go/internal/config"
	"github.com/freshbites/planner/backend-go/internal/domain"
)

const (
	gapReportKey       = "planner:gap_report"
	plannerKeyPrefix   = "planner:"
	plannerScanBatches = 100
)

// PlannerCache caches the gap report, which is recomputed from full dataset
// scans and read by several dashboards. Uploads and resets invalidate it.
type PlannerCache interface {
	GetGapReport(ctx context.Context) ([]domain.GapResult, bool, error)
	SetGapReport(ctx context.Context, results []domain.GapResult) error
	InvalidateAll(ctx context.Context) error
}

type redisPlannerCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopPlannerCache struct{}

// NewPlannerCache returns the redis cache when enabled, otherwise a noop.
func NewPlannerCache(cfg config.CacheConfig) (PlannerCache, error) {
	if !cfg.Enabled {
		return &noopPlannerCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}
	return &redisPlannerCache{client: client, ttl: ttl}, nil
}

// NewNoopPlannerCache returns a cache that stores nothing.
func NewNoopPlannerCache() PlannerCache {
	return &noopPlannerCache{}
}

func (c *redisPlannerCache) GetGapReport(ctx context.Context) ([]domain.GapResult, bool, error) {
	payload, err := c.client.Get(ctx, gapReportKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var results []domain.GapResult
	if err := json.Unmarshal(payload, &results); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached gap report: %w", err)
	}
	return results, true, nil
}

func (c *redisPlannerCache) SetGapReport(ctx context.Context, results []domain.GapResult) error {
	payload, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to encode gap report: %w", err)
	}
	if err := c.client.Set(ctx, gapReportKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisPlannerCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, plannerKeyPrefix, plannerScanBatches)
}

func (c *noopPlannerCache) GetGapReport(context.Context) ([]domain.GapResult, bool, error) {
	return nil, false, nil
}

func (c *noopPlannerCache) SetGapReport(context.Context, []domain.GapResult) error {
	return nil
}

func (c *noopPlannerCache) InvalidateAll(context.Context) error {
	return nil
}
