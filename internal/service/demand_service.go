package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/freshbites/planner/backend-go/internal/cache"
	"github.com/freshbites/planner/backend-go/internal/domain"
	"github.com/freshbites/planner/backend-go/internal/engine"
	"github.com/freshbites/planner/backend-go/internal/repository"
)

// DemandService serves demand views and spike simulations.
type DemandService struct {
	repo  repository.PlanningRepository
	cache cache.PlannerCache
}

func NewDemandService(repo repository.PlanningRepository, cacheImpl cache.PlannerCache) *DemandService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopPlannerCache()
	}
	return &DemandService{repo: repo, cache: cacheImpl}
}

// List returns demand grouped by (week, region, SKU).
func (s *DemandService) List(ctx context.Context) ([]domain.WeeklyDemand, error) {
	return s.repo.DemandGrouped(ctx)
}

// SimulateSpike applies a percentage spike to the weekly actuals of one
// (SKU, Region) series without touching stored data.
func (s *DemandService) SimulateSpike(ctx context.Context, sku, region string, spikePercent float64) ([]domain.SimulatedDemand, error) {
	series, err := s.repo.WeeklySeries(ctx, normalizeSKU(sku), normalizeRegion(region))
	if err != nil {
		return nil, err
	}
	return engine.SimulateSpike(series, spikePercent), nil
}

// Upload replaces the demand dataset and drops cached reports.
func (s *DemandService) Upload(ctx context.Context, rows []domain.DemandRecord) error {
	if err := s.repo.ReplaceDemand(ctx, rows); err != nil {
		return err
	}
	if err := s.cache.InvalidateAll(ctx); err != nil {
		log.Warn().Err(err).Msg("demand: cache invalidation failed")
	}
	return nil
}

func normalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

func normalizeRegion(region string) string {
	region = strings.TrimSpace(region)
	if region == "" {
		return region
	}
	return strings.ToUpper(region[:1]) + strings.ToLower(region[1:])
}
