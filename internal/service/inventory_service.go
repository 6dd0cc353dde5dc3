package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/freshbites/planner/backend-go/internal/cache"
	"github.com/freshbites/planner/backend-go/internal/domain"
	"github.com/freshbites/planner/backend-go/internal/engine"
	"github.com/freshbites/planner/backend-go/internal/repository"
)

// DefaultServiceLevel is used when a safety stock request omits one.
const DefaultServiceLevel = 0.95

// InventoryService assembles demand/stock snapshots and runs the gap,
// rebalancing and safety stock computations over them.
type InventoryService struct {
	repo  repository.PlanningRepository
	cache cache.PlannerCache
}

func NewInventoryService(repo repository.PlanningRepository, cacheImpl cache.PlannerCache) *InventoryService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopPlannerCache()
	}
	return &InventoryService{repo: repo, cache: cacheImpl}
}

// GapReport classifies every (SKU, Region) pair as Shortage, Balanced or
// Overstock. Results are cached until the next upload or reset.
func (s *InventoryService) GapReport(ctx context.Context) ([]domain.GapResult, error) {
	if results, ok, err := s.cache.GetGapReport(ctx); err == nil && ok {
		return results, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("inventory: cache get gap report failed")
	}

	rows, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	results := engine.ClassifyGaps(rows)

	if err := s.cache.SetGapReport(ctx, results); err != nil {
		log.Warn().Err(err).Msg("inventory: cache set gap report failed")
	}
	return results, nil
}

// Rebalance proposes inter-region transfers per SKU under the given
// matching policy.
func (s *InventoryService) Rebalance(ctx context.Context, policy engine.MatchingPolicy) ([]domain.TransferSuggestion, error) {
	rows, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return engine.SuggestTransfers(rows, policy), nil
}

// SafetyStock sizes per-(SKU, Region) buffers from raw forecast rows.
func (s *InventoryService) SafetyStock(ctx context.Context, serviceLevel float64) ([]domain.SafetyStockResult, error) {
	if serviceLevel <= 0 || serviceLevel > 1 {
		serviceLevel = DefaultServiceLevel
	}

	records, err := s.repo.DemandRecords(ctx)
	if err != nil {
		return nil, err
	}
	return engine.EstimateSafetyStock(records, serviceLevel), nil
}

// Stock returns per-(Region, SKU) stock totals for the stock dashboard.
func (s *InventoryService) Stock(ctx context.Context) ([]domain.InventoryRecord, error) {
	return s.repo.StockByRegion(ctx)
}

// UploadInventory replaces the inventory dataset and drops cached reports.
func (s *InventoryService) UploadInventory(ctx context.Context, rows []domain.InventoryRecord) error {
	if err := s.repo.ReplaceInventory(ctx, rows); err != nil {
		return err
	}
	if err := s.cache.InvalidateAll(ctx); err != nil {
		log.Warn().Err(err).Msg("inventory: cache invalidation failed")
	}
	return nil
}

func (s *InventoryService) snapshot(ctx context.Context) ([]domain.GapRow, error) {
	forecasts, err := s.repo.ForecastTotals(ctx)
	if err != nil {
		return nil, err
	}
	stocks, err := s.repo.StockTotals(ctx)
	if err != nil {
		return nil, err
	}
	return engine.MergeSnapshot(forecasts, stocks), nil
}
