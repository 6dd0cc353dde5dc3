package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/freshbites/planner/backend-go/internal/cache"
	"github.com/freshbites/planner/backend-go/internal/domain"
	"github.com/freshbites/planner/backend-go/internal/repository"
)

// DefaultProcurementCapacity bounds supplier allocation when the caller
// does not supply a capacity.
const DefaultProcurementCapacity = 1000

// ProcurementService plans purchases against supplier constraints.
type ProcurementService struct {
	repo  repository.PlanningRepository
	cache cache.PlannerCache
}

func NewProcurementService(repo repository.PlanningRepository, cacheImpl cache.PlannerCache) *ProcurementService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopPlannerCache()
	}
	return &ProcurementService{repo: repo, cache: cacheImpl}
}

// Plan returns per-SKU forecast totals.
func (s *ProcurementService) Plan(ctx context.Context) ([]domain.SKUForecast, error) {
	return s.repo.SKUForecastTotals(ctx)
}

// Allocate spreads SKU demand over linked suppliers, respecting each
// supplier's max capacity and minimum order quantity and a global capacity
// bound. Greedy in SKU order; costs are decimal money rounded to 2
// decimals.
func (s *ProcurementService) Allocate(ctx context.Context, totalCapacity int) ([]domain.ProcurementLine, error) {
	if totalCapacity <= 0 {
		totalCapacity = DefaultProcurementCapacity
	}

	skuTotals, err := s.repo.SKUForecastTotals(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := s.repo.Suppliers(ctx)
	if err != nil {
		return nil, err
	}

	bySKU := map[string][]domain.SupplierRecord{}
	for _, sup := range suppliers {
		if sup.SKULinked != "" {
			bySKU[sup.SKULinked] = append(bySKU[sup.SKULinked], sup)
		}
	}

	lines := make([]domain.ProcurementLine, 0, len(skuTotals))
	remainingCapacity := totalCapacity
	for _, sku := range skuTotals {
		if remainingCapacity <= 0 {
			break
		}

		need := sku.Forecast
		for _, sup := range bySKU[sku.SKU] {
			if need <= 0 || remainingCapacity <= 0 {
				break
			}

			alloc := min(need, sup.MaxCapacity)
			if alloc < sup.MinOrderQty {
				alloc = sup.MinOrderQty
			}
			alloc = min(alloc, remainingCapacity)
			if alloc <= 0 {
				continue
			}

			need -= alloc
			remainingCapacity -= alloc

			cost := decimal.NewFromFloat(sup.UnitCost).
				Mul(decimal.NewFromInt(int64(alloc))).
				Round(2)

			lines = append(lines, domain.ProcurementLine{
				SKU:          sku.SKU,
				Forecast:     sku.Forecast,
				Allocated:    alloc,
				SupplierID:   sup.SupplierID,
				SupplierName: sup.Name,
				UnitCost:     sup.UnitCost,
				TotalCost:    cost.InexactFloat64(),
			})
		}
	}
	return lines, nil
}

// UploadDemand replaces demand with a procurement-style dataset (per-SKU
// forecasts, global region).
func (s *ProcurementService) UploadDemand(ctx context.Context, rows []domain.DemandRecord) error {
	if err := s.repo.ReplaceDemand(ctx, rows); err != nil {
		return err
	}
	if err := s.cache.InvalidateAll(ctx); err != nil {
		log.Warn().Err(err).Msg("procurement: cache invalidation failed")
	}
	return nil
}

// Reset clears demand and supplier data.
func (s *ProcurementService) Reset(ctx context.Context) error {
	if err := s.repo.ClearProcurement(ctx); err != nil {
		return err
	}
	if err := s.cache.InvalidateAll(ctx); err != nil {
		log.Warn().Err(err).Msg("procurement: cache invalidation failed")
	}
	return nil
}
