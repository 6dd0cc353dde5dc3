package service

import (
	"context"

	"github.com/freshbites/planner/backend-go/internal/domain"
	"github.com/freshbites/planner/backend-go/internal/engine"
	"github.com/freshbites/planner/backend-go/internal/repository"
)

// PlanningService runs the production allocation strategies, the profit
// optimizer and the what-if evaluations. All three are stateless
// computations over caller-supplied or stored snapshots.
type PlanningService struct {
	repo     repository.PlanningRepository
	baseCost float64
}

func NewPlanningService(repo repository.PlanningRepository, baseCost float64) *PlanningService {
	return &PlanningService{repo: repo, baseCost: baseCost}
}

// ProductionPlan splits plant capacity across SKU rows under a strategy.
func (s *PlanningService) ProductionPlan(rows []domain.PlantSKURow, strategy engine.Strategy) []domain.AllocationResult {
	return engine.AllocateProduction(rows, strategy)
}

// OptimizeAllocation maximizes profit under plant capacity and SKU demand
// constraints. Solver failures are fatal for the invocation.
func (s *PlanningService) OptimizeAllocation(plants []domain.Plant, skus []domain.SKUDemand) ([]domain.ProfitAllocation, error) {
	return engine.OptimizeAllocation(plants, skus)
}

// WhatIf evaluates an aggregate scenario. Zero base figures fall back to
// the configured baselines.
func (s *PlanningService) WhatIf(baseDemand, baseCapacity, demandChange, capacityChange float64) domain.ScenarioResult {
	if baseDemand == 0 && baseCapacity == 0 {
		baseDemand, baseCapacity = 1000, 1200
	}
	return engine.EvaluateScenario(engine.ScenarioParams{
		BaseDemand:     baseDemand,
		BaseCapacity:   baseCapacity,
		BaseCost:       s.baseCost,
		DemandChange:   demandChange,
		CapacityChange: capacityChange,
	})
}

// WhatIfPerSKU evaluates a capacity factor and lead-time delta against the
// stored per-SKU forecast/stock totals.
func (s *PlanningService) WhatIfPerSKU(ctx context.Context, capacityFactor float64, leadTimeDays int) ([]domain.SKUScenarioRow, error) {
	forecasts, err := s.repo.ForecastTotals(ctx)
	if err != nil {
		return nil, err
	}
	stocks, err := s.repo.StockTotals(ctx)
	if err != nil {
		return nil, err
	}

	rows := engine.MergeSKUTotals(forecasts, stocks)
	return engine.EvaluateSKUScenario(rows, capacityFactor, leadTimeDays), nil
}
