// Package memory provides an in-memory PlanningRepository used by tests
// and local development without postgres.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/freshbites/planner/backend-go/internal/domain"
	"github.com/freshbites/planner/backend-go/internal/engine"
)

type PlanningRepository struct {
	mu        sync.RWMutex
	demand    []domain.DemandRecord
	inventory []domain.InventoryRecord
	suppliers []domain.SupplierRecord
}

func NewPlanningRepository() *PlanningRepository {
	return &PlanningRepository{}
}

func (r *PlanningRepository) ForecastTotals(_ context.Context) ([]engine.KeyTotal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	totals := map[[2]string]int{}
	for _, d := range r.demand {
		totals[[2]string{d.SKU, d.Region}] += d.Forecast
	}
	return sortedTotals(totals), nil
}

func (r *PlanningRepository) StockTotals(_ context.Context) ([]engine.KeyTotal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	totals := map[[2]string]int{}
	for _, inv := range r.inventory {
		totals[[2]string{inv.SKU, inv.Region}] += inv.Stock
	}
	return sortedTotals(totals), nil
}

func sortedTotals(totals map[[2]string]int) []engine.KeyTotal {
	out := make([]engine.KeyTotal, 0, len(totals))
	for k, v := range totals {
		out = append(out, engine.KeyTotal{SKU: k[0], Region: k[1], Total: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SKU != out[j].SKU {
			return out[i].SKU < out[j].SKU
		}
		return out[i].Region < out[j].Region
	})
	return out
}

func (r *PlanningRepository) DemandRecords(_ context.Context) ([]domain.DemandRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.DemandRecord(nil), r.demand...), nil
}

func (r *PlanningRepository) DemandGrouped(_ context.Context) ([]domain.WeeklyDemand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.groupWeekly(func(domain.DemandRecord) bool { return true }), nil
}

func (r *PlanningRepository) WeeklySeries(_ context.Context, sku, region string) ([]domain.WeeklyDemand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.groupWeekly(func(d domain.DemandRecord) bool {
		return d.SKU == sku && d.Region == region
	}), nil
}

func (r *PlanningRepository) groupWeekly(keep func(domain.DemandRecord) bool) []domain.WeeklyDemand {
	type key struct {
		week        int
		region, sku string
	}
	grouped := map[key]*domain.WeeklyDemand{}
	for _, d := range r.demand {
		if !keep(d) {
			continue
		}
		k := key{d.Week, d.Region, d.SKU}
		if row, ok := grouped[k]; ok {
			row.Forecast += d.Forecast
			row.Actual += d.Actual
		} else {
			grouped[k] = &domain.WeeklyDemand{Week: d.Week, Region: d.Region, SKU: d.SKU, Forecast: d.Forecast, Actual: d.Actual}
		}
	}

	out := make([]domain.WeeklyDemand, 0, len(grouped))
	for _, row := range grouped {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SKU != out[j].SKU {
			return out[i].SKU < out[j].SKU
		}
		if out[i].Region != out[j].Region {
			return out[i].Region < out[j].Region
		}
		return out[i].Week < out[j].Week
	})
	return out
}

func (r *PlanningRepository) SKUForecastTotals(_ context.Context) ([]domain.SKUForecast, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	totals := map[string]int{}
	for _, d := range r.demand {
		totals[d.SKU] += d.Forecast
	}

	out := make([]domain.SKUForecast, 0, len(totals))
	for sku, total := range totals {
		out = append(out, domain.SKUForecast{SKU: sku, Forecast: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, nil
}

func (r *PlanningRepository) Suppliers(_ context.Context) ([]domain.SupplierRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.SupplierRecord(nil), r.suppliers...), nil
}

func (r *PlanningRepository) StockByRegion(_ context.Context) ([]domain.InventoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type key struct{ sku, region string }
	grouped := map[key]*domain.InventoryRecord{}
	for _, inv := range r.inventory {
		k := key{inv.SKU, inv.Region}
		if row, ok := grouped[k]; ok {
			row.Stock += inv.Stock
			row.Forecast += inv.Forecast
		} else {
			c := inv
			grouped[k] = &c
		}
	}

	out := make([]domain.InventoryRecord, 0, len(grouped))
	for _, row := range grouped {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Region != out[j].Region {
			return out[i].Region < out[j].Region
		}
		return out[i].SKU < out[j].SKU
	})
	return out, nil
}

func (r *PlanningRepository) ReplaceDemand(_ context.Context, rows []domain.DemandRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.demand = append([]domain.DemandRecord(nil), rows...)
	return nil
}

func (r *PlanningRepository) ReplaceInventory(_ context.Context, rows []domain.InventoryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inventory = append([]domain.InventoryRecord(nil), rows...)
	return nil
}

func (r *PlanningRepository) ReplaceSuppliers(_ context.Context, rows []domain.SupplierRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers = append([]domain.SupplierRecord(nil), rows...)
	return nil
}

func (r *PlanningRepository) ClearProcurement(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.demand = nil
	r.suppliers = nil
	return nil
}

func (r *PlanningRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.demand = nil
	r.inventory = nil
	r.suppliers = nil
	return nil
}
