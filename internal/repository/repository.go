// Package repository defines the persistence boundary the planning services
// depend on. The engine itself never touches a repository; services take
// snapshots here and hand them to the engine as plain collections.
package repository

import (
	"context"

	"github.com/freshbites/planner/backend-go/internal/domain"
	"github.com/freshbites/planner/backend-go/internal/engine"
)

// PlanningRepository stores the uploaded demand, inventory and supplier
// datasets and serves the aggregated snapshots the engine consumes.
type PlanningRepository interface {
	// Snapshot queries.
	ForecastTotals(ctx context.Context) ([]engine.KeyTotal, error)
	StockTotals(ctx context.Context) ([]engine.KeyTotal, error)
	DemandRecords(ctx context.Context) ([]domain.DemandRecord, error)
	DemandGrouped(ctx context.Context) ([]domain.WeeklyDemand, error)
	WeeklySeries(ctx context.Context, sku, region string) ([]domain.WeeklyDemand, error)
	SKUForecastTotals(ctx context.Context) ([]domain.SKUForecast, error)
	Suppliers(ctx context.Context) ([]domain.SupplierRecord, error)
	StockByRegion(ctx context.Context) ([]domain.InventoryRecord, error)

	// Uploads replace a dataset wholesale.
	ReplaceDemand(ctx context.Context, rows []domain.DemandRecord) error
	ReplaceInventory(ctx context.Context, rows []domain.InventoryRecord) error
	ReplaceSuppliers(ctx context.Context, rows []domain.SupplierRecord) error

	// ClearProcurement drops demand and supplier data only.
	ClearProcurement(ctx context.Context) error

	// Reset drops every dataset and recreates the schema.
	Reset(ctx context.Context) error
}
