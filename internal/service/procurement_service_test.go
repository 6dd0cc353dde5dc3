package service

import (
	"context"
	"testing"

	"github.com/freshbites/planner/backend-go/internal/domain"
	"github.com/freshbites/planner/backend-go/internal/repository/memory"
)

func procurementRepo(t *testing.T, forecast int, suppliers []domain.SupplierRecord) *memory.PlanningRepository {
	t.Helper()
	repo := memory.NewPlanningRepository()
	ctx := context.Background()
	err := repo.ReplaceDemand(ctx, []domain.DemandRecord{
		{Week: 1, SKU: "SKU1", Region: "Global", Forecast: forecast},
	})
	if err != nil {
		t.Fatalf("seed demand: %v", err)
	}
	if err := repo.ReplaceSuppliers(ctx, suppliers); err != nil {
		t.Fatalf("seed suppliers: %v", err)
	}
	return repo
}

func TestProcurementService_Allocate_SpreadsOverSuppliers(t *testing.T) {
	repo := procurementRepo(t, 100, []domain.SupplierRecord{
		{SupplierID: "S1", Name: "Acme", UnitCost: 2.5, MinOrderQty: 10, MaxCapacity: 60, SKULinked: "SKU1"},
		{SupplierID: "S2", Name: "Bolt", UnitCost: 3, MinOrderQty: 20, MaxCapacity: 100, SKULinked: "SKU1"},
	})
	svc := NewProcurementService(repo, nil)

	got, err := svc.Allocate(context.Background(), 0)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 lines, got %+v", got)
	}
	if got[0].SupplierID != "S1" || got[0].Allocated != 60 || got[0].TotalCost != 150 {
		t.Errorf("line 0 = %+v, want S1/60/150", got[0])
	}
	if got[1].SupplierID != "S2" || got[1].Allocated != 40 || got[1].TotalCost != 120 {
		t.Errorf("line 1 = %+v, want S2/40/120", got[1])
	}
}

func TestProcurementService_Allocate_RaisesToMinOrderQty(t *testing.T) {
	repo := procurementRepo(t, 5, []domain.SupplierRecord{
		{SupplierID: "S1", Name: "Acme", UnitCost: 1, MinOrderQty: 20, MaxCapacity: 100, SKULinked: "SKU1"},
	})
	svc := NewProcurementService(repo, nil)

	got, err := svc.Allocate(context.Background(), 0)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if len(got) != 1 || got[0].Allocated != 20 {
		t.Errorf("small need should be raised to MOQ 20, got %+v", got)
	}
}

func TestProcurementService_Allocate_RespectsTotalCapacity(t *testing.T) {
	repo := procurementRepo(t, 100, []domain.SupplierRecord{
		{SupplierID: "S1", Name: "Acme", UnitCost: 1, MinOrderQty: 10, MaxCapacity: 80, SKULinked: "SKU1"},
	})
	svc := NewProcurementService(repo, nil)

	got, err := svc.Allocate(context.Background(), 30)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if len(got) != 1 || got[0].Allocated != 30 {
		t.Errorf("allocation should be capped at total capacity 30, got %+v", got)
	}
}

func TestProcurementService_Allocate_SkipsUnlinkedSuppliers(t *testing.T) {
	repo := procurementRepo(t, 50, []domain.SupplierRecord{
		{SupplierID: "S1", Name: "Acme", UnitCost: 1, MinOrderQty: 1, MaxCapacity: 100, SKULinked: "OTHER"},
	})
	svc := NewProcurementService(repo, nil)

	got, err := svc.Allocate(context.Background(), 0)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no lines without a linked supplier, got %+v", got)
	}
}

func TestProcurementService_Reset(t *testing.T) {
	repo := procurementRepo(t, 100, []domain.SupplierRecord{
		{SupplierID: "S1", Name: "Acme", UnitCost: 1, MinOrderQty: 1, MaxCapacity: 100, SKULinked: "SKU1"},
	})
	svc := NewProcurementService(repo, nil)
	ctx := context.Background()

	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	plan, err := svc.Plan(ctx)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if len(plan) != 0 {
		t.Errorf("plan should be empty after reset, got %+v", plan)
	}
}
