package service

import (
	"context"
	"testing"

	"github.com/freshbites/planner/backend-go/internal/domain"
	"github.com/freshbites/planner/backend-go/internal/repository/memory"
)

func TestDemandService_List_GroupsDuplicates(t *testing.T) {
	repo := memory.NewPlanningRepository()
	ctx := context.Background()
	err := repo.ReplaceDemand(ctx, []domain.DemandRecord{
		{Week: 1, SKU: "SKU1", Region: "North", Forecast: 60, Actual: 50},
		{Week: 1, SKU: "SKU1", Region: "North", Forecast: 40, Actual: 30},
		{Week: 2, SKU: "SKU1", Region: "North", Forecast: 70, Actual: 80},
	})
	if err != nil {
		t.Fatalf("seed demand: %v", err)
	}

	got, err := NewDemandService(repo, nil).List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []domain.WeeklyDemand{
		{Week: 1, Region: "North", SKU: "SKU1", Forecast: 100, Actual: 80},
		{Week: 2, Region: "North", SKU: "SKU1", Forecast: 70, Actual: 80},
	}
	if len(got) != len(want) {
		t.Fatalf("List() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDemandService_SimulateSpike_NormalizesKeys(t *testing.T) {
	repo := memory.NewPlanningRepository()
	ctx := context.Background()
	err := repo.ReplaceDemand(ctx, []domain.DemandRecord{
		{Week: 1, SKU: "SKU1", Region: "North", Forecast: 100, Actual: 100},
	})
	if err != nil {
		t.Fatalf("seed demand: %v", err)
	}

	got, err := NewDemandService(repo, nil).SimulateSpike(ctx, " sku1 ", "NORTH", 10)
	if err != nil {
		t.Fatalf("SimulateSpike failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("lookup should be case-insensitive, got %+v", got)
	}
	if got[0].Simulated != 110 {
		t.Errorf("simulated = %v, want 110", got[0].Simulated)
	}
}
