package engine

import (
	"math"
	"testing"

	"github.com/freshbites/planner/backend-go/internal/domain"
)

func TestAllocateProduction_EqualCapsAtForecast(t *testing.T) {
	rows := []domain.PlantSKURow{
		{Plant: "Plant1", SKU: "SKU1", Capacity: 100, Forecast: 30, ProfitMargin: 1},
		{Plant: "Plant1", SKU: "SKU2", Capacity: 100, Forecast: 1000, ProfitMargin: 1},
	}

	got := AllocateProduction(rows, StrategyEqual)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	// Equal split is 50 each, capped by own forecast; the uncommitted
	// remainder is not redistributed, so the plant total stays below
	// capacity.
	if got[0].Allocated != 30 {
		t.Errorf("SKU1 allocated = %v, want 30", got[0].Allocated)
	}
	if got[1].Allocated != 50 {
		t.Errorf("SKU2 allocated = %v, want 50", got[1].Allocated)
	}
}

func TestAllocateProduction_DemandPriority(t *testing.T) {
	rows := []domain.PlantSKURow{
		{Plant: "Plant1", SKU: "SKU1", Capacity: 100, Forecast: 75, ProfitMargin: 1},
		{Plant: "Plant1", SKU: "SKU2", Capacity: 100, Forecast: 25, ProfitMargin: 1},
	}

	got := AllocateProduction(rows, StrategyDemandPriority)
	if got[0].Allocated != 75 || got[1].Allocated != 25 {
		t.Errorf("proportional split = %v/%v, want 75/25", got[0].Allocated, got[1].Allocated)
	}
}

func TestAllocateProduction_DemandPriorityZeroForecastTotal(t *testing.T) {
	rows := []domain.PlantSKURow{
		{Plant: "Plant1", SKU: "SKU1", Capacity: 100, Forecast: 0, ProfitMargin: 1},
		{Plant: "Plant1", SKU: "SKU2", Capacity: 100, Forecast: 0, ProfitMargin: 1},
	}

	for _, r := range AllocateProduction(rows, StrategyDemandPriority) {
		if r.Allocated != 0 {
			t.Errorf("zero total forecast must allocate 0, got %v for %s", r.Allocated, r.SKU)
		}
	}
}

func TestAllocateProduction_ProfitPriority(t *testing.T) {
	rows := []domain.PlantSKURow{
		{Plant: "Plant1", SKU: "SKU1", Capacity: 120, Forecast: 100, ProfitMargin: 2},
		{Plant: "Plant1", SKU: "SKU2", Capacity: 120, Forecast: 100, ProfitMargin: 1},
	}

	got := AllocateProduction(rows, StrategyProfitPriority)
	if got[0].Allocated != 80 || got[1].Allocated != 40 {
		t.Errorf("weighted split = %v/%v, want 80/40", got[0].Allocated, got[1].Allocated)
	}
}

func TestAllocateProduction_PlantsAreIndependent(t *testing.T) {
	rows := []domain.PlantSKURow{
		{Plant: "Plant1", SKU: "SKU1", Capacity: 100, Forecast: 100, ProfitMargin: 1},
		{Plant: "Plant2", SKU: "SKU1", Capacity: 40, Forecast: 100, ProfitMargin: 1},
	}

	got := AllocateProduction(rows, StrategyDemandPriority)
	if got[0].Allocated != 100 || got[1].Allocated != 40 {
		t.Errorf("per-plant allocations = %v/%v, want 100/40", got[0].Allocated, got[1].Allocated)
	}
}

func TestAllocateProduction_RoundsToTwoDecimals(t *testing.T) {
	rows := []domain.PlantSKURow{
		{Plant: "Plant1", SKU: "SKU1", Capacity: 100, Forecast: 1, ProfitMargin: 1},
		{Plant: "Plant1", SKU: "SKU2", Capacity: 100, Forecast: 2, ProfitMargin: 1},
	}

	got := AllocateProduction(rows, StrategyDemandPriority)
	for _, r := range got {
		if math.Abs(r.Allocated*100-math.Round(r.Allocated*100)) > 1e-9 {
			t.Errorf("allocation %v for %s is not rounded to 2 decimals", r.Allocated, r.SKU)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	for _, valid := range []string{"equal", "demand-priority", "profit-priority"} {
		if _, err := ParseStrategy(valid); err != nil {
			t.Errorf("ParseStrategy(%q) unexpected error: %v", valid, err)
		}
	}

	_, err := ParseStrategy("round-robin")
	if err == nil {
		t.Fatal("expected error for unknown strategy")
	}
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %T", err)
	}
}
