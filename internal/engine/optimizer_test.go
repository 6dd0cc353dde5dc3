package engine

import (
	"math"
	"testing"

	"github.com/freshbites/planner/backend-go/internal/domain"
)

func TestOptimizeAllocation_CapacityBound(t *testing.T) {
	plants := []domain.Plant{{Name: "Plant1", Capacity: 10}}
	skus := []domain.SKUDemand{{SKU: "SKU1", Demand: 20, Profit: 5}}

	got, err := OptimizeAllocation(plants, skus)
	if err != nil {
		t.Fatalf("OptimizeAllocation failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 allocation, got %+v", got)
	}
	if got[0].Allocated != 10 {
		t.Errorf("allocated = %v, want 10 (bounded by capacity, not demand)", got[0].Allocated)
	}
}

func TestOptimizeAllocation_DemandBound(t *testing.T) {
	plants := []domain.Plant{{Name: "Plant1", Capacity: 100}}
	skus := []domain.SKUDemand{{SKU: "SKU1", Demand: 30, Profit: 2}}

	got, err := OptimizeAllocation(plants, skus)
	if err != nil {
		t.Fatalf("OptimizeAllocation failed: %v", err)
	}
	if len(got) != 1 || got[0].Allocated != 30 {
		t.Errorf("expected single allocation of 30, got %+v", got)
	}
}

func TestOptimizeAllocation_PrefersHigherProfit(t *testing.T) {
	plants := []domain.Plant{{Name: "Plant1", Capacity: 50}}
	skus := []domain.SKUDemand{
		{SKU: "CHEAP", Demand: 100, Profit: 1},
		{SKU: "RICH", Demand: 100, Profit: 9},
	}

	got, err := OptimizeAllocation(plants, skus)
	if err != nil {
		t.Fatalf("OptimizeAllocation failed: %v", err)
	}

	byCapacity := map[string]float64{}
	for _, a := range got {
		byCapacity[a.SKU] = a.Allocated
	}
	if byCapacity["RICH"] != 50 {
		t.Errorf("all capacity should go to the profitable SKU, got %+v", got)
	}
	if byCapacity["CHEAP"] != 0 {
		t.Errorf("no capacity should be spent on the cheap SKU, got %+v", got)
	}
}

func TestOptimizeAllocation_ConstraintsHold(t *testing.T) {
	plants := []domain.Plant{
		{Name: "Plant1", Capacity: 40},
		{Name: "Plant2", Capacity: 70},
	}
	skus := []domain.SKUDemand{
		{SKU: "SKU1", Demand: 60, Profit: 4},
		{SKU: "SKU2", Demand: 80, Profit: 3},
	}

	got, err := OptimizeAllocation(plants, skus)
	if err != nil {
		t.Fatalf("OptimizeAllocation failed: %v", err)
	}

	perPlant := map[string]float64{}
	perSKU := map[string]float64{}
	var objective float64
	profit := map[string]float64{"SKU1": 4, "SKU2": 3}
	for _, a := range got {
		if a.Allocated <= 0 {
			t.Errorf("non-positive allocation returned: %+v", a)
		}
		perPlant[a.Plant] += a.Allocated
		perSKU[a.SKU] += a.Allocated
		objective += a.Allocated * profit[a.SKU]
	}

	const eps = 1e-6
	if perPlant["Plant1"] > 40+eps || perPlant["Plant2"] > 70+eps {
		t.Errorf("plant capacity violated: %+v", perPlant)
	}
	if perSKU["SKU1"] > 60+eps || perSKU["SKU2"] > 80+eps {
		t.Errorf("SKU demand violated: %+v", perSKU)
	}
	// Optimum: SKU1 fully served (60×4) and the remaining 50 units of
	// capacity spent on SKU2 (50×3).
	if math.Abs(objective-390) > eps {
		t.Errorf("objective = %v, want 390", objective)
	}
}

func TestOptimizeAllocation_EmptyInputs(t *testing.T) {
	got, err := OptimizeAllocation(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}

func TestOptimizeAllocation_ZeroCapacity(t *testing.T) {
	plants := []domain.Plant{{Name: "Plant1", Capacity: 0}}
	skus := []domain.SKUDemand{{SKU: "SKU1", Demand: 10, Profit: 5}}

	got, err := OptimizeAllocation(plants, skus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("zero capacity must yield no positive allocations, got %+v", got)
	}
}
