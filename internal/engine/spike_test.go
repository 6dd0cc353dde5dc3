package engine

import (
	"testing"

	"github.com/freshbites/planner/backend-go/internal/domain"
)

func TestSimulateSpike(t *testing.T) {
	rows := []domain.WeeklyDemand{
		{Week: 1, Region: "North", SKU: "SKU1", Forecast: 100, Actual: 100},
		{Week: 2, Region: "North", SKU: "SKU1", Forecast: 100, Actual: 130},
		{Week: 3, Region: "North", SKU: "SKU1", Forecast: 100, Actual: 131},
	}

	got := SimulateSpike(rows, 10)
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}

	if got[0].Simulated != 110 {
		t.Errorf("week 1 simulated = %v, want 110", got[0].Simulated)
	}
	if got[0].Spike {
		t.Error("first week has no previous week, must not flag")
	}
	// 130 > 100*1.1: flagged.
	if !got[1].Spike {
		t.Error("week 2 should be flagged as spike")
	}
	// 131 > 130*1.1 is false: not flagged.
	if got[2].Spike {
		t.Error("week 3 should not be flagged")
	}
}

func TestSimulateSpike_RoundsToTwoDecimals(t *testing.T) {
	rows := []domain.WeeklyDemand{{Week: 1, Region: "N", SKU: "S", Actual: 3}}

	got := SimulateSpike(rows, 33.333)
	if got[0].Simulated != 4 {
		t.Errorf("simulated = %v, want 4.00", got[0].Simulated)
	}
}

func TestSimulateSpike_EmptySeries(t *testing.T) {
	if got := SimulateSpike(nil, 25); len(got) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}
