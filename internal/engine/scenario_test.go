package engine

import (
	"reflect"
	"testing"

	"github.com/freshbites/planner/backend-go/internal/domain"
)

func TestEvaluateScenario(t *testing.T) {
	tests := []struct {
		name   string
		params ScenarioParams
		want   domain.ScenarioResult
	}{
		{
			name: "demand growth absorbed by capacity",
			params: ScenarioParams{
				BaseDemand: 1000, BaseCapacity: 1200, BaseCost: 5000,
				DemandChange: 20, CapacityChange: 0,
			},
			want: domain.ScenarioResult{
				AdjustedDemand: 1200, AdjustedCapacity: 1200,
				Stockouts: 0, ServiceLevel: 100, ExcessCost: 5500,
			},
		},
		{
			name: "capacity cut causes stockouts",
			params: ScenarioParams{
				BaseDemand: 1000, BaseCapacity: 1200, BaseCost: 5000,
				DemandChange: 0, CapacityChange: -50,
			},
			want: domain.ScenarioResult{
				AdjustedDemand: 1000, AdjustedCapacity: 600,
				Stockouts: 400, ServiceLevel: 60, ExcessCost: 5000,
			},
		},
		{
			name: "zero adjusted demand defines full service",
			params: ScenarioParams{
				BaseDemand: 1000, BaseCapacity: 500, BaseCost: 5000,
				DemandChange: -100, CapacityChange: 0,
			},
			want: domain.ScenarioResult{
				AdjustedDemand: 0, AdjustedCapacity: 500,
				Stockouts: 0, ServiceLevel: 100, ExcessCost: 2500,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateScenario(tt.params); got != tt.want {
				t.Errorf("EvaluateScenario() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEvaluateSKUScenario(t *testing.T) {
	rows := []domain.SKUTotals{
		{SKU: "SKU1", Forecast: 100, Stock: 80},
		{SKU: "SKU2", Forecast: 0, Stock: 50},
	}

	got := EvaluateSKUScenario(rows, 1.5, 2)
	want := []domain.SKUScenarioRow{
		// forecast 100*1.5=150, stock 80-20=60, service 60/150=40%
		{SKU: "SKU1", AdjustedForecast: 150, AdjustedStock: 60, ServiceLevel: 40},
		// zero adjusted forecast defines service level 1
		{SKU: "SKU2", AdjustedForecast: 0, AdjustedStock: 30, ServiceLevel: 100},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EvaluateSKUScenario() = %+v, want %+v", got, want)
	}
}

func TestEvaluateSKUScenario_StockClampedBeforeRatio(t *testing.T) {
	rows := []domain.SKUTotals{{SKU: "SKU1", Forecast: 100, Stock: 5}}

	got := EvaluateSKUScenario(rows, 1, 3)
	// 5 - 30 clamps to 0, so service level is 0, never negative.
	if got[0].AdjustedStock != 0 || got[0].ServiceLevel != 0 {
		t.Errorf("expected clamped stock and 0%% service, got %+v", got[0])
	}
}

func TestMergeSKUTotals_OuterJoin(t *testing.T) {
	forecasts := []KeyTotal{
		{SKU: "SKU1", Region: "North", Total: 60},
		{SKU: "SKU1", Region: "South", Total: 40},
	}
	stocks := []KeyTotal{{SKU: "SKU2", Region: "North", Total: 30}}

	got := MergeSKUTotals(forecasts, stocks)
	want := []domain.SKUTotals{
		{SKU: "SKU1", Forecast: 100, Stock: 0},
		{SKU: "SKU2", Forecast: 0, Stock: 30},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeSKUTotals() = %+v, want %+v", got, want)
	}
}
