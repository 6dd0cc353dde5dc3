package engine

import (
	"reflect"
	"testing"

	"github.com/freshbites/planner/backend-go/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		forecast int
		want     domain.GapStatus
	}{
		{"shortage below forecast", 50, 100, domain.StatusShortage},
		{"balanced at exact equality", 100, 100, domain.StatusBalanced},
		{"balanced just above forecast", 120, 100, domain.StatusBalanced},
		{"balanced at exact overstock boundary", 130, 100, domain.StatusBalanced},
		{"overstock above boundary", 131, 100, domain.StatusOverstock},
		{"zero forecast zero stock is balanced", 0, 0, domain.StatusBalanced},
		{"zero forecast with stock is overstock", 1, 0, domain.StatusOverstock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.stock, tt.forecast); got != tt.want {
				t.Errorf("Classify(%d, %d) = %s, want %s", tt.stock, tt.forecast, got, tt.want)
			}
		})
	}
}

func TestMergeSnapshot_OuterJoin(t *testing.T) {
	forecasts := []KeyTotal{
		{SKU: "SKU1", Region: "North", Total: 100},
		{SKU: "SKU2", Region: "South", Total: 40},
	}
	stocks := []KeyTotal{
		{SKU: "SKU1", Region: "North", Total: 80},
		{SKU: "SKU3", Region: "East", Total: 25},
	}

	got := MergeSnapshot(forecasts, stocks)
	want := []domain.GapRow{
		{SKU: "SKU1", Region: "North", Forecast: 100, Stock: 80},
		{SKU: "SKU2", Region: "South", Forecast: 40, Stock: 0},
		{SKU: "SKU3", Region: "East", Forecast: 0, Stock: 25},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeSnapshot() = %+v, want %+v", got, want)
	}
}

func TestMergeSnapshot_SumsDuplicateKeys(t *testing.T) {
	forecasts := []KeyTotal{
		{SKU: "SKU1", Region: "North", Total: 60},
		{SKU: "SKU1", Region: "North", Total: 40},
	}
	got := MergeSnapshot(forecasts, nil)
	if len(got) != 1 || got[0].Forecast != 100 {
		t.Fatalf("expected one merged row with forecast 100, got %+v", got)
	}
}

func TestClassifyGaps_EmptyInput(t *testing.T) {
	got := ClassifyGaps(nil)
	if len(got) != 0 {
		t.Errorf("expected empty result for empty input, got %+v", got)
	}
}

func TestClassifyGaps_Idempotent(t *testing.T) {
	rows := []domain.GapRow{
		{SKU: "SKU1", Region: "North", Forecast: 100, Stock: 50},
		{SKU: "SKU1", Region: "South", Forecast: 50, Stock: 150},
	}
	first := ClassifyGaps(rows)
	second := ClassifyGaps(rows)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated classification differs: %+v vs %+v", first, second)
	}
}
