package ingest

import (
	"strings"
	"testing"

	"github.com/freshbites/planner/backend-go/internal/domain"
)

func mustTable(t *testing.T, csv string) *Table {
	t.Helper()
	table, err := ReadTable(strings.NewReader(csv), "data.csv")
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	return table
}

func TestParseDemand(t *testing.T) {
	table := mustTable(t, "Week,Region,SKU,Forecast_Demand,Actual_Demand\n1,north,sku1,100,95\n2, North ,SKU1,110,120\n")

	got, err := ParseDemand(table)
	if err != nil {
		t.Fatalf("ParseDemand failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	want := domain.DemandRecord{Week: 1, SKU: "SKU1", Region: "North", Forecast: 100, Actual: 95}
	if got[0] != want {
		t.Errorf("record = %+v, want %+v", got[0], want)
	}
	if got[1].Region != "North" {
		t.Errorf("region should be normalized, got %q", got[1].Region)
	}
}

func TestParseDemand_MissingColumns(t *testing.T) {
	table := mustTable(t, "Week,Region,SKU\n1,North,SKU1\n")

	_, err := ParseDemand(table)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %T", err)
	}
	if !strings.Contains(err.Error(), "Forecast_Demand") {
		t.Errorf("error should name the missing column, got %q", err.Error())
	}
}

func TestParseInventory_OptionalForecast(t *testing.T) {
	withForecast := mustTable(t, "SKU,Region,Stock,Forecast\nsku1,north,80,100\n")
	got, err := ParseInventory(withForecast)
	if err != nil {
		t.Fatalf("ParseInventory failed: %v", err)
	}
	if got[0].Forecast != 100 {
		t.Errorf("forecast = %d, want 100", got[0].Forecast)
	}

	without := mustTable(t, "SKU,Region,Stock\nsku1,north,80\n")
	got, err = ParseInventory(without)
	if err != nil {
		t.Fatalf("ParseInventory failed: %v", err)
	}
	if got[0].Forecast != 0 {
		t.Errorf("absent forecast column should default to 0, got %d", got[0].Forecast)
	}
}

func TestParseInventory_HeaderCaseInsensitive(t *testing.T) {
	table := mustTable(t, "sku,REGION, stock \nSKU1,North,42\n")

	got, err := ParseInventory(table)
	if err != nil {
		t.Fatalf("ParseInventory failed: %v", err)
	}
	if got[0].Stock != 42 {
		t.Errorf("stock = %d, want 42", got[0].Stock)
	}
}

func TestParseSuppliers(t *testing.T) {
	table := mustTable(t, "Supplier_ID,Name,Committed_Lead_Time,Avg_Lead_Time_Days,Deliveries,On_Time_Deliveries,Unit_Cost,Min_Order_Qty,Max_Capacity,SKU_Linked\nS1,Acme,5,7,100,90,2.5,50,1000,sku1\n")

	got, err := ParseSuppliers(table)
	if err != nil {
		t.Fatalf("ParseSuppliers failed: %v", err)
	}
	s := got[0]
	if s.SupplierID != "S1" || s.UnitCost != 2.5 || s.MaxCapacity != 1000 || s.SKULinked != "SKU1" {
		t.Errorf("unexpected supplier record: %+v", s)
	}
}

func TestParseProductionRows_MarginDefault(t *testing.T) {
	table := mustTable(t, "Plant,SKU,Capacity,Forecast\nP1,SKU1,100,80\n")

	got, err := ParseProductionRows(table)
	if err != nil {
		t.Fatalf("ParseProductionRows failed: %v", err)
	}
	if got[0].ProfitMargin != 1.0 {
		t.Errorf("absent margin column should default to 1.0, got %v", got[0].ProfitMargin)
	}
}

func TestParseProductionRows_MissingCapacity(t *testing.T) {
	table := mustTable(t, "Plant,SKU,Forecast\nP1,SKU1,80\n")

	if _, err := ParseProductionRows(table); !domain.IsValidation(err) {
		t.Errorf("expected validation error for missing Capacity, got %v", err)
	}
}

func TestParseOptimizerData_DeduplicatesOnFirst(t *testing.T) {
	table := mustTable(t, "Plant,SKU,Capacity,Demand,Profit\nP1,SKU1,100,50,2\nP1,SKU2,999,30,4\nP2,SKU1,70,888,9\n")

	plants, skus, err := ParseOptimizerData(table)
	if err != nil {
		t.Fatalf("ParseOptimizerData failed: %v", err)
	}
	if len(plants) != 2 || plants[0].Capacity != 100 || plants[1].Capacity != 70 {
		t.Errorf("plants = %+v", plants)
	}
	if len(skus) != 2 || skus[0].Demand != 50 || skus[0].Profit != 2 {
		t.Errorf("skus = %+v", skus)
	}
}

func TestSumDemandCapacity(t *testing.T) {
	table := mustTable(t, "Demand,Capacity\n100,120\n200,180\n")

	demand, capacity, err := SumDemandCapacity(table)
	if err != nil {
		t.Fatalf("SumDemandCapacity failed: %v", err)
	}
	if demand != 300 || capacity != 300 {
		t.Errorf("sums = %v/%v, want 300/300", demand, capacity)
	}
}

func TestParseSeries_SkipsEmptyCells(t *testing.T) {
	table := mustTable(t, "Demand\n10\n\n30\n")

	got, err := ParseSeries(table)
	if err != nil {
		t.Fatalf("ParseSeries failed: %v", err)
	}
	if len(got) != 2 || got[0] != 10 || got[1] != 30 {
		t.Errorf("series = %v, want [10 30]", got)
	}
}

func TestTableInt_RejectsGarbage(t *testing.T) {
	table := mustTable(t, "SKU,Region,Stock\nSKU1,North,lots\n")

	if _, err := ParseInventory(table); !domain.IsValidation(err) {
		t.Errorf("expected validation error for non-numeric stock, got %v", err)
	}
}
