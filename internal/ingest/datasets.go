package ingest

import (
	"strings"
	"unicode"

	"github.com/freshbites/planner/backend-go/internal/domain"
)

// ParseDemand parses a demand dataset. Requires Week, Region, SKU,
// Forecast_Demand and Actual_Demand columns. SKUs are uppercased and
// regions title-cased so repeated uploads key consistently.
func ParseDemand(t *Table) ([]domain.DemandRecord, error) {
	if err := t.Require("demand", "Week", "Region", "SKU", "Forecast_Demand", "Actual_Demand"); err != nil {
		return nil, err
	}

	records := make([]domain.DemandRecord, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		week, err := t.Int(i, "Week")
		if err != nil {
			return nil, err
		}
		forecast, err := t.Int(i, "Forecast_Demand")
		if err != nil {
			return nil, err
		}
		actual, err := t.Int(i, "Actual_Demand")
		if err != nil {
			return nil, err
		}
		records = append(records, domain.DemandRecord{
			Week:     week,
			SKU:      strings.ToUpper(t.String(i, "SKU")),
			Region:   titleCase(t.String(i, "Region")),
			Forecast: forecast,
			Actual:   actual,
		})
	}
	return records, nil
}

// ParseInventory parses an inventory dataset. Requires SKU, Region and
// Stock; a Forecast column is picked up when present.
func ParseInventory(t *Table) ([]domain.InventoryRecord, error) {
	if err := t.Require("inventory", "SKU", "Region", "Stock"); err != nil {
		return nil, err
	}

	hasForecast := t.Has("Forecast")
	records := make([]domain.InventoryRecord, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		stock, err := t.Int(i, "Stock")
		if err != nil {
			return nil, err
		}
		rec := domain.InventoryRecord{
			SKU:    strings.ToUpper(t.String(i, "SKU")),
			Region: titleCase(t.String(i, "Region")),
			Stock:  stock,
		}
		if hasForecast {
			if rec.Forecast, err = t.Int(i, "Forecast"); err != nil {
				return nil, err
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseSuppliers parses a supplier dataset. SLA columns are required;
// procurement columns (unit cost, MOQ, max capacity, linked SKU) are
// optional.
func ParseSuppliers(t *Table) ([]domain.SupplierRecord, error) {
	err := t.Require("suppliers", "Supplier_ID", "Name", "Committed_Lead_Time",
		"Avg_Lead_Time_Days", "Deliveries", "On_Time_Deliveries")
	if err != nil {
		return nil, err
	}

	records := make([]domain.SupplierRecord, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		rec := domain.SupplierRecord{
			SupplierID: t.String(i, "Supplier_ID"),
			Name:       t.String(i, "Name"),
			SKULinked:  strings.ToUpper(t.String(i, "SKU_Linked")),
		}
		if rec.CommittedLeadTime, err = t.Int(i, "Committed_Lead_Time"); err != nil {
			return nil, err
		}
		if rec.AvgLeadTime, err = t.Int(i, "Avg_Lead_Time_Days"); err != nil {
			return nil, err
		}
		if rec.Deliveries, err = t.Int(i, "Deliveries"); err != nil {
			return nil, err
		}
		if rec.OnTimeDeliveries, err = t.Int(i, "On_Time_Deliveries"); err != nil {
			return nil, err
		}
		if rec.UnitCost, err = t.Float(i, "Unit_Cost"); err != nil {
			return nil, err
		}
		if rec.MinOrderQty, err = t.Int(i, "Min_Order_Qty"); err != nil {
			return nil, err
		}
		if rec.MaxCapacity, err = t.Int(i, "Max_Capacity"); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseProcurementDemand parses the single-file procurement upload: SKU and
// Forecast_Demand only. Rows come back as global-region demand records.
func ParseProcurementDemand(t *Table) ([]domain.DemandRecord, error) {
	if err := t.Require("procurement", "SKU", "Forecast_Demand"); err != nil {
		return nil, err
	}

	records := make([]domain.DemandRecord, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		forecast, err := t.Int(i, "Forecast_Demand")
		if err != nil {
			return nil, err
		}
		records = append(records, domain.DemandRecord{
			SKU:      strings.ToUpper(t.String(i, "SKU")),
			Region:   "Global",
			Forecast: forecast,
		})
	}
	return records, nil
}

// ParseProductionRows parses a production planning dataset: Plant, SKU,
// Capacity and Forecast required; Profit_Margin defaults to 1.0 when the
// column is absent.
func ParseProductionRows(t *Table) ([]domain.PlantSKURow, error) {
	if err := t.Require("production", "Plant", "SKU", "Capacity", "Forecast"); err != nil {
		return nil, err
	}

	hasMargin := t.Has("Profit_Margin")
	rows := make([]domain.PlantSKURow, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		capacity, err := t.Float(i, "Capacity")
		if err != nil {
			return nil, err
		}
		forecast, err := t.Float(i, "Forecast")
		if err != nil {
			return nil, err
		}
		row := domain.PlantSKURow{
			Plant:        t.String(i, "Plant"),
			SKU:          t.String(i, "SKU"),
			Capacity:     capacity,
			Forecast:     forecast,
			ProfitMargin: 1.0,
		}
		if hasMargin {
			if row.ProfitMargin, err = t.Float(i, "Profit_Margin"); err != nil {
				return nil, err
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ParseOptimizerData parses a profit-optimizer dataset with Plant, SKU,
// Capacity, Demand and Profit columns. Plants and SKUs are deduplicated on
// first occurrence, matching how the planner treats repeated rows.
func ParseOptimizerData(t *Table) ([]domain.Plant, []domain.SKUDemand, error) {
	if err := t.Require("optimizer", "Plant", "SKU", "Capacity", "Demand", "Profit"); err != nil {
		return nil, nil, err
	}

	var (
		plants     []domain.Plant
		skus       []domain.SKUDemand
		seenPlants = map[string]bool{}
		seenSKUs   = map[string]bool{}
	)
	for i := 0; i < t.Len(); i++ {
		plant := t.String(i, "Plant")
		if !seenPlants[plant] {
			seenPlants[plant] = true
			capacity, err := t.Int(i, "Capacity")
			if err != nil {
				return nil, nil, err
			}
			plants = append(plants, domain.Plant{Name: plant, Capacity: capacity})
		}

		sku := t.String(i, "SKU")
		if !seenSKUs[sku] {
			seenSKUs[sku] = true
			demand, err := t.Int(i, "Demand")
			if err != nil {
				return nil, nil, err
			}
			profit, err := t.Float(i, "Profit")
			if err != nil {
				return nil, nil, err
			}
			skus = append(skus, domain.SKUDemand{SKU: sku, Demand: demand, Profit: profit})
		}
	}
	return plants, skus, nil
}

// SumDemandCapacity totals the Demand and Capacity columns of a what-if
// baseline dataset.
func SumDemandCapacity(t *Table) (demand, capacity float64, err error) {
	if err := t.Require("what-if", "Demand", "Capacity"); err != nil {
		return 0, 0, err
	}
	for i := 0; i < t.Len(); i++ {
		d, err := t.Float(i, "Demand")
		if err != nil {
			return 0, 0, err
		}
		c, err := t.Float(i, "Capacity")
		if err != nil {
			return 0, 0, err
		}
		demand += d
		capacity += c
	}
	return demand, capacity, nil
}

// ParseSeries extracts the Demand column as a numeric series for the
// forecast provider. Empty cells are skipped.
func ParseSeries(t *Table) ([]float64, error) {
	if err := t.Require("forecast", "Demand"); err != nil {
		return nil, err
	}

	series := make([]float64, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		if t.String(i, "Demand") == "" {
			continue
		}
		v, err := t.Float(i, "Demand")
		if err != nil {
			return nil, err
		}
		series = append(series, v)
	}
	return series, nil
}

// titleCase uppercases the first letter of each space-separated word,
// lowercasing the rest, so "north", "NORTH" and "North" key together.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
