// backend-go/internal/domain/models.go
package domain

// DemandRecord is one weekly demand row for a SKU in a region.
type DemandRecord struct {
	Week     int    `json:"week" db:"week"`
	SKU      string `json:"sku" db:"sku"`
	Region   string `json:"region" db:"region"`
	Forecast int    `json:"forecast" db:"forecast"`
	Actual   int    `json:"actual" db:"actual"`
}

// InventoryRecord is one stock row for a SKU in a region.
type InventoryRecord struct {
	SKU      string `json:"sku" db:"sku"`
	Region   string `json:"region" db:"region"`
	Stock    int    `json:"stock" db:"stock"`
	Forecast int    `json:"forecast" db:"forecast"`
}

// SupplierRecord carries SLA performance and procurement constraints for one supplier.
type SupplierRecord struct {
	SupplierID        string  `json:"supplier_id" db:"supplier_id"`
	Name              string  `json:"name" db:"name"`
	CommittedLeadTime int     `json:"committed_lead_time" db:"committed_lead_time"`
	AvgLeadTime       int     `json:"avg_lead_time" db:"avg_lead_time"`
	Deliveries        int     `json:"deliveries" db:"deliveries"`
	OnTimeDeliveries  int     `json:"on_time_deliveries" db:"on_time_deliveries"`
	UnitCost          float64 `json:"unit_cost" db:"unit_cost"`
	MinOrderQty       int     `json:"min_order_qty" db:"min_order_qty"`
	MaxCapacity       int     `json:"max_capacity" db:"max_capacity"`
	SKULinked         string  `json:"sku_linked" db:"sku_linked"`
}

// PlantSKURow is one production planning input row. Capacity is constant
// across a plant's rows; Allocated on input is ignored and overwritten.
type PlantSKURow struct {
	Plant        string  `json:"plant"`
	SKU          string  `json:"sku"`
	Capacity     float64 `json:"capacity"`
	Forecast     float64 `json:"forecast"`
	ProfitMargin float64 `json:"profit_margin"`
}

// GapRow is the aggregated (SKU, Region) demand/stock snapshot the gap
// classifier and rebalancer consume.
type GapRow struct {
	SKU      string `json:"sku"`
	Region   string `json:"region"`
	Forecast int    `json:"forecast"`
	Stock    int    `json:"stock"`
}

// GapResult labels one (SKU, Region) pair.
type GapResult struct {
	SKU      string    `json:"sku"`
	Region   string    `json:"region"`
	Forecast int       `json:"forecast"`
	Stock    int       `json:"stock"`
	Status   GapStatus `json:"status"`
}

// TransferSuggestion proposes moving stock between two regions for a SKU.
type TransferSuggestion struct {
	SKU        string `json:"sku"`
	FromRegion string `json:"from"`
	ToRegion   string `json:"to"`
	Quantity   int    `json:"quantity"`
}

// AllocationResult is one production plan row.
type AllocationResult struct {
	Plant        string  `json:"plant"`
	SKU          string  `json:"sku"`
	Capacity     float64 `json:"capacity"`
	Forecast     float64 `json:"forecast"`
	Allocated    float64 `json:"allocated"`
	ProfitMargin float64 `json:"profit_margin"`
}

// Plant is a production site with a total capacity, as seen by the profit optimizer.
type Plant struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// SKUDemand is a SKU with total demand and per-unit profit, as seen by the
// profit optimizer.
type SKUDemand struct {
	SKU    string  `json:"sku"`
	Demand int     `json:"demand"`
	Profit float64 `json:"profit"`
}

// ProfitAllocation is one strictly positive allocation from the profit optimizer.
type ProfitAllocation struct {
	Plant     string  `json:"plant"`
	SKU       string  `json:"sku"`
	Allocated float64 `json:"allocated"`
}

// SafetyStockResult is the recommended buffer for one (SKU, Region) pair.
type SafetyStockResult struct {
	SKU          string `json:"sku"`
	Region       string `json:"region"`
	SafetyStock  int    `json:"safety_stock"`
	ServiceLevel string `json:"service_level"`
}

// ScenarioResult is the outcome of an aggregate what-if evaluation.
type ScenarioResult struct {
	AdjustedDemand   float64 `json:"adjusted_demand"`
	AdjustedCapacity float64 `json:"adjusted_capacity"`
	Stockouts        float64 `json:"stockouts"`
	ServiceLevel     float64 `json:"service_level"`
	ExcessCost       float64 `json:"excess_cost"`
}

// SKUScenarioRow is the per-SKU outcome of a what-if evaluation.
type SKUScenarioRow struct {
	SKU              string  `json:"sku"`
	AdjustedForecast int     `json:"adjusted_forecast"`
	AdjustedStock    int     `json:"adjusted_stock"`
	ServiceLevel     float64 `json:"service_level"`
}

// SKUTotals is the per-SKU forecast/stock snapshot the per-SKU what-if consumes.
type SKUTotals struct {
	SKU      string `json:"sku"`
	Forecast int    `json:"forecast"`
	Stock    int    `json:"stock"`
}

// WeeklyDemand is the grouped weekly series for one (SKU, Region), used by
// the demand views and the spike simulator.
type WeeklyDemand struct {
	Week     int    `json:"week" db:"week"`
	Region   string `json:"region" db:"region"`
	SKU      string `json:"sku" db:"sku"`
	Forecast int    `json:"forecast" db:"forecast"`
	Actual   int    `json:"actual" db:"actual"`
}

// SimulatedDemand is one spike-simulation output row.
type SimulatedDemand struct {
	Week      int     `json:"week"`
	Region    string  `json:"region"`
	SKU       string  `json:"sku"`
	Forecast  int     `json:"forecast"`
	Actual    int     `json:"actual"`
	Simulated float64 `json:"simulated"`
	Spike     bool    `json:"spike"`
}

// SupplierReliability is a supplier with derived SLA metrics.
type SupplierReliability struct {
	SupplierID        string  `json:"supplier_id"`
	Name              string  `json:"name"`
	CommittedLeadTime int     `json:"committed_lead_time"`
	AvgLeadTime       int     `json:"avg_lead_time"`
	Deliveries        int     `json:"deliveries"`
	OnTimeDeliveries  int     `json:"on_time_deliveries"`
	Reliability       float64 `json:"reliability"`
	Status            string  `json:"status"`
}

// ProcurementLine is one supplier-constrained procurement allocation.
type ProcurementLine struct {
	SKU          string  `json:"sku"`
	Forecast     int     `json:"forecast"`
	Allocated    int     `json:"allocated"`
	SupplierID   string  `json:"supplier_id"`
	SupplierName string  `json:"supplier_name"`
	UnitCost     float64 `json:"unit_cost"`
	TotalCost    float64 `json:"total_cost"`
}

// SKUForecast is a per-SKU forecast total, as served by the procurement plan.
type SKUForecast struct {
	SKU      string `json:"sku"`
	Forecast int    `json:"forecast"`
}
