package engine

import (
	"math"

	"github.com/freshbites/planner/backend-go/internal/domain"
)

// ScenarioParams are the base figures and percentage deltas for an
// aggregate what-if evaluation.
type ScenarioParams struct {
	BaseDemand     float64
	BaseCapacity   float64
	BaseCost       float64
	DemandChange   float64 // percent
	CapacityChange float64 // percent
}

// EvaluateScenario recomputes demand, capacity, stockouts, service level
// and excess cost under the given percentage deltas. Service level is
// defined as 100 when adjusted demand is zero. All figures are rounded to
// 2 decimals.
func EvaluateScenario(p ScenarioParams) domain.ScenarioResult {
	adjDemand := p.BaseDemand * (1 + p.DemandChange/100)
	adjCapacity := p.BaseCapacity * (1 + p.CapacityChange/100)

	serviceLevel := 100.0
	if adjDemand != 0 {
		serviceLevel = math.Min(100, adjCapacity/adjDemand*100)
	}

	return domain.ScenarioResult{
		AdjustedDemand:   round2(adjDemand),
		AdjustedCapacity: round2(adjCapacity),
		Stockouts:        round2(math.Max(0, adjDemand-adjCapacity)),
		ServiceLevel:     round2(serviceLevel),
		ExcessCost:       round2(p.BaseCost * (1 + p.DemandChange/200)),
	}
}

// leadTimePenalty is the stock units lost per day of added lead time in the
// per-SKU what-if.
const leadTimePenalty = 10

// EvaluateSKUScenario applies a capacity multiplier and a lead-time delta
// to per-SKU forecast/stock totals. Stock is clamped at zero before the
// service-level ratio; service level is 1 when the adjusted forecast is
// zero, and is reported as a percentage rounded to 1 decimal.
func EvaluateSKUScenario(rows []domain.SKUTotals, capacityFactor float64, leadTimeDays int) []domain.SKUScenarioRow {
	results := make([]domain.SKUScenarioRow, 0, len(rows))
	for _, row := range rows {
		adjForecast := float64(row.Forecast) * capacityFactor
		adjStock := math.Max(float64(row.Stock)-float64(leadTimeDays*leadTimePenalty), 0)

		serviceLevel := 1.0
		if adjForecast > 0 {
			serviceLevel = math.Min(adjStock/adjForecast, 1)
		}

		results = append(results, domain.SKUScenarioRow{
			SKU:              row.SKU,
			AdjustedForecast: int(adjForecast),
			AdjustedStock:    int(adjStock),
			ServiceLevel:     round1(serviceLevel * 100),
		})
	}
	return results
}

// MergeSKUTotals outer-joins per-SKU forecast totals and stock totals,
// missing sides defaulting to 0, sorted by SKU.
func MergeSKUTotals(forecasts, stocks []KeyTotal) []domain.SKUTotals {
	merged := MergeSnapshot(collapseRegions(forecasts), collapseRegions(stocks))
	out := make([]domain.SKUTotals, 0, len(merged))
	for _, row := range merged {
		out = append(out, domain.SKUTotals{SKU: row.SKU, Forecast: row.Forecast, Stock: row.Stock})
	}
	return out
}

func collapseRegions(totals []KeyTotal) []KeyTotal {
	out := make([]KeyTotal, len(totals))
	for i, t := range totals {
		out[i] = KeyTotal{SKU: t.SKU, Total: t.Total}
	}
	return out
}
