package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/freshbites/planner/backend-go/internal/domain"
)

const (
	// fallbackSigma stands in for demand variability when a group has a
	// single forecast observation.
	fallbackSigma = 10.0
	// safetyLeadTime is the assumed replenishment lead time, in the same
	// cadence as the forecast rows.
	safetyLeadTime = 2.0
)

// EstimateSafetyStock sizes a statistical buffer per (SKU, Region) group of
// raw forecast rows. Sigma is the population standard deviation of the
// group's forecasts (fallback 10 for single-row groups); z is a two-tier
// simplification: 1.65 at service level >= 0.95, else 1.28. The result is
// floor(z * sigma * sqrt(leadTime)), never negative.
func EstimateSafetyStock(records []domain.DemandRecord, serviceLevel float64) []domain.SafetyStockResult {
	type key struct{ sku, region string }

	groups := make(map[key][]float64)
	for _, r := range records {
		k := key{r.SKU, r.Region}
		groups[k] = append(groups[k], float64(r.Forecast))
	}

	keys := make([]key, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].sku != keys[j].sku {
			return keys[i].sku < keys[j].sku
		}
		return keys[i].region < keys[j].region
	})

	z := 1.28
	if serviceLevel >= 0.95 {
		z = 1.65
	}
	label := fmt.Sprintf("%d%%", int(serviceLevel*100))

	results := make([]domain.SafetyStockResult, 0, len(keys))
	for _, k := range keys {
		forecasts := groups[k]
		sigma := fallbackSigma
		if len(forecasts) > 1 {
			sigma = popStdDev(forecasts)
		}
		results = append(results, domain.SafetyStockResult{
			SKU:          k.sku,
			Region:       k.region,
			SafetyStock:  int(z * sigma * math.Sqrt(safetyLeadTime)),
			ServiceLevel: label,
		})
	}
	return results
}

// popStdDev is the population standard deviation (divisor n, not n-1),
// matching the reference statistics.
func popStdDev(xs []float64) float64 {
	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}
