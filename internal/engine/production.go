package engine

import (
	"fmt"

	"github.com/freshbites/planner/backend-go/internal/domain"
)

// Strategy selects how a plant's capacity is split across its SKUs.
type Strategy string

const (
	StrategyEqual          Strategy = "equal"
	StrategyDemandPriority Strategy = "demand-priority"
	StrategyProfitPriority Strategy = "profit-priority"
)

// ParseStrategy validates a strategy name supplied by the caller.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyEqual, StrategyDemandPriority, StrategyProfitPriority:
		return Strategy(s), nil
	}
	return "", &domain.ValidationError{
		Dataset: "production",
		Reason:  fmt.Sprintf("unknown strategy %q", s),
	}
}

// AllocateProduction splits each plant's capacity across its SKU rows under
// the chosen strategy. Plants are independent partitions; capacity is taken
// from a plant's first row. One result row is returned per input row, with
// the allocation rounded to 2 decimals.
//
// The equal strategy caps each SKU at its own forecast without
// redistributing the remainder, so the plant total may come in under
// capacity. The proportional strategies track capacity share, not demand,
// and may allocate a SKU more than its own forecast.
func AllocateProduction(rows []domain.PlantSKURow, strategy Strategy) []domain.AllocationResult {
	results := make([]domain.AllocationResult, 0, len(rows))
	for _, group := range groupByPlant(rows) {
		capacity := group.rows[0].Capacity
		allocations := make([]float64, len(group.rows))

		switch strategy {
		case StrategyEqual:
			share := capacity / float64(len(group.rows))
			for i, row := range group.rows {
				allocations[i] = share
				if row.Forecast < share {
					allocations[i] = row.Forecast
				}
			}

		case StrategyDemandPriority:
			var total float64
			for _, row := range group.rows {
				total += row.Forecast
			}
			if total > 0 {
				for i, row := range group.rows {
					allocations[i] = row.Forecast / total * capacity
				}
			}

		case StrategyProfitPriority:
			weights := make([]float64, len(group.rows))
			var total float64
			for i, row := range group.rows {
				weights[i] = row.Forecast * row.ProfitMargin
				total += weights[i]
			}
			if total > 0 {
				for i := range group.rows {
					allocations[i] = weights[i] / total * capacity
				}
			}
		}

		for i, row := range group.rows {
			results = append(results, domain.AllocationResult{
				Plant:        row.Plant,
				SKU:          row.SKU,
				Capacity:     row.Capacity,
				Forecast:     row.Forecast,
				Allocated:    round2(allocations[i]),
				ProfitMargin: row.ProfitMargin,
			})
		}
	}
	return results
}

type plantGroup struct {
	plant string
	rows  []domain.PlantSKURow
}

// groupByPlant partitions rows by plant, keeping first-seen plant order and
// input row order within a plant.
func groupByPlant(rows []domain.PlantSKURow) []plantGroup {
	index := make(map[string]int)
	var groups []plantGroup
	for _, row := range rows {
		i, ok := index[row.Plant]
		if !ok {
			i = len(groups)
			index[row.Plant] = i
			groups = append(groups, plantGroup{plant: row.Plant})
		}
		groups[i].rows = append(groups[i].rows, row)
	}
	return groups
}
