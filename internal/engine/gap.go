// Package engine holds the allocation and rebalancing core: pure functions
// that turn demand/stock/capacity/supplier snapshots into actionable
// numbers. Nothing in this package performs I/O or keeps state between
// calls; every function builds a fresh result set from its inputs.
package engine

import (
	"sort"

	"github.com/freshbites/planner/backend-go/internal/domain"
)

// overstockFactor is the fixed threshold above which stock counts as
// overstock relative to forecast.
const overstockFactor = 1.3

// KeyTotal is an aggregated total for one (SKU, Region) key.
type KeyTotal struct {
	SKU    string
	Region string
	Total  int
}

// MergeSnapshot outer-joins forecast totals and stock totals on
// (SKU, Region). Keys present on only one side get 0 for the missing side.
// Rows come back sorted by SKU then Region so identical inputs always yield
// identical output.
func MergeSnapshot(forecasts, stocks []KeyTotal) []domain.GapRow {
	type key struct{ sku, region string }

	merged := make(map[key]*domain.GapRow)
	for _, f := range forecasts {
		k := key{f.SKU, f.Region}
		if row, ok := merged[k]; ok {
			row.Forecast += f.Total
		} else {
			merged[k] = &domain.GapRow{SKU: f.SKU, Region: f.Region, Forecast: f.Total}
		}
	}
	for _, s := range stocks {
		k := key{s.SKU, s.Region}
		if row, ok := merged[k]; ok {
			row.Stock += s.Total
		} else {
			merged[k] = &domain.GapRow{SKU: s.SKU, Region: s.Region, Stock: s.Total}
		}
	}

	rows := make([]domain.GapRow, 0, len(merged))
	for _, row := range merged {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].SKU != rows[j].SKU {
			return rows[i].SKU < rows[j].SKU
		}
		return rows[i].Region < rows[j].Region
	})

	return rows
}

// Classify labels stock against forecast. Shortage on strict
// stock < forecast; Overstock on strict stock > 1.3*forecast; everything
// else, including exact equality at either boundary, is Balanced.
func Classify(stock, forecast int) domain.GapStatus {
	switch {
	case stock < forecast:
		return domain.StatusShortage
	case float64(stock) > float64(forecast)*overstockFactor:
		return domain.StatusOverstock
	default:
		return domain.StatusBalanced
	}
}

// ClassifyGaps labels each snapshot row. Empty input yields an empty
// result, not an error.
func ClassifyGaps(rows []domain.GapRow) []domain.GapResult {
	results := make([]domain.GapResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, domain.GapResult{
			SKU:      row.SKU,
			Region:   row.Region,
			Forecast: row.Forecast,
			Stock:    row.Stock,
			Status:   Classify(row.Stock, row.Forecast),
		})
	}
	return results
}
