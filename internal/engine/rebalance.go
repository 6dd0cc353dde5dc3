package engine

import (
	"fmt"
	"sort"

	"github.com/freshbites/planner/backend-go/internal/domain"
)

// MatchingPolicy selects how the rebalancer pairs shortage and surplus
// regions within a SKU.
//
// GreedyMatching emits the full shortage×surplus cross product without
// decrementing a surplus as it is matched, so a single surplus may back
// several suggestions whose quantities, if all executed, exceed its actual
// excess. ConservativeMatching tracks remaining surplus and remaining need
// across matches so the suggestion set is executable as a whole.
type MatchingPolicy string

const (
	GreedyMatching       MatchingPolicy = "greedy"
	ConservativeMatching MatchingPolicy = "conservative"
)

// ParseMatchingPolicy validates a policy name supplied by the caller.
func ParseMatchingPolicy(s string) (MatchingPolicy, error) {
	switch MatchingPolicy(s) {
	case GreedyMatching, ConservativeMatching:
		return MatchingPolicy(s), nil
	}
	return "", &domain.ValidationError{
		Dataset: "rebalance",
		Reason:  fmt.Sprintf("unknown matching policy %q", s),
	}
}

// SuggestTransfers proposes inter-region transfers per SKU from the
// aggregated (SKU, Region) snapshot. When no SKU has anything to move, a
// single placeholder suggestion with quantity 0 is returned so callers
// always see a non-empty response shape.
func SuggestTransfers(rows []domain.GapRow, policy MatchingPolicy) []domain.TransferSuggestion {
	groups := groupBySKU(rows)

	var suggestions []domain.TransferSuggestion
	for _, group := range groups {
		var shortages, surpluses []domain.GapRow
		for _, row := range group.rows {
			switch {
			case row.Stock < row.Forecast:
				shortages = append(shortages, row)
			case float64(row.Stock) > float64(row.Forecast)*overstockFactor:
				surpluses = append(surpluses, row)
			}
		}

		switch {
		case len(shortages) > 0 && len(surpluses) > 0:
			suggestions = append(suggestions, matchBoth(group.sku, shortages, surpluses, policy)...)
		case len(shortages) > 0:
			suggestions = append(suggestions, drainDonor(group.sku, group.rows, shortages, policy)...)
		case len(surpluses) > 0:
			suggestions = append(suggestions, fillReceiver(group.sku, group.rows, surpluses)...)
		}
	}

	if len(suggestions) == 0 {
		return []domain.TransferSuggestion{{SKU: "N/A", FromRegion: "-", ToRegion: "-", Quantity: 0}}
	}
	return suggestions
}

type skuGroup struct {
	sku  string
	rows []domain.GapRow
}

func groupBySKU(rows []domain.GapRow) []skuGroup {
	index := make(map[string]int)
	var groups []skuGroup
	for _, row := range rows {
		i, ok := index[row.SKU]
		if !ok {
			i = len(groups)
			index[row.SKU] = i
			groups = append(groups, skuGroup{sku: row.SKU})
		}
		groups[i].rows = append(groups[i].rows, row)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].sku < groups[j].sku })
	return groups
}

// matchBoth pairs every shortage with every surplus. Quantity is the
// smaller of the shortage's unmet need and the surplus's excess over
// forecast; zero-quantity pairs are skipped.
func matchBoth(sku string, shortages, surpluses []domain.GapRow, policy MatchingPolicy) []domain.TransferSuggestion {
	if policy == ConservativeMatching {
		return matchBothConservative(sku, shortages, surpluses)
	}

	var out []domain.TransferSuggestion
	for _, short := range shortages {
		need := short.Forecast - short.Stock
		for _, surplus := range surpluses {
			excess := surplus.Stock - surplus.Forecast
			qty := min(need, excess)
			if qty > 0 {
				out = append(out, domain.TransferSuggestion{
					SKU:        sku,
					FromRegion: surplus.Region,
					ToRegion:   short.Region,
					Quantity:   qty,
				})
			}
		}
	}
	return out
}

func matchBothConservative(sku string, shortages, surpluses []domain.GapRow) []domain.TransferSuggestion {
	remaining := make([]int, len(surpluses))
	for i, surplus := range surpluses {
		remaining[i] = surplus.Stock - surplus.Forecast
	}

	var out []domain.TransferSuggestion
	for _, short := range shortages {
		need := short.Forecast - short.Stock
		for i, surplus := range surpluses {
			if need <= 0 {
				break
			}
			qty := min(need, remaining[i])
			if qty <= 0 {
				continue
			}
			need -= qty
			remaining[i] -= qty
			out = append(out, domain.TransferSuggestion{
				SKU:        sku,
				FromRegion: surplus.Region,
				ToRegion:   short.Region,
				Quantity:   qty,
			})
		}
	}
	return out
}

// drainDonor handles SKUs with shortages but no surplus: the region holding
// the most stock donates to each shortage region, capped by the donor's
// stock on hand.
func drainDonor(sku string, group, shortages []domain.GapRow, policy MatchingPolicy) []domain.TransferSuggestion {
	donor := group[0]
	for _, row := range group[1:] {
		if row.Stock > donor.Stock {
			donor = row
		}
	}

	available := donor.Stock
	var out []domain.TransferSuggestion
	for _, short := range shortages {
		if short.Region == donor.Region {
			continue
		}
		need := short.Forecast - short.Stock
		if need <= 0 {
			continue
		}
		limit := donor.Stock
		if policy == ConservativeMatching {
			limit = available
		}
		qty := min(need, limit)
		if qty <= 0 {
			continue
		}
		if policy == ConservativeMatching {
			available -= qty
		}
		out = append(out, domain.TransferSuggestion{
			SKU:        sku,
			FromRegion: donor.Region,
			ToRegion:   short.Region,
			Quantity:   qty,
		})
	}
	return out
}

// fillReceiver handles SKUs with surpluses but no shortage: each surplus
// sends its full excess to the region holding the least stock. The
// quantity is deliberately not capped by the receiver's need; with no
// shortage there is no need to cap against.
func fillReceiver(sku string, group, surpluses []domain.GapRow) []domain.TransferSuggestion {
	receiver := group[0]
	for _, row := range group[1:] {
		if row.Stock < receiver.Stock {
			receiver = row
		}
	}

	var out []domain.TransferSuggestion
	for _, surplus := range surpluses {
		if surplus.Region == receiver.Region {
			continue
		}
		qty := surplus.Stock - surplus.Forecast
		if qty <= 0 {
			continue
		}
		out = append(out, domain.TransferSuggestion{
			SKU:        sku,
			FromRegion: surplus.Region,
			ToRegion:   receiver.Region,
			Quantity:   qty,
		})
	}
	return out
}
