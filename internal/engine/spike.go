package engine

import "github.com/freshbites/planner/backend-go/internal/domain"

// SimulateSpike applies a percentage spike to the actual demand of a weekly
// series without touching the source rows. Rows are expected in
// chronological order. A week is flagged as a spike when its actual demand
// exceeds the previous week's actual by more than the spike percentage.
func SimulateSpike(rows []domain.WeeklyDemand, spikePercent float64) []domain.SimulatedDemand {
	factor := 1 + spikePercent/100

	results := make([]domain.SimulatedDemand, 0, len(rows))
	prevActual := -1
	for _, row := range rows {
		spike := prevActual > 0 && float64(row.Actual) > float64(prevActual)*factor

		results = append(results, domain.SimulatedDemand{
			Week:      row.Week,
			Region:    row.Region,
			SKU:       row.SKU,
			Forecast:  row.Forecast,
			Actual:    row.Actual,
			Simulated: round2(float64(row.Actual) * factor),
			Spike:     spike,
		})
		prevActual = row.Actual
	}
	return results
}
