// Package forecast is the external forecast-provider boundary. The
// planning core never calls it; the API layer asks a Provider for a
// projected series and serves the result as-is.
package forecast

import (
	"fmt"
	"math"
)

// MinObservations is the fewest points a provider needs to project from.
const MinObservations = 3

// Provider projects a demand series a number of periods ahead.
type Provider interface {
	Project(series []float64, periods int) ([]float64, error)
}

// HoltProvider projects with Holt's linear (double exponential) smoothing.
// It stands in for heavier time-series models behind the same interface.
type HoltProvider struct {
	Alpha float64 // level smoothing, (0,1)
	Beta  float64 // trend smoothing, (0,1)
}

// NewHoltProvider returns a provider with commonly used smoothing factors.
func NewHoltProvider() *HoltProvider {
	return &HoltProvider{Alpha: 0.5, Beta: 0.3}
}

func (p *HoltProvider) Project(series []float64, periods int) ([]float64, error) {
	if len(series) < MinObservations {
		return nil, fmt.Errorf("need at least %d data points, got %d", MinObservations, len(series))
	}
	if periods <= 0 {
		return []float64{}, nil
	}

	level := series[0]
	trend := series[1] - series[0]
	for _, x := range series[1:] {
		prevLevel := level
		level = p.Alpha*x + (1-p.Alpha)*(level+trend)
		trend = p.Beta*(level-prevLevel) + (1-p.Beta)*trend
	}

	out := make([]float64, periods)
	for h := 1; h <= periods; h++ {
		out[h-1] = math.Round((level+float64(h)*trend)*100) / 100
	}
	return out, nil
}
