package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshbites/planner/backend-go/internal/forecast"
	"github.com/freshbites/planner/backend-go/internal/ingest"
)

// DefaultForecastPeriods is how far ahead a projection runs when the
// caller does not say.
const DefaultForecastPeriods = 4

type ForecastHandler struct {
	provider forecast.Provider
	uploads  *Uploads
}

func NewForecastHandler(provider forecast.Provider, uploads *Uploads) *ForecastHandler {
	return &ForecastHandler{provider: provider, uploads: uploads}
}

type forecastRequest struct {
	Series  []float64 `json:"series" binding:"required"`
	Periods int       `json:"periods"`
}

// Adjust projects a demand series ahead. Accepts a JSON series or a
// multipart file with a demand column.
func (h *ForecastHandler) Adjust(c *gin.Context) {
	var (
		series  []float64
		periods int
	)

	if isJSON(c) {
		var req forecastRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		series, periods = req.Series, req.Periods
	} else {
		table, err := h.uploads.ReadTable(c)
		if err != nil {
			respondError(c, err)
			return
		}
		series, err = ingest.ParseSeries(table)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	if periods <= 0 {
		periods = DefaultForecastPeriods
	}

	projected, err := h.provider.Project(series, periods)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"forecast": projected, "periods": periods})
}
