package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshbites/planner/backend-go/internal/ingest"
	"github.com/freshbites/planner/backend-go/internal/service"
)

type DemandHandler struct {
	demand  *service.DemandService
	uploads *Uploads
}

func NewDemandHandler(demand *service.DemandService, uploads *Uploads) *DemandHandler {
	return &DemandHandler{demand: demand, uploads: uploads}
}

// UploadDemand replaces the demand dataset from a CSV or XLSX file.
func (h *DemandHandler) UploadDemand(c *gin.Context) {
	table, err := h.uploads.ReadTable(c)
	if err != nil {
		respondError(c, err)
		return
	}
	rows, err := ingest.ParseDemand(table)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.demand.Upload(c.Request.Context(), rows); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "demand uploaded", "rows": len(rows)})
}

// List returns demand grouped by (week, region, SKU).
func (h *DemandHandler) List(c *gin.Context) {
	rows, err := h.demand.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type spikeRequest struct {
	SKU          string  `json:"sku" binding:"required"`
	Region       string  `json:"region" binding:"required"`
	SpikePercent float64 `json:"spike_percent"`
}

// SimulateSpike projects a percentage spike onto one (SKU, region) weekly
// series without touching stored data.
func (h *DemandHandler) SimulateSpike(c *gin.Context) {
	var req spikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sku and region are required"})
		return
	}

	rows, err := h.demand.SimulateSpike(c.Request.Context(), req.SKU, req.Region, req.SpikePercent)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
