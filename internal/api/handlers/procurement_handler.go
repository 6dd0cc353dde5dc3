package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshbites/planner/backend-go/internal/ingest"
	"github.com/freshbites/planner/backend-go/internal/service"
)

type ProcurementHandler struct {
	procurement *service.ProcurementService
	uploads     *Uploads
}

func NewProcurementHandler(procurement *service.ProcurementService, uploads *Uploads) *ProcurementHandler {
	return &ProcurementHandler{procurement: procurement, uploads: uploads}
}

// UploadDemand replaces demand with a per-SKU procurement dataset.
func (h *ProcurementHandler) UploadDemand(c *gin.Context) {
	table, err := h.uploads.ReadTable(c)
	if err != nil {
		respondError(c, err)
		return
	}
	rows, err := ingest.ParseProcurementDemand(table)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.procurement.UploadDemand(c.Request.Context(), rows); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "procurement demand uploaded", "rows": len(rows)})
}

// Plan returns per-SKU forecast totals.
func (h *ProcurementHandler) Plan(c *gin.Context) {
	plan, err := h.procurement.Plan(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

type allocationRequest struct {
	Capacity int `json:"capacity"`
}

// Allocate spreads SKU demand over linked suppliers under MOQ, supplier
// capacity and a global capacity bound.
func (h *ProcurementHandler) Allocate(c *gin.Context) {
	var req allocationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	lines, err := h.procurement.Allocate(c.Request.Context(), req.Capacity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

// Reset clears demand and supplier data.
func (h *ProcurementHandler) Reset(c *gin.Context) {
	if err := h.procurement.Reset(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "procurement data cleared"})
}
