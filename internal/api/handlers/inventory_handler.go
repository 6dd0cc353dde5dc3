package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshbites/planner/backend-go/internal/engine"
	"github.com/freshbites/planner/backend-go/internal/ingest"
	"github.com/freshbites/planner/backend-go/internal/service"
)

type InventoryHandler struct {
	inventory *service.InventoryService
	uploads   *Uploads
}

func NewInventoryHandler(inventory *service.InventoryService, uploads *Uploads) *InventoryHandler {
	return &InventoryHandler{inventory: inventory, uploads: uploads}
}

// UploadInventory replaces the inventory dataset from a CSV or XLSX file.
func (h *InventoryHandler) UploadInventory(c *gin.Context) {
	table, err := h.uploads.ReadTable(c)
	if err != nil {
		respondError(c, err)
		return
	}
	rows, err := ingest.ParseInventory(table)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.inventory.UploadInventory(c.Request.Context(), rows); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "inventory uploaded", "rows": len(rows)})
}

// GetStock returns per-(region, SKU) stock totals.
func (h *InventoryHandler) GetStock(c *gin.Context) {
	stock, err := h.inventory.Stock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stock)
}

// GetGapReport classifies every (SKU, region) pair against its forecast.
func (h *InventoryHandler) GetGapReport(c *gin.Context) {
	report, err := h.inventory.GapReport(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Rebalance suggests inter-region transfers. The matching policy defaults
// to greedy; pass ?policy=conservative for surplus-conserving matching.
func (h *InventoryHandler) Rebalance(c *gin.Context) {
	policy := engine.GreedyMatching
	if p := c.Query("policy"); p != "" {
		parsed, err := engine.ParseMatchingPolicy(p)
		if err != nil {
			respondError(c, err)
			return
		}
		policy = parsed
	}

	suggestions, err := h.inventory.Rebalance(c.Request.Context(), policy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

type safetyStockRequest struct {
	ServiceLevel float64 `json:"service_level"`
}

// SafetyStock sizes per-(SKU, region) buffers. Out-of-range service levels
// fall back to 0.95.
func (h *InventoryHandler) SafetyStock(c *gin.Context) {
	var req safetyStockRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	results, err := h.inventory.SafetyStock(c.Request.Context(), req.ServiceLevel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
