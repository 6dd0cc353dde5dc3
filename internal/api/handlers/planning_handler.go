package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/freshbites/planner/backend-go/internal/domain"
	"github.com/freshbites/planner/backend-go/internal/engine"
	"github.com/freshbites/planner/backend-go/internal/ingest"
	"github.com/freshbites/planner/backend-go/internal/service"
)

type PlanningHandler struct {
	planning *service.PlanningService
	uploads  *Uploads
}

func NewPlanningHandler(planning *service.PlanningService, uploads *Uploads) *PlanningHandler {
	return &PlanningHandler{planning: planning, uploads: uploads}
}

func isJSON(c *gin.Context) bool {
	return strings.Contains(c.ContentType(), "json")
}

type productionRow struct {
	Plant    string  `json:"plant" binding:"required"`
	SKU      string  `json:"sku" binding:"required"`
	Capacity float64 `json:"capacity"`
	Forecast float64 `json:"forecast_demand"`
	// Absent margins default to 1, same as an absent column in a file.
	ProfitMargin *float64 `json:"profit_margin"`
}

type productionRequest struct {
	Rows     []productionRow `json:"rows" binding:"required"`
	Strategy string          `json:"strategy"`
}

// ProductionPlan splits plant capacity across SKUs. Accepts either a
// multipart file with a "strategy" form field or a JSON row list. The
// strategy defaults to demand-priority.
func (h *PlanningHandler) ProductionPlan(c *gin.Context) {
	var (
		rows     []domain.PlantSKURow
		rawStrat string
	)

	if isJSON(c) {
		var req productionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		rawStrat = req.Strategy
		rows = make([]domain.PlantSKURow, 0, len(req.Rows))
		for _, r := range req.Rows {
			margin := 1.0
			if r.ProfitMargin != nil {
				margin = *r.ProfitMargin
			}
			rows = append(rows, domain.PlantSKURow{
				Plant:        r.Plant,
				SKU:          r.SKU,
				Capacity:     r.Capacity,
				Forecast:     r.Forecast,
				ProfitMargin: margin,
			})
		}
	} else {
		table, err := h.uploads.ReadTable(c)
		if err != nil {
			respondError(c, err)
			return
		}
		rows, err = ingest.ParseProductionRows(table)
		if err != nil {
			respondError(c, err)
			return
		}
		rawStrat = c.PostForm("strategy")
	}

	if rawStrat == "" {
		rawStrat = string(engine.StrategyDemandPriority)
	}
	strategy, err := engine.ParseStrategy(rawStrat)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.planning.ProductionPlan(rows, strategy))
}

type optimizeRequest struct {
	Plants []domain.Plant     `json:"plants" binding:"required"`
	SKUs   []domain.SKUDemand `json:"skus" binding:"required"`
}

// Optimize maximizes total profit under plant capacity and SKU demand
// constraints. Accepts a multipart file or a JSON plants/skus pair.
func (h *PlanningHandler) Optimize(c *gin.Context) {
	var (
		plants []domain.Plant
		skus   []domain.SKUDemand
	)

	if isJSON(c) {
		var req optimizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		plants, skus = req.Plants, req.SKUs
	} else {
		table, err := h.uploads.ReadTable(c)
		if err != nil {
			respondError(c, err)
			return
		}
		plants, skus, err = ingest.ParseOptimizerData(table)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	allocations, err := h.planning.OptimizeAllocation(plants, skus)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, allocations)
}

type whatIfRequest struct {
	BaseDemand     float64 `json:"base_demand" form:"base_demand"`
	BaseCapacity   float64 `json:"base_capacity" form:"base_capacity"`
	DemandChange   float64 `json:"demand_change_pct" form:"demand_change_pct"`
	CapacityChange float64 `json:"capacity_change_pct" form:"capacity_change_pct"`
}

// WhatIf evaluates an aggregate scenario. A multipart request may carry a
// demand file whose totals become the base figures; with no base figures
// at all the configured baselines apply.
func (h *PlanningHandler) WhatIf(c *gin.Context) {
	var req whatIfRequest
	if isJSON(c) {
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
				return
			}
		}
	} else {
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
			return
		}
		if _, err := c.FormFile("file"); err == nil {
			table, err := h.uploads.ReadTable(c)
			if err != nil {
				respondError(c, err)
				return
			}
			demand, capacity, err := ingest.SumDemandCapacity(table)
			if err != nil {
				respondError(c, err)
				return
			}
			req.BaseDemand, req.BaseCapacity = demand, capacity
		}
	}

	result := h.planning.WhatIf(req.BaseDemand, req.BaseCapacity, req.DemandChange, req.CapacityChange)
	c.JSON(http.StatusOK, result)
}

type whatIfSKURequest struct {
	// Absent factor means capacity unchanged.
	CapacityFactor *float64 `json:"capacity_factor"`
	LeadTimeDays   int      `json:"lead_time_days"`
}

// WhatIfPerSKU evaluates a capacity factor and lead-time delta against the
// stored per-SKU totals.
func (h *PlanningHandler) WhatIfPerSKU(c *gin.Context) {
	var req whatIfSKURequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	factor := 1.0
	if req.CapacityFactor != nil {
		factor = *req.CapacityFactor
	}

	rows, err := h.planning.WhatIfPerSKU(c.Request.Context(), factor, req.LeadTimeDays)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
