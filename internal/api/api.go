// Package api wires the planning services into a gin router.
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/freshbites/planner/backend-go/internal/api/handlers"
	"github.com/freshbites/planner/backend-go/internal/api/middleware"
	"github.com/freshbites/planner/backend-go/internal/collab"
	"github.com/freshbites/planner/backend-go/internal/forecast"
	"github.com/freshbites/planner/backend-go/internal/service"
)

// Services bundles everything the router serves.
type Services struct {
	Inventory   *service.InventoryService
	Demand      *service.DemandService
	Suppliers   *service.SupplierService
	Procurement *service.ProcurementService
	Planning    *service.PlanningService
	Reset       *service.ResetService
	Forecast    forecast.Provider
	Collab      *collab.Store
	Uploads     *handlers.Uploads
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Logger(),
		middleware.Recovery(),
	)

	corsConfig := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalized, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowCredentials = false
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(string) bool { return true }
		} else if len(normalized) > 0 {
			corsConfig.AllowOrigins = normalized
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")

	inventoryHandler := handlers.NewInventoryHandler(services.Inventory, services.Uploads)
	apiGroup.POST("/upload_inventory", inventoryHandler.UploadInventory)
	apiGroup.GET("/stock", inventoryHandler.GetStock)
	apiGroup.GET("/inventory_predictor", inventoryHandler.GetGapReport)
	apiGroup.GET("/rebalance", inventoryHandler.Rebalance)
	apiGroup.POST("/safety_stock", inventoryHandler.SafetyStock)

	demandHandler := handlers.NewDemandHandler(services.Demand, services.Uploads)
	apiGroup.POST("/upload_demand", demandHandler.UploadDemand)
	apiGroup.GET("/demand", demandHandler.List)
	apiGroup.POST("/simulate_demand", demandHandler.SimulateSpike)

	supplierHandler := handlers.NewSupplierHandler(services.Suppliers, services.Uploads)
	apiGroup.POST("/upload_suppliers", supplierHandler.UploadSuppliers)
	apiGroup.GET("/suppliers", supplierHandler.Reliability)

	procurementHandler := handlers.NewProcurementHandler(services.Procurement, services.Uploads)
	apiGroup.POST("/upload_procurement", procurementHandler.UploadDemand)
	apiGroup.GET("/procurement_plan", procurementHandler.Plan)
	apiGroup.POST("/optimize_production", procurementHandler.Allocate)
	apiGroup.POST("/reset_procurement", procurementHandler.Reset)

	planningHandler := handlers.NewPlanningHandler(services.Planning, services.Uploads)
	apiGroup.POST("/production_plan", planningHandler.ProductionPlan)
	apiGroup.POST("/optimize_allocation", planningHandler.Optimize)
	apiGroup.POST("/whatif", planningHandler.WhatIf)
	apiGroup.POST("/whatif_analysis", planningHandler.WhatIfPerSKU)

	forecastHandler := handlers.NewForecastHandler(services.Forecast, services.Uploads)
	apiGroup.POST("/forecast_adjust", forecastHandler.Adjust)

	collabHandler := handlers.NewCollabHandler(services.Collab)
	apiGroup.GET("/kpis", collabHandler.KPIs)
	apiGroup.GET("/notes", collabHandler.Notes)
	apiGroup.POST("/notes", collabHandler.AddNote)
	apiGroup.POST("/notes/:id/approve", collabHandler.ApproveNote)
	apiGroup.PUT("/notes/:id/approve", collabHandler.ApproveNote)

	resetHandler := handlers.NewResetHandler(services.Reset)
	apiGroup.POST("/reset", resetHandler.Reset)

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		for _, part := range strings.Split(origin, ",") {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
