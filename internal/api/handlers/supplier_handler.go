package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshbites/planner/backend-go/internal/ingest"
	"github.com/freshbites/planner/backend-go/internal/service"
)

type SupplierHandler struct {
	suppliers *service.SupplierService
	uploads   *Uploads
}

func NewSupplierHandler(suppliers *service.SupplierService, uploads *Uploads) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers, uploads: uploads}
}

// UploadSuppliers replaces the supplier dataset from a CSV or XLSX file.
func (h *SupplierHandler) UploadSuppliers(c *gin.Context) {
	table, err := h.uploads.ReadTable(c)
	if err != nil {
		respondError(c, err)
		return
	}
	rows, err := ingest.ParseSuppliers(table)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.suppliers.Upload(c.Request.Context(), rows); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "suppliers uploaded", "rows": len(rows)})
}

// Reliability lists suppliers with on-time percentages and delay flags.
func (h *SupplierHandler) Reliability(c *gin.Context) {
	results, err := h.suppliers.Reliability(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
