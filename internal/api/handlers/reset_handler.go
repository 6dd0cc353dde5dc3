package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshbites/planner/backend-go/internal/service"
)

type ResetHandler struct {
	reset *service.ResetService
}

func NewResetHandler(reset *service.ResetService) *ResetHandler {
	return &ResetHandler{reset: reset}
}

// Reset wipes every dataset, cached report, note and saved upload.
func (h *ResetHandler) Reset(c *gin.Context) {
	if err := h.reset.Reset(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all planning data cleared"})
}
