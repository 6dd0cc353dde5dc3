package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshbites/planner/backend-go/internal/collab"
)

type CollabHandler struct {
	store *collab.Store
}

func NewCollabHandler(store *collab.Store) *CollabHandler {
	return &CollabHandler{store: store}
}

// KPIs returns the current headline KPI snapshot.
func (h *CollabHandler) KPIs(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.KPIs())
}

// Notes lists all planner notes in insertion order.
func (h *CollabHandler) Notes(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Notes())
}

type noteRequest struct {
	Text string `json:"text" binding:"required"`
}

// AddNote records a new unapproved note.
func (h *CollabHandler) AddNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	c.JSON(http.StatusCreated, h.store.AddNote(req.Text))
}

// ApproveNote flags a note as approved.
func (h *CollabHandler) ApproveNote(c *gin.Context) {
	id := c.Param("id")
	note, ok := h.store.ApproveNote(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
		return
	}
	c.JSON(http.StatusOK, note)
}
