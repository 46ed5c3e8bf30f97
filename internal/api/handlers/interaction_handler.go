package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psiconervio/agente-ia/internal/services"
)

type InteractionHandler struct {
	svc services.InteractionService
}

func NewInteractionHandler(svc services.InteractionService) *InteractionHandler {
	return &InteractionHandler{svc: svc}
}

func (h *InteractionHandler) ListByUser(c *gin.Context) {
	userID := c.Param("user_id")

	rows, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":      userID,
		"interactions": rows,
	})
}

// Wipe deletes every stored interaction. Admin-only; routed behind the
// JWT + role middleware.
func (h *InteractionHandler) Wipe(c *gin.Context) {
	if err := h.svc.DeleteAll(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "all interactions deleted"})
}
