package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psiconervio/agente-ia/internal/services"
	"github.com/psiconervio/agente-ia/internal/utils"
)

type AskHandler struct {
	svc services.InteractionService
}

func NewAskHandler(svc services.InteractionService) *AskHandler {
	return &AskHandler{svc: svc}
}

type AskRequest struct {
	Input  string `json:"input"`
	UserID string `json:"userId"`
}

func (h *AskHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AskHandler.Ask", "invalid request body", err))
		return
	}

	out, err := h.svc.Ask(c.Request.Context(), req.Input, req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}
