package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"textgate/internal/usecase"
	"textgate/pkg/provider"
)

// ProcessHandler handles text submissions to the provider dispatch
type ProcessHandler struct {
	dispatchUC usecase.DispatchUsecase
}

// NewProcessHandler creates a new process handler
func NewProcessHandler(dispatchUC usecase.DispatchUsecase) *ProcessHandler {
	return &ProcessHandler{dispatchUC: dispatchUC}
}

type processInput struct {
	API  string `json:"api"`
	Text string `json:"text"`
}

// Process handles POST /api/process
func (h *ProcessHandler) Process(c *gin.Context) {
	var input processInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if input.API == "" || input.Text == "" {
		respondError(c, http.StatusBadRequest, "Missing api choice or text")
		return
	}

	result, err := h.dispatchUC.Submit(c.Request.Context(), CurrentUser(c), provider.ID(input.API), input.Text)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
