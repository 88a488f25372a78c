package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"textgate/internal/usecase"
)

// ProfileHandler handles profile and usage ledger reads
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	usageUC   usecase.UsageUsecase
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUC usecase.ProfileUsecase, usageUC usecase.UsageUsecase) *ProfileHandler {
	return &ProfileHandler{profileUC: profileUC, usageUC: usageUC}
}

// Profile handles GET /api/profile
func (h *ProfileHandler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, h.profileUC.Get(c.Request.Context(), CurrentUser(c)))
}

// UpdateProfile handles PUT /api/update_profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var input usecase.UpdateKeysInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.profileUC.UpdateKeys(c.Request.Context(), CurrentUser(c), &input); err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Profile updated successfully")
}

// Usage handles GET /api/usage
func (h *ProfileHandler) Usage(c *gin.Context) {
	rows, err := h.usageUC.List(c.Request.Context(), CurrentUser(c).ID)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	// The ledger is served as a bare array, one row per provider.
	c.JSON(http.StatusOK, rows)
}
