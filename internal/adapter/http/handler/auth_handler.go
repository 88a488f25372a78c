package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"textgate/internal/usecase"
)

// AuthHandler handles registration, login and logout
type AuthHandler struct {
	authUC usecase.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

type registerInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	out, err := h.authUC.Register(c.Request.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, out)
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	out, err := h.authUC.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

// Logout handles POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUC.Logout(c.Request.Context(), SessionToken(c)); err != nil {
		HandleUsecaseError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "logged out")
}
