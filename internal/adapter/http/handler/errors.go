package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"textgate/internal/usecase"
	"textgate/pkg/provider"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP error responses.
// It provides consistent error handling across all handlers.
func MapUsecaseError(err error) ErrorResponse {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return ErrorResponse{StatusCode: http.StatusUnauthorized, Message: usecase.ErrInvalidCredentials.Error()}
	case errors.Is(err, usecase.ErrUsernameTaken):
		return ErrorResponse{StatusCode: http.StatusConflict, Message: usecase.ErrUsernameTaken.Error()}
	case errors.Is(err, usecase.ErrWeakPassword):
		return ErrorResponse{StatusCode: http.StatusBadRequest, Message: usecase.ErrWeakPassword.Error()}
	case errors.Is(err, usecase.ErrSessionInvalid):
		return ErrorResponse{StatusCode: http.StatusUnauthorized, Message: usecase.ErrSessionInvalid.Error()}
	case errors.Is(err, usecase.ErrEmptyText):
		return ErrorResponse{StatusCode: http.StatusBadRequest, Message: usecase.ErrEmptyText.Error()}
	case errors.Is(err, usecase.ErrInvalidProvider):
		return ErrorResponse{StatusCode: http.StatusBadRequest, Message: usecase.ErrInvalidProvider.Error()}
	case errors.Is(err, usecase.ErrProviderNotConfigured):
		return ErrorResponse{StatusCode: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, provider.ErrMalformedResponse):
		return ErrorResponse{StatusCode: http.StatusBadGateway, Message: err.Error()}
	case errors.Is(err, usecase.ErrProviderCall):
		return ErrorResponse{StatusCode: http.StatusBadGateway, Message: err.Error()}
	default:
		return ErrorResponse{StatusCode: http.StatusInternalServerError, Message: "internal server error"}
	}
}

// HandleUsecaseError handles a usecase error by sending an appropriate HTTP response.
func HandleUsecaseError(c *gin.Context, err error) {
	errResp := MapUsecaseError(err)
	respondError(c, errResp.StatusCode, errResp.Message)
}
