package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"textgate/internal/usecase"
)

func setupAuthRouter(authUC *MockAuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAuthHandler(authUC)
	router.POST("/api/register", h.Register)
	router.POST("/api/login", h.Login)
	router.POST("/api/logout", func(c *gin.Context) {
		c.Set(TokenContextKey, "tok-1")
		h.Logout(c)
	})
	return router
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		mockUC := new(MockAuthUsecase)
		mockUC.On("Register", mock.Anything, "alice", "alice@example.com", "password123").
			Return(&usecase.SessionOutput{Token: "tok-1", Username: "alice"}, nil)

		router := setupAuthRouter(mockUC)
		body, _ := json.Marshal(map[string]string{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "password123",
		})
		req, _ := http.NewRequest("POST", "/api/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var out usecase.SessionOutput
		err := json.Unmarshal(w.Body.Bytes(), &out)
		assert.NoError(t, err)
		assert.Equal(t, "tok-1", out.Token)
		assert.Equal(t, "alice", out.Username)
		mockUC.AssertExpectations(t)
	})

	t.Run("username taken", func(t *testing.T) {
		mockUC := new(MockAuthUsecase)
		mockUC.On("Register", mock.Anything, "alice", "alice@example.com", "password123").
			Return(nil, usecase.ErrUsernameTaken)

		router := setupAuthRouter(mockUC)
		body, _ := json.Marshal(map[string]string{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "password123",
		})
		req, _ := http.NewRequest("POST", "/api/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "error")
	})

	t.Run("invalid email rejected before usecase", func(t *testing.T) {
		mockUC := new(MockAuthUsecase)

		router := setupAuthRouter(mockUC)
		body, _ := json.Marshal(map[string]string{
			"username": "alice",
			"email":    "not-an-email",
			"password": "password123",
		})
		req, _ := http.NewRequest("POST", "/api/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUC.AssertNotCalled(t, "Register")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		mockUC := new(MockAuthUsecase)
		mockUC.On("Login", mock.Anything, "alice", "password123").
			Return(&usecase.SessionOutput{Token: "t1", Username: "alice"}, nil)

		router := setupAuthRouter(mockUC)
		body, _ := json.Marshal(map[string]string{"username": "alice", "password": "password123"})
		req, _ := http.NewRequest("POST", "/api/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var out usecase.SessionOutput
		err := json.Unmarshal(w.Body.Bytes(), &out)
		assert.NoError(t, err)
		assert.Equal(t, "t1", out.Token)
		mockUC.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUC := new(MockAuthUsecase)
		mockUC.On("Login", mock.Anything, "alice", "wrong").
			Return(nil, usecase.ErrInvalidCredentials)

		router := setupAuthRouter(mockUC)
		body, _ := json.Marshal(map[string]string{"username": "alice", "password": "wrong"})
		req, _ := http.NewRequest("POST", "/api/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp map[string]string
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, usecase.ErrInvalidCredentials.Error(), resp["error"])
	})

	t.Run("missing fields", func(t *testing.T) {
		mockUC := new(MockAuthUsecase)

		router := setupAuthRouter(mockUC)
		req, _ := http.NewRequest("POST", "/api/login", bytes.NewReader([]byte(`{"username":"alice"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUC.AssertNotCalled(t, "Login")
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("successful logout", func(t *testing.T) {
		mockUC := new(MockAuthUsecase)
		mockUC.On("Logout", mock.Anything, "tok-1").Return(nil)

		router := setupAuthRouter(mockUC)
		req, _ := http.NewRequest("POST", "/api/logout", http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "logged out")
		mockUC.AssertExpectations(t)
	})
}
