package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/asthait/studentms/internal/app/models/dto"
	"github.com/asthait/studentms/internal/app/services"
	"github.com/asthait/studentms/internal/pkg/auth"
)

func newLoginRouter() *gin.Engine {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: time.Hour})
	authService := services.NewAuthService("admin", "password123", jwtService)

	router := gin.New()
	router.POST("/login", NewAuthController(authService).Login)
	return router
}

func TestLogin_ReturnsToken(t *testing.T) {
	router := newLoginRouter()

	w := performRequest(router, http.MethodPost, "/login", gin.H{
		"username": "admin",
		"password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %q)", w.Code, w.Body.String())
	}

	var resp dto.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.AuthToken == "" {
		t.Error("expected a non-empty authToken")
	}
}

func TestLogin_MissingCredentials(t *testing.T) {
	router := newLoginRouter()

	bodies := []any{
		gin.H{},
		gin.H{"username": "admin"},
		gin.H{"password": "password123"},
	}
	for _, body := range bodies {
		w := performRequest(router, http.MethodPost, "/login", body)
		expectError(t, w, http.StatusBadRequest, "Username and password are required")
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router := newLoginRouter()

	w := performRequest(router, http.MethodPost, "/login", gin.H{
		"username": "admin",
		"password": "wrong",
	})
	expectError(t, w, http.StatusUnauthorized, "Invalid credentials")
}
