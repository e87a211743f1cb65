package services

import (
	"errors"
	"testing"
	"time"

	"github.com/asthait/studentms/internal/pkg/apperrors"
	"github.com/asthait/studentms/internal/pkg/auth"
)

func newTestAuthService() AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey: "test-secret",
		TokenExp:  time.Hour,
	})
	return NewAuthService("admin", "password123", jwtService)
}

func TestLogin_Success(t *testing.T) {
	service := newTestAuthService()

	token, err := service.Login("admin", "password123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatal("Login returned empty token")
	}
}

func TestLogin_MissingCredentials(t *testing.T) {
	service := newTestAuthService()

	for _, tt := range []struct{ username, password string }{
		{"", ""},
		{"admin", ""},
		{"", "password123"},
	} {
		if _, err := service.Login(tt.username, tt.password); !errors.Is(err, apperrors.ErrMissingCredentials) {
			t.Errorf("Login(%q, %q): expected ErrMissingCredentials, got %v", tt.username, tt.password, err)
		}
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	service := newTestAuthService()

	for _, tt := range []struct{ username, password string }{
		{"admin", "wrong"},
		{"wrong", "password123"},
		{"wrong", "wrong"},
	} {
		if _, err := service.Login(tt.username, tt.password); !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q): expected ErrInvalidCredentials, got %v", tt.username, tt.password, err)
		}
	}
}
