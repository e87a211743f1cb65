package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/asthait/studentms/internal/pkg/apperrors"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey: "test-secret",
		TokenExp:  exp,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestService(time.Hour)

	token, err := service.GenerateToken("admin")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken returned empty token")
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("expected username %q, got %q", "admin", claims.Username)
	}
	if claims.ID == "" {
		t.Error("expected a token ID claim")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	service := newTestService(-time.Minute)

	token, err := service.GenerateToken("admin")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	_, err = service.ValidateToken(token)
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := newTestService(time.Hour).GenerateToken("admin")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", TokenExp: time.Hour})
	_, err = other.ValidateToken(token)
	if !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateToken_Malformed(t *testing.T) {
	service := newTestService(time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := service.ValidateToken(token); !errors.Is(err, apperrors.ErrTokenInvalid) {
			t.Errorf("token %q: expected ErrTokenInvalid, got %v", token, err)
		}
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing header", header: "", wantErr: apperrors.ErrUnauthenticated},
		{name: "wrong scheme", header: "Basic abc", wantErr: apperrors.ErrTokenInvalid},
		{name: "no scheme", header: "abc.def.ghi", wantErr: apperrors.ErrTokenInvalid},
		{name: "empty token", header: "Bearer ", wantErr: apperrors.ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected token %q, got %q", tt.want, got)
			}
		})
	}
}
