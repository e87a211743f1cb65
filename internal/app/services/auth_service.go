package services

import (
	"crypto/subtle"
	"fmt"

	"github.com/asthait/studentms/internal/pkg/apperrors"
	"github.com/asthait/studentms/internal/pkg/auth"
)

// authService validates the configured credential pair and issues tokens.
// There is no user registry: a single fixed username/password protects the API.
type authService struct {
	username   string
	password   string
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service bound to the fixed credentials
func NewAuthService(username, password string, jwtService *auth.JWTService) AuthService {
	return &authService{
		username:   username,
		password:   password,
		jwtService: jwtService,
	}
}

// Login checks the supplied credentials and returns a signed bearer token
func (s *authService) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", apperrors.ErrMissingCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(username)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}
