package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asthait/studentms/internal/app/models/dto"
	"github.com/asthait/studentms/internal/app/services"
	"github.com/asthait/studentms/internal/middleware"
	"github.com/asthait/studentms/internal/pkg/apperrors"
)

// AuthController handles authentication operations
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new instance of AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login godoc
// @Summary Log in with the configured credentials
// @Description Exchanges the single configured username/password pair for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		// Malformed body and missing fields collapse to the same message
		middleware.HandleAPIError(ctx, apperrors.ErrMissingCredentials)
		return
	}

	token, err := c.authService.Login(req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{AuthToken: token})
}
