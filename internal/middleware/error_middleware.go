package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asthait/studentms/internal/app/models/dto"
	"github.com/asthait/studentms/internal/pkg/apperrors"
)

// HandleAPIError translates the closed error taxonomy to HTTP responses.
// Anything unclassified is an internal error carrying the underlying message.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Student not found"})
	case errors.Is(err, apperrors.ErrTeacherNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Teacher not found"})
	case errors.Is(err, apperrors.ErrDuplicateField):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Username and password are required"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid credentials"})
	case errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid or expired token"})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}
