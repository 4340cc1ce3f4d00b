package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kycboard/internal/service"
	"kycboard/internal/validation"
)

// respondError writes the plain-text response for err. Unknown errors become a generic 500
// so storage details never reach the client.
func respondError(c *gin.Context, err error) {
	status, msg := classifyError(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.String(status, msg)
}

func classifyError(err error) (int, string) {
	var fieldErrs validation.Errors
	switch {
	case errors.As(err, &fieldErrs):
		return http.StatusBadRequest, fieldErrs.Error()
	case errors.Is(err, service.ErrUserAlreadyExists):
		return http.StatusBadRequest, "Username already exists"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid credentials"
	case errors.Is(err, service.ErrMissingToken):
		return http.StatusUnauthorized, "Access denied"
	case errors.Is(err, service.ErrExpiredToken):
		return http.StatusUnauthorized, "Token expired"
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusBadRequest, "Invalid token"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "User not found"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
