package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"kycboard/internal/service"
)

const userIDKey = "auth.user_id"

// TokenVerifier resolves a bearer token to the user id it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Authenticate maps an Authorization header value to the authenticated user id. Absent,
// blank or non-bearer headers yield service.ErrMissingToken; verification failures yield
// service.ErrInvalidToken or service.ErrExpiredToken.
func Authenticate(header string, tokens TokenVerifier) (string, error) {
	raw := strings.TrimSpace(header)
	if len(raw) < len("Bearer ") || !strings.EqualFold(raw[:len("Bearer ")], "Bearer ") {
		return "", service.ErrMissingToken
	}

	token := strings.TrimSpace(raw[len("Bearer "):])
	if token == "" {
		return "", service.ErrMissingToken
	}

	userID, err := tokens.Verify(token)
	if err != nil {
		if errors.Is(err, service.ErrExpiredToken) {
			return "", service.ErrExpiredToken
		}
		return "", service.ErrInvalidToken
	}
	return userID, nil
}

// Guard rejects requests without a valid bearer token and stores the user id for handlers.
func Guard(tokens TokenVerifier, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := Authenticate(c.GetHeader("Authorization"), tokens)
		if err != nil {
			logger.WithFields(requestFields(c)).Warnf("auth rejected: %v", err)
			respondError(c, err)
			c.Abort()
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the user id stored by Guard.
func CurrentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(userIDKey)
	return userID, userID != ""
}
