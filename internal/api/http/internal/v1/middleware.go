package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeader = "Authorization"
	bearerScheme        = "Bearer"
)

// tokenAuthMiddleware admits requests carrying the configured static bearer token.
func (h *Handler) tokenAuthMiddleware(c *gin.Context) {
	token, ok := parseAuthHeader(c.GetHeader(authorizationHeader))
	if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(h.config.Auth.APIToken)) != 1 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: invalidCredentialsMessage})
		return
	}

	c.Next()
}

func parseAuthHeader(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 || headerParts[0] != bearerScheme || headerParts[1] == "" {
		return "", false
	}

	return headerParts[1], true
}
