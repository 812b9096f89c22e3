package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bookmarks-api/internal/domain"
)

// authedHandler receives the caller resolved by the guard.
type authedHandler func(c *gin.Context, user domain.PublicUser)

// guard rejects requests without a valid bearer token before next runs.
func (h *Handler) guard(next authedHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		user, err := h.auth.Authorize(c.Request.Context(), token)
		if err != nil {
			h.writeError(c, err)
			return
		}

		next(c, user)
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
