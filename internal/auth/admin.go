package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"vacaturebord/internal/models"
)

// ContextKey marks a request that passed the admin gate. Handlers behind
// Middleware can rely on it being set instead of re-checking credentials.
const ContextKey = "admin"

// Gate authorizes mutating operations against a single configured secret.
type Gate struct {
	secret []byte
}

func NewGate(secret string) *Gate {
	return &Gate{secret: []byte(secret)}
}

// Authorize reports whether supplied equals the configured secret. The
// comparison is constant-time so response timing leaks nothing about the
// secret, and only an exact match passes.
func (g *Gate) Authorize(supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(supplied), g.secret) == 1
}

// Middleware reads the shared secret from the pw query parameter or the
// X-Admin-Password header and aborts with 403 when it does not match. No
// detail beyond the refusal is leaked.
func (g *Gate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.Query("pw")
		if supplied == "" {
			supplied = c.GetHeader("X-Admin-Password")
		}
		if !g.Authorize(supplied) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": models.ErrUnauthorized.Error()})
			return
		}
		c.Set(ContextKey, true)
		c.Next()
	}
}
