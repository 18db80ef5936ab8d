// README: Bearer-token auth middleware backed by the Firebase verifier.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tabi/internal/infra"
)

// UIDKey is the gin context key carrying the verified user id.
const UIDKey = "uid"

// Auth rejects requests without a valid bearer token and stores the verified
// uid in the request context. Handlers never see the raw credential.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		token, err := verifier.VerifyIDToken(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(UIDKey, token.UID)
		c.Next()
	}
}
