package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bloghub/internal/utils"
)

const (
	ClaimsKey = "claims"
	UserIDKey = "user_id"

	msgMissingCredential = "Missing or invalid Authorization header"
	msgInvalidToken      = "Invalid or expired token"
)

// AuthMiddleware пропускает только запросы с валидным Bearer-токеном.
// В базу не ходит: в контекст кладутся claims как есть.
func AuthMiddleware(issuer *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// preflight
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgMissingCredential})
			return
		}

		claims, err := issuer.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgInvalidToken})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, claims.ID)
		c.Next()
	}
}

func GetClaims(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok && claims != nil
}

func GetUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
