package middleware

import (
	"strings"

	"gencare/models"
	"gencare/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const (
	// SessionKey is the gin context key holding the ingested models.Session.
	SessionKey = "session"
	// TokenHashKey is the gin context key holding the hash of the presented token.
	TokenHashKey = "tokenHash"
)

// SessionMiddleware ingests the externally issued bearer token into a
// models.Session. A missing or invalid token produces an unauthenticated
// session rather than an abort: route gating is the role guard's job, and
// public routes share this middleware.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(SessionKey, models.Session{})

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.Next()
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}

		session := models.Session{Authenticated: true}
		if sub, err := utils.ExtractIDFromToken(token); err == nil {
			session.UserID = sub
		}
		// The identity service has emitted the role claim under both keys
		// over time; "roles" wins when both are present.
		if raw, ok := claims["roles"]; ok {
			session.Claim = models.DecodeRoleClaim(raw)
		} else if raw, ok := claims["role"]; ok {
			session.Claim = models.DecodeRoleClaim(raw)
		}

		c.Set(SessionKey, session)
		c.Set(TokenHashKey, utils.HashToken(tokenString))
		c.Next()
	}
}

// GetSession returns the ingested session, defaulting to unauthenticated.
func GetSession(c *gin.Context) models.Session {
	if v, ok := c.Get(SessionKey); ok {
		if session, ok := v.(models.Session); ok {
			return session
		}
	}
	return models.Session{}
}
