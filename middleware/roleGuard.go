package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"gencare/models"
	"gencare/services/access"
	"gencare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RequireRoles gates a route group with the given comma-separated role spec,
// e.g. RequireRoles("admin,manager,staff,consultant"). The spec is parsed
// once at registration; the decision itself is recomputed per request.
// Allowed decisions are cached briefly in Redis keyed by token hash and spec;
// cache unavailability degrades to recomputation, never to denial.
func RequireRoles(spec string) gin.HandlerFunc {
	requirement := models.ParseRequirement(spec)

	return func(c *gin.Context) {
		session := GetSession(c)

		if hit := cachedAllow(c, spec); hit {
			c.Next()
			return
		}

		decision := access.Decide(session, requirement)
		switch decision.Outcome {
		case models.Allow:
			cacheAllow(c, spec)
			c.Next()

		case models.DenyUnauthenticated:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "Authentication required",
				"redirect": "/login",
			})

		case models.DenyForbidden:
			utils.GetLogger().Warn("route access denied",
				zap.String("path", c.FullPath()),
				zap.Strings("requiredRoles", decision.RequiredRoles),
				zap.Strings("actualRoles", decision.ActualRoles),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":        "Insufficient role",
				"redirect":     "/unauthorized",
				"requiredRole": requirement.Spec,
				"userRole":     strings.Join(decision.ActualRoles, ", "),
			})
		}
	}
}

func accessCacheKey(tokenHash, spec string) string {
	return utils.AccessCachePrefix + tokenHash + ":" + spec
}

func cachedAllow(c *gin.Context, spec string) bool {
	tokenHash, ok := c.Get(TokenHashKey)
	if !ok {
		return false
	}
	hash, ok := tokenHash.(string)
	if !ok || hash == "" {
		return false
	}

	authCache := utils.GetAuthCacheClient()
	if authCache == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	val, err := authCache.Get(ctx, accessCacheKey(hash, spec)).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("access cache read failed, recomputing decision", zap.Error(err))
		}
		return false
	}
	return val == "allow"
}

func cacheAllow(c *gin.Context, spec string) {
	tokenHash, ok := c.Get(TokenHashKey)
	if !ok {
		return
	}
	hash, ok := tokenHash.(string)
	if !ok || hash == "" {
		return
	}
	authCache := utils.GetAuthCacheClient()
	if authCache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = authCache.Set(ctx, accessCacheKey(hash, spec), "allow", utils.AccessCacheTTL).Err()
}
