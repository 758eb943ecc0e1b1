package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gencare/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rateLimitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func doPingFrom(r *gin.Engine, ip string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Forwarded-For", ip)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitHonorsConfiguredLimit(t *testing.T) {
	config.AppConfig.MaxRequestsPerMin = 2
	t.Cleanup(func() { config.AppConfig.MaxRequestsPerMin = 0 })

	r := rateLimitedRouter()
	ip := "198.51.100.7"

	assert.Equal(t, http.StatusOK, doPingFrom(r, ip))
	assert.Equal(t, http.StatusOK, doPingFrom(r, ip))
	assert.Equal(t, http.StatusTooManyRequests, doPingFrom(r, ip))
}

func TestRateLimitIsPerIP(t *testing.T) {
	config.AppConfig.MaxRequestsPerMin = 1
	t.Cleanup(func() { config.AppConfig.MaxRequestsPerMin = 0 })

	r := rateLimitedRouter()

	assert.Equal(t, http.StatusOK, doPingFrom(r, "198.51.100.8"))
	assert.Equal(t, http.StatusTooManyRequests, doPingFrom(r, "198.51.100.8"))
	assert.Equal(t, http.StatusOK, doPingFrom(r, "198.51.100.9"))
}
