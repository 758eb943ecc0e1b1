package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gencare/config"
	"gencare/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	require.NoError(t, err)
	return signed
}

func sessionProbeRouter(captured *models.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionMiddleware())
	r.GET("/probe", func(c *gin.Context) {
		*captured = GetSession(c)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestSessionMiddlewareNoToken(t *testing.T) {
	var session models.Session
	r := sessionProbeRouter(&session)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusOK, w.Code, "public routes pass through without a token")
	assert.False(t, session.Authenticated)
}

func TestSessionMiddlewareValidToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	var session models.Session
	r := sessionProbeRouter(&session)

	tokenString := signTestToken(t, jwt.MapClaims{
		"sub":   "u-42",
		"roles": []interface{}{"Customer"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, session.Authenticated)
	assert.Equal(t, "u-42", session.UserID)

	list, ok := session.Claim.(models.ListClaim)
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, "Customer", list[0].Value)
}

func TestSessionMiddlewareInvalidSignature(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	var session models.Session
	r := sessionProbeRouter(&session)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u-42"})
	forged, err := token.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, session.Authenticated, "forged tokens yield an unauthenticated session")
}

func TestSessionMiddlewareRoleClaimFallback(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	var session models.Session
	r := sessionProbeRouter(&session)

	tokenString := signTestToken(t, jwt.MapClaims{
		"sub":  "u-7",
		"role": map[string]interface{}{"name": "Consultant"},
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.True(t, session.Authenticated)
	obj, ok := session.Claim.(models.ObjectClaim)
	require.True(t, ok)
	assert.Equal(t, "Consultant", obj.Name)
}
