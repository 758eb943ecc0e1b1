package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gencare/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// guardedRouter builds a router that injects the given session before the
// role guard, the way SessionMiddleware would after token validation.
func guardedRouter(session models.Session, spec string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(SessionKey, session)
		c.Next()
	})
	r.GET("/guarded", RequireRoles(spec), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func doGet(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRolesUnauthenticated(t *testing.T) {
	r := guardedRouter(models.Session{}, "customer")
	w := doGet(r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/login", body["redirect"])
}

func TestRequireRolesForbidden(t *testing.T) {
	session := models.Session{Authenticated: true, Claim: models.StringClaim("customer")}
	r := guardedRouter(session, "admin,manager,staff,consultant")
	w := doGet(r)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/unauthorized", body["redirect"])
	assert.Equal(t, "admin,manager,staff,consultant", body["requiredRole"])
	assert.Equal(t, "customer", body["userRole"])
}

func TestRequireRolesAllowed(t *testing.T) {
	session := models.Session{Authenticated: true, Claim: models.StringClaim("staff")}
	r := guardedRouter(session, "admin,manager")
	w := doGet(r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRolesGuestReachesCustomerRoutes(t *testing.T) {
	session := models.Session{Authenticated: true}
	r := guardedRouter(session, "customer")
	w := doGet(r)

	assert.Equal(t, http.StatusOK, w.Code)
}
