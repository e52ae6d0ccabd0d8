package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"petrolife-backend-go/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Token verification needs a live Firebase Auth client, so these tests cover
// the header validation in front of it and the role gate behind it.

func newTestGuard() *AuthMiddleware {
	return &AuthMiddleware{logger: zap.NewNop()}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAuthenticate_RejectsMissingHeader(t *testing.T) {
	router := gin.New()
	router.GET("/protected", newTestGuard().Authenticate(), func(c *gin.Context) {
		t.Fatal("handler must not run without credentials")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, models.LoginPath, resp.Redirect)
}

func TestAuthenticate_RejectsMalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no bearer prefix", "sometoken"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"missing token", "Bearer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/protected", newTestGuard().Authenticate(), func(c *gin.Context) {
				t.Fatal("handler must not run with a malformed header")
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", tt.header)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, models.LoginPath, resp.Redirect)
		})
	}
}

// injectSession seeds the context the way Authenticate does on success.
func injectSession(session *models.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionKey, session)
		c.Next()
	}
}

func TestRequireRoles_AllowsMatchingRole(t *testing.T) {
	session := &models.Session{
		Email:    "boss@acme.example",
		UserType: models.UserTypeAdmin,
		TenantID: "admin-1",
	}

	router := gin.New()
	router.GET("/admin",
		injectSession(session),
		newTestGuard().RequireRoles(models.UserTypeAdmin),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles_RedirectsToActualDashboard(t *testing.T) {
	tests := []struct {
		name         string
		userType     models.UserType
		wantRedirect string
	}{
		{"company on admin route", models.UserTypeCompany, models.CompanyDashboardPath},
		{"distributor on admin route", models.UserTypeDistributor, models.DistributorDashboardPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &models.Session{UserType: tt.userType, TenantID: "t-1"}

			router := gin.New()
			router.GET("/admin",
				injectSession(session),
				newTestGuard().RequireRoles(models.UserTypeAdmin),
				func(c *gin.Context) {
					t.Fatal("handler must not run for a mismatched role")
				},
			)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

			assert.Equal(t, http.StatusForbidden, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.wantRedirect, resp.Redirect)
		})
	}
}

func TestRequireRoles_MultipleRolesAccepted(t *testing.T) {
	session := &models.Session{UserType: models.UserTypeCompany, TenantID: "co-1"}

	router := gin.New()
	router.GET("/shared",
		injectSession(session),
		newTestGuard().RequireRoles(models.UserTypeAdmin, models.UserTypeCompany),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shared", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles_NoSessionIsUnauthorized(t *testing.T) {
	router := gin.New()
	router.GET("/admin",
		newTestGuard().RequireRoles(models.UserTypeAdmin),
		func(c *gin.Context) {
			t.Fatal("handler must not run without a session")
		},
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, models.LoginPath, resp.Redirect)
}

func TestGetSession(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetSession(c)
	assert.False(t, ok)

	want := &models.Session{Email: "fleet@acme.example", UserType: models.UserTypeCompany}
	c.Set(sessionKey, want)

	got, ok := GetSession(c)
	require.True(t, ok)
	assert.Equal(t, want, got)
}
