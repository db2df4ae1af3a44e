package echoServer

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jwtutil "librarydesk/util/jwt"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func guardedServer(t *testing.T, roles ...string) *echo.Echo {
	t.Helper()
	e := echo.New()
	g := e.Group("/api", RoleExtractor(testSecret))
	g.GET("/probe", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, RequireRole(roles...))
	return e
}

func probe(e *echo.Echo, header, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/probe", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireRole_MissingToken(t *testing.T) {
	e := guardedServer(t, "admin")
	rec := probe(e, "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole_XRoleHeader(t *testing.T) {
	e := guardedServer(t, "admin", "user")

	require.Equal(t, http.StatusOK, probe(e, "X-Role", "user").Code)
	require.Equal(t, http.StatusOK, probe(e, "X-Role", "ADMIN").Code)
	require.Equal(t, http.StatusForbidden, probe(e, "X-Role", "guest").Code)
}

func TestRequireRole_AdminOnly(t *testing.T) {
	e := guardedServer(t, "admin")
	require.Equal(t, http.StatusForbidden, probe(e, "X-Role", "user").Code)
}

func TestRequireRole_BearerToken(t *testing.T) {
	e := guardedServer(t, "admin")

	token, err := jwtutil.Issue(testSecret, 1, "admin", 1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, probe(e, "Authorization", "Bearer "+token).Code)

	// A token signed with the wrong secret carries no role.
	forged, err := jwtutil.Issue("other-secret", 1, "admin", 1)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, probe(e, "Authorization", "Bearer "+forged).Code)
}
