package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	claims := Claims{
		Sub:   7,
		Email: "admin@institute.test",
		Role:  "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func runMiddleware(token string, mw ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	h := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return rec, h(ctx)
}

func TestRequireAuthValidToken(t *testing.T) {
	rec, err := runMiddleware(signToken(t, time.Hour), RequireAuth(testSecret))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthMissingHeader(t *testing.T) {
	_, err := runMiddleware("", RequireAuth(testSecret))
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	_, err := runMiddleware(signToken(t, -time.Hour), RequireAuth(testSecret))
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireRole(t *testing.T) {
	// claims carry role=admin; staff-only gate must reject
	_, err := runMiddleware(signToken(t, time.Hour), RequireAuth(testSecret), RequireRole("staff"))
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)

	rec, err := runMiddleware(signToken(t, time.Hour), RequireAuth(testSecret), RequireRole("admin", "staff"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
