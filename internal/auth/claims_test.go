package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/auth"
	"github/custodia/signing-service/internal/config"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestMiddleware(t *testing.T) {
	cfg := config.AuthServer{JWTSecret: "test-secret", ClientIDClaim: "client_id"}

	e := echo.New()
	handler := auth.Middleware(cfg)(func(c echo.Context) error {
		client := auth.ClientFromContext(c.Request().Context())
		require.NotNil(t, client)
		return c.String(http.StatusOK, client.ID)
	})

	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"client_id": "client-1",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()

	err := handler(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "client-1", rec.Body.String())
}

func TestMiddlewareRejects(t *testing.T) {
	cfg := config.AuthServer{JWTSecret: "test-secret", ClientIDClaim: "client_id"}

	e := echo.New()
	handler := auth.Middleware(cfg)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	run := func(authorization string) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authorization != "" {
			req.Header.Set(echo.HeaderAuthorization, authorization)
		}
		return handler(e.NewContext(req, httptest.NewRecorder()))
	}

	assert.Error(t, run(""))
	assert.Error(t, run("Basic abc"))
	assert.Error(t, run("Bearer not-a-token"))

	wrongSecret := signToken(t, "other-secret", jwt.MapClaims{"client_id": "client-1"})
	assert.Error(t, run("Bearer "+wrongSecret))

	missingClaim := signToken(t, cfg.JWTSecret, jwt.MapClaims{"sub": "client-1"})
	assert.Error(t, run("Bearer "+missingClaim))
}
