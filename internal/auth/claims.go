package auth

import (
	"context"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/api/httperrors"
	"github/custodia/signing-service/internal/config"
)

type contextKey string

const clientContextKey contextKey = "auth_client"

// Client is the authenticated API caller, extracted from the bearer token.
type Client struct {
	ID string
}

// ClientFromContext returns the authenticated client, or nil.
func ClientFromContext(ctx context.Context) *Client {
	client, ok := ctx.Value(clientContextKey).(*Client)
	if !ok {
		return nil
	}

	return client
}

// WithClient returns a context carrying the authenticated client.
func WithClient(ctx context.Context, client *Client) context.Context {
	return context.WithValue(ctx, clientContextKey, client)
}

// Middleware validates the bearer token and injects the client into the
// request context. The client id claim name is configurable.
func Middleware(cfg config.AuthServer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return httperrors.ErrUnauthorizedClient
			}

			clientID, err := parseClientID(token, cfg)
			if err != nil {
				return httperrors.ErrUnauthorizedClient.SetInternal(err)
			}

			ctx := WithClient(c.Request().Context(), &Client{ID: clientID})
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", errors.New("missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("malformed authorization header")
	}

	return parts[1], nil
}

func parseClientID(tokenString string, cfg config.AuthServer) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to parse bearer token")
	}

	clientID, ok := claims[cfg.ClientIDClaim].(string)
	if !ok || clientID == "" {
		return "", errors.Errorf("token has no %s claim", cfg.ClientIDClaim)
	}

	return clientID, nil
}
