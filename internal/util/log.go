package util

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LogFromContext returns the request-scoped logger attached to the context.
// Falls back to the default context logger if none is present.
func LogFromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// LogFromEchoContext returns the request-scoped logger of an echo request.
func LogFromEchoContext(c echo.Context) *zerolog.Logger {
	return LogFromContext(c.Request().Context())
}

// LogLevelFromString parses a zerolog level, defaulting to debug.
func LogLevelFromString(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.DebugLevel
	}

	return level
}
