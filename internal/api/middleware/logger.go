package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github/custodia/signing-service/internal/config"
)

// Logger attaches a request-scoped zerolog logger to the request context and
// logs request completion at the configured level. Handlers retrieve the
// logger via util.LogFromEchoContext.
func Logger(cfg config.LoggerServer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			l := log.With().
				Str("id", id).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Logger()

			if cfg.LogRequestQuery {
				l = l.With().Str("query", req.URL.RawQuery).Logger()
			}
			if cfg.LogRequestHeader {
				l = l.With().Interface("header", req.Header).Logger()
			}

			c.SetRequest(req.WithContext(l.WithContext(req.Context())))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			level := cfg.RequestLevel
			if c.Response().Status >= http.StatusInternalServerError {
				level = zerolog.ErrorLevel
			}

			l.WithLevel(level).
				Int("status", c.Response().Status).
				Dur("duration", time.Since(start)).
				Int64("bytes_out", c.Response().Size).
				Msg("Request")

			return err
		}
	}
}
