package common

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/util"
)

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Root.GET("/-/ready", getReadyHandler(s))
}

// getReadyHandler returns 200 only while the server holds all its components
// and can reach the database. Used as the readiness probe.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := util.LogFromEchoContext(c)

		if !s.Ready() {
			return c.String(521, "Not ready.")
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), s.Config.Management.ReadinessTimeout)
		defer cancel()

		if err := s.DB.PingContext(ctx); err != nil {
			log.Warn().Err(err).Msg("Readiness database ping failed")
			return c.String(521, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
