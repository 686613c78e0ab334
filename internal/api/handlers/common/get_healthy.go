package common

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/util"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// getHealthyHandler probes the database and redis within the liveness
// timeout. Failing this probe should restart the service.
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := util.LogFromEchoContext(c)

		ctx, cancel := context.WithTimeout(c.Request().Context(), s.Config.Management.LivenessTimeout)
		defer cancel()

		var checks strings.Builder
		healthy := true

		if err := s.DB.PingContext(ctx); err != nil {
			log.Warn().Err(err).Msg("Liveness database ping failed")
			checks.WriteString("Database: unreachable.\n")
			healthy = false
		} else {
			checks.WriteString("Database: OK.\n")
		}

		if err := s.Redis.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("Liveness redis ping failed")
			checks.WriteString("Redis: unreachable.\n")
			healthy = false
		} else {
			checks.WriteString("Redis: OK.\n")
		}

		for _, path := range s.Config.Management.ProbeWriteablePathsAbs {
			touchfile := filepath.Join(path, s.Config.Management.ProbeWriteableTouchfile)
			if err := os.WriteFile(touchfile, []byte(time.Now().UTC().Format(time.RFC3339)), 0o644); err != nil {
				log.Warn().Err(err).Str("path", path).Msg("Liveness writeable path check failed")
				fmt.Fprintf(&checks, "Writeable %s: failed.\n", path)
				healthy = false
			} else {
				fmt.Fprintf(&checks, "Writeable %s: OK.\n", path)
			}
		}

		if !healthy {
			return c.String(521, checks.String()+"Not healthy.")
		}

		return c.String(http.StatusOK, checks.String()+"Healthy.")
	}
}
