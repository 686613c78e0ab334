package chains

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/auth"
	"github/custodia/signing-service/internal/util"
)

func GetHistoricalFeesRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Chains.GET("/:chainId/fees/historical", getHistoricalFeesHandler(s))
}

func getHistoricalFeesHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if auth.ClientFromContext(ctx) == nil {
			return echo.ErrUnauthorized
		}

		chainID, err := chainIDParam(c)
		if err != nil {
			return err
		}

		var blockCount uint64
		if raw := c.QueryParam("block_count"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err == nil {
				blockCount = parsed
			}
		}

		fees, err := s.Fees.Historical(ctx, chainID, blockCount)
		if err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Int64("chain_id", chainID).Msg("Failed to load fee history")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, newHistoricalFeesResponse(fees))
	}
}
