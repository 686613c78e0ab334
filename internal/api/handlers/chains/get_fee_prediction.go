package chains

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/auth"
	"github/custodia/signing-service/internal/util"
)

func GetFeePredictionRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Chains.GET("/:chainId/fees/prediction", getFeePredictionHandler(s))
}

func getFeePredictionHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if auth.ClientFromContext(ctx) == nil {
			return echo.ErrUnauthorized
		}

		chainID, err := chainIDParam(c)
		if err != nil {
			return err
		}

		fees, err := s.Fees.Predicted(ctx, chainID)
		if err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Int64("chain_id", chainID).Msg("Failed to predict fees")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, newPredictedFeesResponse(fees))
	}
}
