package chains

import (
	"net/http"
	"strings"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/auth"
	"github/custodia/signing-service/internal/types"
	"github/custodia/signing-service/internal/util"
)

func GetNativeBalanceRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Chains.GET("/:chainId/addresses/:address/tokens/native/query", getNativeBalanceHandler(s))
}

func getNativeBalanceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if auth.ClientFromContext(ctx) == nil {
			return echo.ErrUnauthorized
		}

		chainID, err := chainIDParam(c)
		if err != nil {
			return err
		}

		address := strings.ToLower(c.Param("address"))

		balance, err := s.Balances.Native(ctx, chainID, address)
		if err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Int64("chain_id", chainID).Msg("Failed to load native balance")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.NativeBalanceResponse{
			Address: swag.String(address),
			Balance: swag.String(balance.String()),
		})
	}
}
