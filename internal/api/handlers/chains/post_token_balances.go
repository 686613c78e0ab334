package chains

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/auth"
	"github/custodia/signing-service/internal/types"
	"github/custodia/signing-service/internal/util"
)

// PostTokenBalancesRoute queries balanceOf(owner) on the posted contracts.
// The token type segment accepts ft and nft, both answered by the same
// balanceOf call.
func PostTokenBalancesRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Chains.POST("/:chainId/addresses/:address/tokens/:tokenType/query", postTokenBalancesHandler(s))
}

func postTokenBalancesHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if auth.ClientFromContext(ctx) == nil {
			return echo.ErrUnauthorized
		}

		chainID, err := chainIDParam(c)
		if err != nil {
			return err
		}

		tokenType := c.Param("tokenType")
		if tokenType != "ft" && tokenType != "nft" {
			return httperrorUnknownTokenType(tokenType)
		}

		var body types.PostTokenBalancesPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		owner := strings.ToLower(c.Param("address"))

		balances, err := s.Balances.TokenBalances(ctx, chainID, owner, body.ContractAddresses)
		if err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Int64("chain_id", chainID).Msg("Failed to load token balances")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, newTokenBalanceListResponse(balances))
	}
}
