package admin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/api/httperrors"
	"github/custodia/signing-service/internal/types"
	"github/custodia/signing-service/internal/util"
)

// PutNonceRoute force-sets the tracked nonce of an address, for manual
// recovery after the ledger and the chain have drifted apart.
func PutNonceRoute(s *api.Server) *echo.Route {
	return s.Router.Management.PUT("/admin/nonces/:chainId/:address", putNonceHandler(s))
}

func putNonceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		chainID, err := strconv.ParseInt(c.Param("chainId"), 10, 64)
		if err != nil {
			return httperrors.NewHTTPValidationError(
				http.StatusBadRequest,
				types.HTTPErrorCodeValidation,
				http.StatusText(http.StatusBadRequest),
				[]*types.HTTPValidationErrorDetail{
					{
						Key:   swag.String("chainId"),
						In:    swag.String("path"),
						Error: swag.String("must be an integer chain id"),
					},
				},
			)
		}

		var body types.PutNoncePayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		address := strings.ToLower(c.Param("address"))

		if err := s.Ledger.Reset(ctx, address, chainID, swag.Int64Value(body.Value)); err != nil {
			return err
		}

		log.Info().
			Str("address", address).
			Int64("chain_id", chainID).
			Int64("nonce", swag.Int64Value(body.Value)).
			Msg("Nonce override applied")

		return c.NoContent(http.StatusNoContent)
	}
}
