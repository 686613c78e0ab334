package admin

import (
	"net/http"
	"strconv"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/api/httperrors"
	"github/custodia/signing-service/internal/keys"
	"github/custodia/signing-service/internal/types"
	"github/custodia/signing-service/internal/util"
)

// PostForceSelectionRoute runs a selection round for a key on a chain
// immediately instead of waiting for the next selector tick.
func PostForceSelectionRoute(s *api.Server) *echo.Route {
	return s.Router.Management.POST("/admin/selection/:chainId/:keyId", postForceSelectionHandler(s))
}

func postForceSelectionHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

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

		keyID := c.Param("keyId")

		selected, err := s.Selector.SelectNext(ctx, keyID, chainID)
		if err != nil {
			if errors.Is(err, keys.ErrNotFound) {
				return httperrors.ErrNotFoundKey
			}
			return err
		}

		if selected == nil {
			return c.NoContent(http.StatusNoContent)
		}

		util.LogFromContext(ctx).Info().
			Str("order_id", selected.ID).
			Str("key_id", keyID).
			Int64("chain_id", chainID).
			Msg("Forced order selection")

		return util.ValidateAndReturn(c, http.StatusOK, &types.OrderCreatedResponse{
			OrderID: swag.String(selected.ID),
		})
	}
}
