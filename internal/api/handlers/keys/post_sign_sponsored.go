package keys

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/api/httperrors"
	"github/custodia/signing-service/internal/auth"
	"github/custodia/signing-service/internal/keys"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/sponsored"
	"github/custodia/signing-service/internal/types"
	"github/custodia/signing-service/internal/util"
)

func PostSignSponsoredRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Keys.POST("/:address/sign/sponsored", postSignSponsoredHandler(s))
}

func postSignSponsoredHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		client := auth.ClientFromContext(ctx)
		if client == nil {
			return echo.ErrUnauthorized
		}
		log := util.LogFromContext(ctx)

		var body types.PostSignSponsoredPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		req := &sponsored.Request{
			To:       swag.StringValue(body.To),
			Data:     body.Data,
			Deadline: swag.StringValue(body.Deadline),
			ChainID:  swag.Int64Value(body.ChainID),
		}
		if body.Value != "" {
			value, err := order.ParseU256(body.Value)
			if err != nil {
				return httperrors.NewHTTPValidationError(
					http.StatusBadRequest,
					types.HTTPErrorCodeValidation,
					err.Error(),
					[]*types.HTTPValidationErrorDetail{
						{
							Key:   swag.String("value"),
							In:    swag.String("body"),
							Error: swag.String(err.Error()),
						},
					},
				)
			}
			req.Value = value
		}

		o, err := s.Sponsored.CreateOrder(ctx, client.ID, c.Param("address"), req)
		if err != nil {
			if errors.Is(err, keys.ErrNotFound) {
				return httperrors.ErrNotFoundKey
			}
			if errors.Is(err, sponsored.ErrNotConfigured) {
				return httperrors.NewHTTPValidationError(
					http.StatusBadRequest,
					types.HTTPErrorCodeValidation,
					"No sponsor addresses configured for this chain.",
					[]*types.HTTPValidationErrorDetail{
						{
							Key:   swag.String("chain_id"),
							In:    swag.String("body"),
							Error: swag.String(err.Error()),
						},
					},
				)
			}

			log.Debug().Err(err).Msg("Failed to create sponsored order")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusAccepted, &types.OrderCreatedResponse{
			OrderID: swag.String(o.ID),
		})
	}
}
