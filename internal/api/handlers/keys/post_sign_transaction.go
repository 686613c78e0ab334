package keys

import (
	"encoding/json"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/api/httperrors"
	"github/custodia/signing-service/internal/auth"
	"github/custodia/signing-service/internal/intake"
	"github/custodia/signing-service/internal/keys"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/types"
	"github/custodia/signing-service/internal/util"
)

func PostSignTransactionRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Keys.POST("/:address/sign", postSignTransactionHandler(s))
}

func postSignTransactionHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		client := auth.ClientFromContext(ctx)
		if client == nil {
			return echo.ErrUnauthorized
		}
		log := util.LogFromContext(ctx)

		var body types.PostSignTransactionPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		var tx order.Transaction
		if err := json.Unmarshal(body.Transaction, &tx); err != nil {
			return httperrors.NewHTTPValidationError(
				http.StatusBadRequest,
				types.HTTPErrorCodeValidation,
				err.Error(),
				[]*types.HTTPValidationErrorDetail{
					{
						Key:   swag.String("transaction"),
						In:    swag.String("body"),
						Error: swag.String(err.Error()),
					},
				},
			)
		}

		o, err := s.Intake.CreateSignatureOrder(ctx, client.ID, c.Param("address"), &tx)
		if err != nil {
			var valErr *intake.ValidationError
			if errors.As(err, &valErr) {
				return httperrors.NewHTTPValidationError(
					http.StatusBadRequest,
					types.HTTPErrorCodeValidation,
					valErr.Error(),
					[]*types.HTTPValidationErrorDetail{
						{
							Key:   swag.String("transaction"),
							In:    swag.String("body"),
							Error: swag.String(valErr.Error()),
						},
					},
				)
			}
			if errors.Is(err, keys.ErrNotFound) {
				return httperrors.ErrNotFoundKey
			}

			log.Debug().Err(err).Msg("Failed to create signature order")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusAccepted, &types.OrderCreatedResponse{
			OrderID: swag.String(o.ID),
		})
	}
}
