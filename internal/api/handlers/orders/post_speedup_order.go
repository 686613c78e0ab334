package orders

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/api/httperrors"
	"github/custodia/signing-service/internal/auth"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/replacement"
	"github/custodia/signing-service/internal/types"
	"github/custodia/signing-service/internal/util"
)

func PostSpeedupOrderRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Orders.POST("/:orderId/speedup", postSpeedupOrderHandler(s))
}

func postSpeedupOrderHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		client := auth.ClientFromContext(ctx)
		if client == nil {
			return echo.ErrUnauthorized
		}
		log := util.LogFromContext(ctx)

		var body types.PostSpeedupPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		gas, err := gasValuesFromPayload(body.Transaction)
		if err != nil {
			return err
		}

		res, err := s.Replacements.Speedup(ctx, client.ID, c.Param("orderId"), gas)
		if err != nil {
			var valErr *replacement.ValidationError
			if errors.As(err, &valErr) {
				return replacementValidationError(valErr)
			}
			if errors.Is(err, order.ErrNotFound) {
				return httperrors.ErrNotFoundOrder
			}

			log.Debug().Err(err).Msg("Failed to create speedup order")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.OrderCreatedResponse{
			OrderID: swag.String(res.OrderID),
		})
	}
}
