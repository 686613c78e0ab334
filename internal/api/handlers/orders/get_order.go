package orders

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/api/httperrors"
	"github/custodia/signing-service/internal/auth"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/types"
	"github/custodia/signing-service/internal/util"
)

func GetOrderRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Orders.GET("/:orderId/status", getOrderHandler(s))
}

func getOrderHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		client := auth.ClientFromContext(ctx)
		if client == nil {
			return echo.ErrUnauthorized
		}

		o, err := s.Orders.GetForClient(ctx, c.Param("orderId"), client.ID)
		if err != nil {
			if errors.Is(err, order.ErrNotFound) {
				return httperrors.ErrNotFoundOrder
			}
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, orderStatusResponse(o))
	}
}

// orderStatusResponse projects an order into its public form, hiding the
// policy snapshot and signature payloads.
func orderStatusResponse(o *models.Order) *types.OrderStatusResponse {
	res := &types.OrderStatusResponse{
		OrderID:               swag.String(o.ID),
		OrderType:             swag.String(o.OrderType),
		State:                 swag.String(o.State),
		OrderVersion:          o.OrderVersion,
		TransactionHash:       o.TransactionHash.String,
		Replaces:              o.Replaces.String,
		ReplacedBy:            o.ReplacedBy.String,
		CancellationRequested: o.CancellationRequested.Bool,
		CreatedAt:             o.CreatedAt.Format(time.RFC3339),
		LastModifiedAt:        o.LastModifiedAt.Format(time.RFC3339),
	}

	if o.Error.Valid {
		var orderErr order.Error
		if err := json.Unmarshal(o.Error.JSON, &orderErr); err == nil {
			res.Error = types.NewPublicHTTPError(orderErr.Code, orderErr.Message)
		}
	}

	return res
}
