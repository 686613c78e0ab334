package admin

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/types"
	"github/custodia/signing-service/internal/util"
)

// PostCancelPendingRoute bulk-cancels pending orders that have not been
// broadcast yet. Submitted orders are untouched, they need a replacement
// cancellation through the client API.
func PostCancelPendingRoute(s *api.Server) *echo.Route {
	return s.Router.Management.POST("/admin/orders/cancel-pending", postCancelPendingHandler(s))
}

func postCancelPendingHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		clientID := c.QueryParam("client_id")

		cancelled, err := s.Orders.CancelPending(ctx, clientID)
		if err != nil {
			return err
		}

		util.LogFromContext(ctx).Info().
			Int64("orders", cancelled).
			Str("client_id", clientID).
			Msg("Bulk cancellation applied")

		return c.JSON(http.StatusOK, &types.CancelPendingResponse{
			CancelledOrders: swag.Int64(cancelled),
		})
	}
}
