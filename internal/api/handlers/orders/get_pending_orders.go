package orders

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/auth"
	"github/custodia/signing-service/internal/types"
)

const (
	defaultPendingLimit = 100
	maxPendingLimit     = 500
)

func GetPendingOrdersRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Orders.GET("", getPendingOrdersHandler(s))
}

func getPendingOrdersHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		client := auth.ClientFromContext(ctx)
		if client == nil {
			return echo.ErrUnauthorized
		}

		limit := defaultPendingLimit
		if raw := c.QueryParam("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err == nil && parsed > 0 {
				limit = parsed
			}
		}
		if limit > maxPendingLimit {
			limit = maxPendingLimit
		}

		list, err := s.Orders.ListPendingForClient(ctx, client.ID, limit)
		if err != nil {
			return err
		}

		res := &types.OrderListResponse{
			Orders: make([]*types.OrderStatusResponse, 0, len(list)),
		}
		for _, o := range list {
			res.Orders = append(res.Orders, orderStatusResponse(o))
		}

		return c.JSON(http.StatusOK, res)
	}
}
