package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/custodia/signing-service/internal/api"
)

func GetOrderCountsRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/admin/orders/counts", getOrderCountsHandler(s))
}

func getOrderCountsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		counts, err := s.Orders.CountsByState(ctx)
		if err != nil {
			return err
		}

		s.Metrics.ObserveOrderCounts(counts)

		return c.JSON(http.StatusOK, counts)
	}
}
