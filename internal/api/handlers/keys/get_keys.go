package keys

import (
	"net/http"
	"time"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/auth"
	"github/custodia/signing-service/internal/types"
)

func GetKeysRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Keys.GET("", getKeysHandler(s))
}

func getKeysHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		client := auth.ClientFromContext(ctx)
		if client == nil {
			return echo.ErrUnauthorized
		}

		list, err := s.Keys.ListForClient(ctx, client.ID, c.QueryParam("search"))
		if err != nil {
			return err
		}

		res := &types.KeyListResponse{
			Keys: make([]*types.KeyResponse, 0, len(list)),
		}
		for _, k := range list {
			res.Keys = append(res.Keys, &types.KeyResponse{
				KeyID:        swag.String(k.ID),
				Address:      swag.String(k.Address),
				PublicKey:    k.PublicKey,
				ClientUserID: k.ClientUserID.String,
				OwningUserID: k.OwningUserID.String,
				CreatedAt:    k.CreatedAt.Format(time.RFC3339),
			})
		}

		return c.JSON(http.StatusOK, res)
	}
}
