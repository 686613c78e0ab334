package keys

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/auth"
	"github/custodia/signing-service/internal/types"
	"github/custodia/signing-service/internal/util"
)

func PostCreateKeyRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Keys.POST("", postCreateKeyHandler(s))
}

func postCreateKeyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		client := auth.ClientFromContext(ctx)
		if client == nil {
			return echo.ErrUnauthorized
		}
		log := util.LogFromContext(ctx)

		var body types.PostCreateKeyPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		o, err := s.Creator.CreateOrder(ctx, client.ID, swag.StringValue(body.ClientUserID), body.OwningUserID, s.Config.Engine.DefaultOrderVersion)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to create key creation order")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusAccepted, &types.OrderCreatedResponse{
			OrderID: swag.String(o.ID),
		})
	}
}
