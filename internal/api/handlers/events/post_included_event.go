package events

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/chain"
	"github/custodia/signing-service/internal/types"
	"github/custodia/signing-service/internal/util"
)

// PostIncludedEventRoute ingests mined-transaction events from the chain
// watcher. Runs under the management secret, not client auth.
func PostIncludedEventRoute(s *api.Server) *echo.Route {
	return s.Router.Management.POST("/events/included", postIncludedEventHandler(s))
}

func postIncludedEventHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostIncludedEventPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		evt := &chain.IncludedEvent{
			Hash:        swag.StringValue(body.Hash),
			From:        body.From,
			ChainID:     swag.Int64Value(body.ChainID),
			BlockNumber: body.BlockNumber,
			BlockHash:   body.BlockHash,
			Logs:        body.Logs,
		}

		if err := s.Reconciler.HandleIncluded(ctx, evt); err != nil {
			log.Debug().Err(err).Str("hash", evt.Hash).Msg("Failed to process included event")
			return err
		}

		return c.NoContent(http.StatusNoContent)
	}
}
