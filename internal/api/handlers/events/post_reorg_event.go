package events

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/api/httperrors"
	"github/custodia/signing-service/internal/chain"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/types"
	"github/custodia/signing-service/internal/util"
)

func PostReorgEventRoute(s *api.Server) *echo.Route {
	return s.Router.Management.POST("/events/reorg", postReorgEventHandler(s))
}

func postReorgEventHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostReorgEventPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		target := order.StateReorged
		if body.NewState != "" {
			target = order.State(body.NewState)
			if _, err := order.PossibleCurrentStates(target); err != nil {
				return httperrors.NewHTTPValidationError(
					http.StatusBadRequest,
					types.HTTPErrorCodeValidation,
					err.Error(),
					[]*types.HTTPValidationErrorDetail{
						{
							Key:   swag.String("new_state"),
							In:    swag.String("body"),
							Error: swag.String(err.Error()),
						},
					},
				)
			}
		}

		evt := &chain.ReorgEvent{
			ChainID:           swag.Int64Value(body.ChainID),
			TransactionHashes: body.TransactionHashes,
			NewState:          target,
		}

		affected, err := s.Reconciler.HandleReorg(ctx, evt)
		if err != nil {
			log.Debug().Err(err).Int64("chain_id", evt.ChainID).Msg("Failed to process reorg event")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.ReorgEventResponse{
			AffectedOrders: swag.Int64(affected),
		})
	}
}
