package orders

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/api/httperrors"
	"github/custodia/signing-service/internal/auth"
	"github/custodia/signing-service/internal/order"
	"github/custodia/signing-service/internal/types"
	"github/custodia/signing-service/internal/util"
)

// PostApprovalRoute ingests approver decisions over HTTP, complementing the
// redis response channel for approvers that prefer a synchronous callback.
func PostApprovalRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Orders.POST("/:orderId/approvals", postApprovalHandler(s))
}

func postApprovalHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		client := auth.ClientFromContext(ctx)
		if client == nil {
			return echo.ErrUnauthorized
		}
		log := util.LogFromContext(ctx)

		orderID, err := uuid.Parse(c.Param("orderId"))
		if err != nil {
			return httperrors.ErrNotFoundOrder
		}

		var body types.PostApprovalPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		// scope the lookup to the caller before accepting the response
		if _, err := s.Orders.GetForClient(ctx, orderID.String(), client.ID); err != nil {
			if errors.Is(err, order.ErrNotFound) {
				return httperrors.ErrNotFoundOrder
			}
			return err
		}

		resp := &order.ApprovalResponse{
			OrderID:           orderID,
			ApproverName:      swag.StringValue(body.ApproverName),
			ApprovalStatus:    swag.IntValue(body.ApprovalStatus),
			StatusReason:      body.StatusReason,
			Metadata:          body.Metadata,
			MetadataSignature: body.MetadataSignature,
		}

		if err := s.Approvals.IngestResponse(ctx, resp, resp.ApproverName); err != nil {
			log.Debug().Err(err).Msg("Failed to ingest approval response")
			return err
		}

		return c.NoContent(http.StatusNoContent)
	}
}
