package chains

import (
	"database/sql"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/api/httperrors"
	"github/custodia/signing-service/internal/auth"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/types"
	"github/custodia/signing-service/internal/util"
)

// Policy mappings bind a destination address, or the chain default, to the
// name of the approval policy enforced for orders towards it.

func PutAddressPolicyRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Chains.PUT("/:chainId/addresses/:address/policy", putPolicyHandler(s, true))
}

func GetAddressPolicyRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Chains.GET("/:chainId/addresses/:address/policy", getPolicyHandler(s, true))
}

func DeleteAddressPolicyRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Chains.DELETE("/:chainId/addresses/:address/policy", deletePolicyHandler(s, true))
}

func PutDefaultPolicyRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Chains.PUT("/:chainId/default/policy", putPolicyHandler(s, false))
}

func GetDefaultPolicyRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Chains.GET("/:chainId/default/policy", getPolicyHandler(s, false))
}

func DeleteDefaultPolicyRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Chains.DELETE("/:chainId/default/policy", deletePolicyHandler(s, false))
}

func addressParam(c echo.Context, scoped bool) *string {
	if !scoped {
		return nil
	}

	address := c.Param("address")

	return &address
}

func putPolicyHandler(s *api.Server, scoped bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		client := auth.ClientFromContext(ctx)
		if client == nil {
			return echo.ErrUnauthorized
		}

		chainID, err := chainIDParam(c)
		if err != nil {
			return err
		}

		var body types.PutPolicyMappingPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		address := addressParam(c, scoped)
		if err := s.Policies.Set(ctx, client.ID, chainID, address, swag.StringValue(body.PolicyName)); err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, policyMappingResponse(chainID, address, swag.StringValue(body.PolicyName)))
	}
}

func getPolicyHandler(s *api.Server, scoped bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		client := auth.ClientFromContext(ctx)
		if client == nil {
			return echo.ErrUnauthorized
		}

		chainID, err := chainIDParam(c)
		if err != nil {
			return err
		}

		row, err := s.Policies.Get(ctx, client.ID, chainID, addressParam(c, scoped))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return httperrors.NewHTTPError(http.StatusNotFound, types.HTTPErrorCodeNotFound, "Policy mapping not found.")
			}
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, policyMappingResponseFromModel(row))
	}
}

func deletePolicyHandler(s *api.Server, scoped bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		client := auth.ClientFromContext(ctx)
		if client == nil {
			return echo.ErrUnauthorized
		}

		chainID, err := chainIDParam(c)
		if err != nil {
			return err
		}

		rowsAff, err := s.Policies.Delete(ctx, client.ID, chainID, addressParam(c, scoped))
		if err != nil {
			return err
		}
		if rowsAff == 0 {
			return httperrors.NewHTTPError(http.StatusNotFound, types.HTTPErrorCodeNotFound, "Policy mapping not found.")
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func policyMappingResponse(chainID int64, address *string, policyName string) *types.PolicyMappingResponse {
	res := &types.PolicyMappingResponse{
		PolicyName: swag.String(policyName),
		ChainID:    swag.Int64(chainID),
	}
	if address != nil {
		res.Address = *address
	}

	return res
}

func policyMappingResponseFromModel(row *models.AddressPolicy) *types.PolicyMappingResponse {
	return &types.PolicyMappingResponse{
		PolicyName: swag.String(row.PolicyName),
		ChainID:    swag.Int64(row.ChainID),
		Address:    row.Address.String,
	}
}
