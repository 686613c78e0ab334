package chains

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/auth"
	"github/custodia/signing-service/internal/models"
	"github/custodia/signing-service/internal/types"
	"github/custodia/signing-service/internal/util"
)

func GetSponsorAddressesRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Chains.GET("/:chainId/sponsors", getSponsorAddressesHandler(s))
}

func PostSponsorAddressRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Chains.POST("/:chainId/sponsors", postSponsorAddressHandler(s))
}

func getSponsorAddressesHandler(s *api.Server) echo.HandlerFunc {
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

		list, err := s.Sponsors.List(ctx, client.ID, chainID)
		if err != nil {
			return err
		}

		res := &types.SponsorAddressListResponse{
			Sponsors: make([]*types.SponsorAddressResponse, 0, len(list)),
		}
		for _, entry := range list {
			res.Sponsors = append(res.Sponsors, sponsorAddressResponse(entry))
		}

		return c.JSON(http.StatusOK, res)
	}
}

func postSponsorAddressHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		client := auth.ClientFromContext(ctx)
		if client == nil {
			return echo.ErrUnauthorized
		}
		log := util.LogFromContext(ctx)

		chainID, err := chainIDParam(c)
		if err != nil {
			return err
		}

		var body types.PostSponsorAddressPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		entry := &models.SponsorAddress{
			ClientID:         client.ID,
			ChainID:          chainID,
			ForwarderName:    swag.StringValue(body.ForwarderName),
			ForwarderAddress: strings.ToLower(swag.StringValue(body.ForwarderAddress)),
			GasPoolAddress:   strings.ToLower(swag.StringValue(body.GasPoolAddress)),
		}

		if err := s.Sponsors.Set(ctx, entry); err != nil {
			log.Debug().Err(err).Int64("chain_id", chainID).Msg("Failed to store sponsor addresses")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusCreated, sponsorAddressResponse(entry))
	}
}

func sponsorAddressResponse(entry *models.SponsorAddress) *types.SponsorAddressResponse {
	return &types.SponsorAddressResponse{
		ForwarderName:    swag.String(entry.ForwarderName),
		ForwarderAddress: swag.String(entry.ForwarderAddress),
		GasPoolAddress:   swag.String(entry.GasPoolAddress),
		ChainID:          swag.Int64(entry.ChainID),
		CreatedAt:        entry.CreatedAt.Format(time.RFC3339),
	}
}
