package handlers

import (
	"github.com/labstack/echo/v4"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/api/handlers/admin"
	"github/custodia/signing-service/internal/api/handlers/chains"
	"github/custodia/signing-service/internal/api/handlers/common"
	"github/custodia/signing-service/internal/api/handlers/events"
	"github/custodia/signing-service/internal/api/handlers/keys"
	"github/custodia/signing-service/internal/api/handlers/orders"
)

// AttachAllRoutes attaches all the routes of the service to the server's
// route groups.
func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetReadyRoute(s),
		common.GetVersionRoute(s),

		keys.PostCreateKeyRoute(s),
		keys.GetKeysRoute(s),
		keys.PostSignTransactionRoute(s),
		keys.PostSignSponsoredRoute(s),

		orders.GetOrderRoute(s),
		orders.GetPendingOrdersRoute(s),
		orders.PostCancelOrderRoute(s),
		orders.PostSpeedupOrderRoute(s),
		orders.PostApprovalRoute(s),

		chains.GetHistoricalFeesRoute(s),
		chains.GetFeePredictionRoute(s),
		chains.GetNativeBalanceRoute(s),
		chains.PostTokenBalancesRoute(s),
		chains.PutAddressPolicyRoute(s),
		chains.GetAddressPolicyRoute(s),
		chains.DeleteAddressPolicyRoute(s),
		chains.PutDefaultPolicyRoute(s),
		chains.GetDefaultPolicyRoute(s),
		chains.DeleteDefaultPolicyRoute(s),
		chains.GetSponsorAddressesRoute(s),
		chains.PostSponsorAddressRoute(s),

		events.PostIncludedEventRoute(s),
		events.PostReorgEventRoute(s),

		admin.PutNonceRoute(s),
		admin.GetOrderCountsRoute(s),
		admin.PostCancelPendingRoute(s),
		admin.PostForceSelectionRoute(s),
	}
}
