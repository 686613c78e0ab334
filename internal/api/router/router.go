package router

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/api/handlers"
	"github/custodia/signing-service/internal/api/httperrors"
	"github/custodia/signing-service/internal/api/middleware"
	"github/custodia/signing-service/internal/auth"
)

// Init sets up the echo instance, attaches the middleware stack and mounts
// all route groups on the server.
func Init(s *api.Server) {
	s.Echo = echo.New()

	s.Echo.Debug = s.Config.Echo.Debug
	s.Echo.HideBanner = true

	s.Echo.HTTPErrorHandler = httperrors.HTTPErrorHandlerWithConfig(httperrors.HandlerConfig{
		HideInternalServerErrorDetails: s.Config.Echo.HideInternalServerErrorDetails,
	})

	if s.Config.Echo.EnableTrailingSlashMiddleware {
		s.Echo.Pre(echomiddleware.RemoveTrailingSlash())
	}

	if s.Config.Echo.EnableRecoverMiddleware {
		s.Echo.Use(echomiddleware.Recover())
	}

	if s.Config.Echo.EnableSecureMiddleware {
		s.Echo.Use(echomiddleware.Secure())
	}

	if s.Config.Echo.EnableRequestIDMiddleware {
		s.Echo.Use(echomiddleware.RequestID())
	}

	if s.Config.Echo.EnableLoggerMiddleware {
		s.Echo.Use(middleware.Logger(s.Config.Logger))
	}

	if s.Config.Echo.EnableCORSMiddleware {
		s.Echo.Use(echomiddleware.CORS())
	}

	s.Echo.Use(echoprometheus.NewMiddleware("signing"))
	s.Echo.GET("/metrics", echoprometheus.NewHandler())

	clientAuth := auth.Middleware(s.Config.Auth)
	mgmtAuth := echomiddleware.KeyAuthWithConfig(echomiddleware.KeyAuthConfig{
		KeyLookup: "query:mgmt-secret",
		Validator: func(key string, c echo.Context) (bool, error) {
			return key == s.Config.Management.Secret, nil
		},
	})

	s.Router = &api.Router{
		Routes:      nil, // filled by handlers.AttachAllRoutes(s)
		Root:        s.Echo.Group(""),
		Management:  s.Echo.Group("/-", mgmtAuth),
		APIV1Keys:   s.Echo.Group("/api/v1/keys", clientAuth),
		APIV1Orders: s.Echo.Group("/api/v1/orders", clientAuth),
		APIV1Chains: s.Echo.Group("/api/v1/chains", clientAuth),
	}

	handlers.AttachAllRoutes(s)
}
