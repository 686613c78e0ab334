package httperrors

import (
	"fmt"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github/custodia/signing-service/internal/types"
)

// HTTPError carries the public error envelope together with the HTTP status
// to respond with. Internal is never exposed to the client.
type HTTPError struct {
	types.PublicHTTPError
	HTTPStatus int
	Internal   error `json:"-"`
}

func NewHTTPError(httpStatus int, code string, message string) *HTTPError {
	return &HTTPError{
		PublicHTTPError: types.PublicHTTPError{
			Code:    swag.String(code),
			Message: swag.String(message),
		},
		HTTPStatus: httpStatus,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTPError %d (%s): %s", e.HTTPStatus, swag.StringValue(e.Code), swag.StringValue(e.Message))
}

// SetInternal attaches an internal error for logging, returning the error itself.
func (e *HTTPError) SetInternal(err error) *HTTPError {
	e.Internal = err
	return e
}

// HTTPValidationError is an HTTPError with field level details.
type HTTPValidationError struct {
	types.PublicHTTPValidationError
	HTTPStatus int
	Internal   error `json:"-"`
}

func NewHTTPValidationError(httpStatus int, code string, message string, validationErrors []*types.HTTPValidationErrorDetail) *HTTPValidationError {
	return &HTTPValidationError{
		PublicHTTPValidationError: types.PublicHTTPValidationError{
			PublicHTTPError: types.PublicHTTPError{
				Code:    swag.String(code),
				Message: swag.String(message),
			},
			ValidationErrors: validationErrors,
		},
		HTTPStatus: httpStatus,
	}
}

func (e *HTTPValidationError) Error() string {
	return fmt.Sprintf("HTTPValidationError %d (%s): %s", e.HTTPStatus, swag.StringValue(e.Code), swag.StringValue(e.Message))
}

// HandlerConfig controls how much internal detail leaks into responses.
type HandlerConfig struct {
	HideInternalServerErrorDetails bool
}

// HTTPErrorHandlerWithConfig returns the central echo error handler translating
// any error into the public envelope.
func HTTPErrorHandlerWithConfig(config HandlerConfig) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		log := zerolog.Ctx(c.Request().Context())

		var status int
		var payload interface{}

		switch e := err.(type) {
		case *HTTPError:
			status = e.HTTPStatus
			payload = e.PublicHTTPError
			if e.Internal != nil {
				log.Debug().Err(e.Internal).Int("status", status).Msg("Internal error attached to HTTP error")
			}
		case *HTTPValidationError:
			status = e.HTTPStatus
			payload = e.PublicHTTPValidationError
		case *echo.HTTPError:
			status = e.Code
			msg := fmt.Sprintf("%v", e.Message)
			if status == http.StatusInternalServerError && config.HideInternalServerErrorDetails {
				msg = http.StatusText(http.StatusInternalServerError)
			}
			payload = types.NewPublicHTTPError(codeForStatus(status), msg)
		default:
			status = http.StatusInternalServerError
			msg := err.Error()
			if config.HideInternalServerErrorDetails {
				msg = http.StatusText(http.StatusInternalServerError)
			}
			payload = types.NewPublicHTTPError(types.HTTPErrorCodeUnknown, msg)
		}

		if !c.Response().Committed {
			if c.Request().Method == http.MethodHead {
				err = c.NoContent(status)
			} else {
				err = c.JSON(status, payload)
			}

			if err != nil {
				log.Warn().Err(err).Msg("Failed to write error response")
			}
		}
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return types.HTTPErrorCodeValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return types.HTTPErrorCodeUnauthorized
	case http.StatusNotFound:
		return types.HTTPErrorCodeNotFound
	case http.StatusConflict:
		return types.HTTPErrorCodeConflict
	default:
		return types.HTTPErrorCodeUnknown
	}
}
