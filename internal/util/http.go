package util

import (
	stderrors "errors"
	"net/http"

	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/custodia/signing-service/internal/api/httperrors"
	"github/custodia/signing-service/internal/types"
)

// BindAndValidateBody binds the request body to the given payload and runs its
// swagger validations, returning a HTTPValidationError on failure.
func BindAndValidateBody(c echo.Context, v runtime.Validatable) error {
	binder := c.Echo().Binder.(*echo.DefaultBinder)

	if err := binder.BindBody(c, v); err != nil {
		return err
	}

	return validatePayload(c, v)
}

// ValidateAndReturn validates the response payload before writing it out,
// guarding against returning malformed bodies.
func ValidateAndReturn(c echo.Context, code int, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		return err
	}

	return c.JSON(code, v)
}

func validatePayload(c echo.Context, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		var compositeError *openapierrors.CompositeError
		var validationError *openapierrors.Validation

		switch {
		case errorsAs(err, &compositeError):
			LogFromEchoContext(c).Debug().Errs("validation_errors", compositeError.Errors).Msg("Payload did match schema, returning HTTP validation error")

			valErrs := formatValidationErrors(compositeError)

			return httperrors.NewHTTPValidationError(http.StatusBadRequest, types.HTTPErrorCodeValidation, http.StatusText(http.StatusBadRequest), valErrs)
		case errorsAs(err, &validationError):
			LogFromEchoContext(c).Debug().AnErr("validation_error", validationError).Msg("Payload did match schema, returning HTTP validation error")

			valErrs := []*types.HTTPValidationErrorDetail{
				{
					Key:   swag.String(validationError.Name),
					In:    swag.String(validationError.In),
					Error: swag.String(validationError.Error()),
				},
			}

			return httperrors.NewHTTPValidationError(http.StatusBadRequest, types.HTTPErrorCodeValidation, http.StatusText(http.StatusBadRequest), valErrs)
		default:
			LogFromEchoContext(c).Error().Err(err).Msg("Failed to validate payload, returning generic HTTP error")
			return err
		}
	}

	return nil
}

func formatValidationErrors(compositeError *openapierrors.CompositeError) []*types.HTTPValidationErrorDetail {
	valErrs := make([]*types.HTTPValidationErrorDetail, 0, len(compositeError.Errors))

	for _, err := range compositeError.Errors {
		var validationError *openapierrors.Validation
		var nestedComposite *openapierrors.CompositeError

		switch {
		case errorsAs(err, &validationError):
			valErrs = append(valErrs, &types.HTTPValidationErrorDetail{
				Key:   swag.String(validationError.Name),
				In:    swag.String(validationError.In),
				Error: swag.String(validationError.Error()),
			})
		case errorsAs(err, &nestedComposite):
			valErrs = append(valErrs, formatValidationErrors(nestedComposite)...)
		default:
			valErrs = append(valErrs, &types.HTTPValidationErrorDetail{
				Key:   swag.String("body"),
				In:    swag.String("body"),
				Error: swag.String(err.Error()),
			})
		}
	}

	return valErrs
}

func errorsAs(err error, target interface{}) bool {
	return stderrors.As(err, target)
}
