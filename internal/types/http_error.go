package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// PublicHTTPError is the public error envelope returned by every endpoint.
type PublicHTTPError struct {
	// Machine readable error code
	// Required: true
	// Example: validation
	Code *string `json:"code"`

	// Human readable error message
	// Required: true
	// Example: missing key_id
	Message *string `json:"message"`
}

// Validate validates this public Http error
func (m *PublicHTTPError) Validate(formats strfmt.Registry) error {
	if err := validate.Required("code", "body", m.Code); err != nil {
		return err
	}

	if err := validate.Required("message", "body", m.Message); err != nil {
		return err
	}

	return nil
}

// PublicHTTPValidationError extends the public error envelope with per field details.
type PublicHTTPValidationError struct {
	PublicHTTPError

	// List of failed fields
	ValidationErrors []*HTTPValidationErrorDetail `json:"validation_errors,omitempty"`
}

// Validate validates this public Http validation error
func (m *PublicHTTPValidationError) Validate(formats strfmt.Registry) error {
	if err := m.PublicHTTPError.Validate(formats); err != nil {
		return err
	}

	for i := range m.ValidationErrors {
		if m.ValidationErrors[i] == nil {
			continue
		}

		if err := m.ValidationErrors[i].Validate(formats); err != nil {
			return err
		}
	}

	return nil
}

// HTTPValidationErrorDetail names a single failed field.
type HTTPValidationErrorDetail struct {
	// Error describing field validation failure
	// Required: true
	Error *string `json:"error"`

	// Indicates how the invalid field was provided
	// Required: true
	In *string `json:"in"`

	// Key of field failing validation
	// Required: true
	Key *string `json:"key"`
}

// Validate validates this Http validation error detail
func (m *HTTPValidationErrorDetail) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("error", "body", m.Error); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("in", "body", m.In); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("key", "body", m.Key); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// Error codes shared by the public API.
const (
	HTTPErrorCodeValidation      = "validation"
	HTTPErrorCodeNotFound        = "order_not_found"
	HTTPErrorCodeUnauthorized    = "unauthorized"
	HTTPErrorCodeUnknown         = "unknown_error"
	HTTPErrorCodeSubmissionError = "submission_error"
	HTTPErrorCodeConflict        = "conflict"
)

// NewPublicHTTPError builds the envelope with value semantics for convenience.
func NewPublicHTTPError(code, message string) *PublicHTTPError {
	return &PublicHTTPError{
		Code:    swag.String(code),
		Message: swag.String(message),
	}
}
