package httperrors

import (
	"net/http"

	"github/custodia/signing-service/internal/types"
)

var (
	ErrNotFoundOrder         = NewHTTPError(http.StatusNotFound, types.HTTPErrorCodeNotFound, "Order not found.")
	ErrNotFoundKey           = NewHTTPError(http.StatusNotFound, types.HTTPErrorCodeNotFound, "Key not found.")
	ErrUnauthorizedClient    = NewHTTPError(http.StatusUnauthorized, types.HTTPErrorCodeUnauthorized, "Missing or invalid client credentials.")
	ErrForbiddenOrderAccess  = NewHTTPError(http.StatusNotFound, types.HTTPErrorCodeNotFound, "Order not found.")
	ErrConflictOrderState    = NewHTTPError(http.StatusConflict, types.HTTPErrorCodeConflict, "Order is not in a state allowing this operation.")
	ErrBadRequestUnknownType = NewHTTPError(http.StatusBadRequest, types.HTTPErrorCodeValidation, "Unsupported order type.")
)
