package chains

import (
	"net/http"
	"strconv"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/custodia/signing-service/internal/api/httperrors"
	"github/custodia/signing-service/internal/types"
)

// chainIDParam parses the chain id path parameter.
func chainIDParam(c echo.Context) (int64, error) {
	chainID, err := strconv.ParseInt(c.Param("chainId"), 10, 64)
	if err != nil {
		return 0, httperrors.NewHTTPValidationError(
			http.StatusBadRequest,
			types.HTTPErrorCodeValidation,
			http.StatusText(http.StatusBadRequest),
			[]*types.HTTPValidationErrorDetail{
				{
					Key:   swag.String("chainId"),
					In:    swag.String("path"),
					Error: swag.String("must be an integer chain id"),
				},
			},
		)
	}

	return chainID, nil
}

// httperrorUnknownTokenType rejects token type segments other than ft or nft.
func httperrorUnknownTokenType(tokenType string) error {
	return httperrors.NewHTTPValidationError(
		http.StatusBadRequest,
		types.HTTPErrorCodeValidation,
		http.StatusText(http.StatusBadRequest),
		[]*types.HTTPValidationErrorDetail{
			{
				Key:   swag.String("tokenType"),
				In:    swag.String("path"),
				Error: swag.String("unsupported token type " + tokenType + ", expected ft or nft"),
			},
		},
	)
}
