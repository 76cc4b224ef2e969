// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/zwitch/pkg/auth"
	"github.com/ghuser/zwitch/pkg/httpx"
	listingdomain "github.com/ghuser/zwitch/services/listing/domain"
	userdomain "github.com/ghuser/zwitch/services/user/domain"
	valuationdomain "github.com/ghuser/zwitch/services/valuation/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, auth.ErrAuthRequired):
		return http.StatusUnauthorized // 401
	case errors.Is(err, listingdomain.ErrNotOwner):
		return http.StatusForbidden // 403
	case errors.Is(err, listingdomain.ErrItemNotFound),
		errors.Is(err, userdomain.ErrUserNotFound),
		errors.Is(err, userdomain.ErrWishlistItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, listingdomain.ErrLocalityRequired):
		return http.StatusBadRequest // 400
	case errors.Is(err, listingdomain.ErrInvalidListing),
		errors.Is(err, listingdomain.ErrPriceRequired),
		errors.Is(err, listingdomain.ErrPriceNotAllowed),
		errors.Is(err, listingdomain.ErrInvalidStatusTransition),
		errors.Is(err, valuationdomain.ErrInvalidValuationInput):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, valuationdomain.ErrValuationUnavailable):
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}
