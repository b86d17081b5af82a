package http

import (
	"errors"

	"sales-analytics-srv/internal/analytics"
	pkgErrors "sales-analytics-srv/pkg/errors"
)

var (
	errUserNotFound   = pkgErrors.NewHTTPError(404, "User not found")
	errGroupNotFound  = pkgErrors.NewHTTPError(404, "Group not found")
	errSaleNotFound   = pkgErrors.NewHTTPError(404, "Sale not found")
	errInvalidUserID  = pkgErrors.NewHTTPError(400, "Invalid user id")
	errInvalidGroupID = pkgErrors.NewHTTPError(400, "Invalid group id")
	errInvalidSaleID  = pkgErrors.NewHTTPError(400, "Invalid sale id")
)

// mapError translates domain errors into HTTP errors. Anything unmapped
// passes through and is rendered as an opaque 500 by the response package.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analytics.ErrUserNotFound):
		return errUserNotFound
	case errors.Is(err, analytics.ErrGroupNotFound):
		return errGroupNotFound
	case errors.Is(err, analytics.ErrSaleNotFound):
		return errSaleNotFound
	default:
		return err
	}
}
