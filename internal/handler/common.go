// Package handler contains the HTTP handlers: thin glue that binds
// requests, fetches state through the repositories, asks the authz package
// for a decision and maps the outcome onto status codes. The ordering
// inside every mutate/delete handler is fixed: fetch first (404 when the
// id does not resolve), decide second (403 for a live record the caller
// does not own), act last.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/residence-hall-booking/internal/authz"
	"github.com/iliyamo/residence-hall-booking/internal/directory"
	"github.com/iliyamo/residence-hall-booking/internal/repository"
)

// getUserID extracts the authenticated user id injected by the JWT
// middleware. JSON numbers decode as float64, so several representations
// are accepted.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// principal resolves the request's principal for the authz package. On
// routes without JWT middleware (or with a broken claim) the result is the
// anonymous principal; authz then rejects creation and mutation.
func principal(c echo.Context) authz.Principal {
	uid, err := getUserID(c)
	if err != nil {
		return 0
	}
	return authz.Principal(uid)
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// writeError maps the error taxonomy onto HTTP statuses. Not-found and
// forbidden stay distinct all the way out; anything unrecognised is a
// store failure and surfaces as 500 without detail.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, authz.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	case errors.Is(err, authz.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	case errors.Is(err, authz.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrFacilityNotFound),
		errors.Is(err, repository.ErrBookingNotFound),
		errors.Is(err, repository.ErrEventNotFound),
		errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, directory.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrFacilityExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
}
