package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole enforces that the authenticated resident carries one of the
// given roles in the JWT "role" claim. Requests with a missing or unknown
// role get 403. The router currently passes all three roles everywhere —
// role enforcement is stored but deliberately not yet applied to any
// operation — but the gate exists so a future revision can restrict, say,
// facility administration to HALL_LEADER without new plumbing.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
