// Package router defines how the HTTP routes are registered on the Echo
// instance. Routes come in three layers: the health check, public browse
// and facility-admin endpoints, and the protected /v1 group that sits
// behind the JWT middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/residence-hall-booking/internal/handler"
	"github.com/iliyamo/residence-hall-booking/internal/middleware"
	"github.com/iliyamo/residence-hall-booking/internal/model"
)

// RegisterRoutes registers routes that require neither authentication nor
// any handler state. Currently that is only the health check used by load
// balancers to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication routes. Register, login,
// refresh and logout live under /v1/auth and do not require an existing
// session; logout additionally accepts a bearer token to revoke every
// session of a user at once.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Rotates the refresh token and returns a fresh pair.
	g.POST("/refresh", a.Refresh)
	// Issues a new access token without rotating the refresh token.
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)
}

// RegisterPublic registers the unauthenticated endpoints: the browse
// routes for facilities, bookings and events, the greeting route, and the
// facility admin operations, which are deliberately open until a real
// admin surface exists. The cache middleware wraps only the GET routes;
// it may be nil when caching is disabled.
func RegisterPublic(e *echo.Echo, f *handler.FacilityHandler, b *handler.BookingHandler, ev *handler.EventHandler, p *handler.ProfileHandler, cache echo.MiddlewareFunc) {
	browse := e.Group("/v1")
	if cache != nil {
		browse.Use(cache)
	}
	browse.GET("/facilities", f.List)
	browse.GET("/facilities/:id", f.Get)
	browse.GET("/bookings", b.List)
	browse.GET("/events", ev.List)
	browse.GET("/events/:id", ev.Get)

	// Personalized when a token rides along, so never cached.
	e.GET("/v1/hello", p.Hello)

	e.POST("/v1/facilities", f.Create)
	e.DELETE("/v1/facilities/:id", f.Delete)
}

// RegisterProtected registers the routes that require a valid access
// token: booking and event mutations plus the caller's own profile. Every
// stored role is accepted; the role claim is carried but not yet used to
// gate anything.
func RegisterProtected(e *echo.Echo, b *handler.BookingHandler, ev *handler.EventHandler, p *handler.ProfileHandler, jwtSecret string) {
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleMember, model.RoleHallLeader, model.RoleSuperAdmin))

	auth.POST("/bookings", b.Create)
	auth.PATCH("/bookings/:id", b.Update)
	auth.DELETE("/bookings/:id", b.Delete)

	auth.POST("/events", ev.Create)
	auth.PATCH("/events/:id", ev.Update)
	auth.DELETE("/events/:id", ev.Delete)

	auth.GET("/me", p.Me)
	auth.PATCH("/me", p.UpdateMe)
	auth.GET("/me/bookings", b.ListMine)
}
