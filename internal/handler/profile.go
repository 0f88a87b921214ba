package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/residence-hall-booking/internal/config"
	"github.com/iliyamo/residence-hall-booking/internal/directory"
	"github.com/iliyamo/residence-hall-booking/internal/utils"
)

// ProfileHandler serves the greeting route and the caller's own profile.
type ProfileHandler struct {
	Cfg config.Config
	Dir directory.Service
}

func NewProfileHandler(cfg config.Config, dir directory.Service) *ProfileHandler {
	if dir == nil {
		panic("nil directory service passed to NewProfileHandler")
	}
	return &ProfileHandler{Cfg: cfg, Dir: dir}
}

// Hello handles GET /v1/hello. The route is public but personalizes the
// greeting when a valid access token rides along, so it reads the header
// itself rather than sitting behind the auth middleware.
func (h *ProfileHandler) Hello(c echo.Context) error {
	header := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		raw := strings.TrimPrefix(header, "Bearer ")
		if userID, _, err := utils.ParseAccessToken(h.Cfg.JWTSecret, raw); err == nil {
			return c.JSON(http.StatusOK, echo.Map{
				"message": "Hello, resident " + strconv.FormatUint(userID, 10) + "!",
			})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Hello, guest!"})
}

// Me handles GET /v1/me. Behind the auth middleware, so the principal is
// always set; the directory is the source of truth for the metadata.
func (h *ProfileHandler) Me(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}
	profile, err := h.Dir.Lookup(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Hello, resident " + strconv.FormatUint(userID, 10) + "!",
		"profile": profile,
	})
}

// UpdateMe handles PATCH /v1/me. Only display metadata is patchable; ids
// and group membership are managed elsewhere.
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}
	var patch directory.MetadataPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	profile, err := h.Dir.UpdateMetadata(c.Request().Context(), userID, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}
