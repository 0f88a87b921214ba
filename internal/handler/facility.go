package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/residence-hall-booking/internal/model"
)

// FacilityHandler serves the facility catalogue. Facility administration
// carries no ownership or role check: any caller, authenticated or not,
// may create and delete facilities. That mirrors the routers this service
// replaces; whether administration should be restricted to hall leaders is
// an open product question, and the tests pin the current behaviour rather
// than guess.
type FacilityHandler struct {
	Facilities FacilityStore
	Bookings   BookingStore
}

func NewFacilityHandler(facilities FacilityStore, bookings BookingStore) *FacilityHandler {
	if facilities == nil || bookings == nil {
		panic("nil store passed to NewFacilityHandler")
	}
	return &FacilityHandler{Facilities: facilities, Bookings: bookings}
}

// List handles GET /v1/facilities.
func (h *FacilityHandler) List(c echo.Context) error {
	facilities, err := h.Facilities.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, facilities)
}

// Get handles GET /v1/facilities/:id and includes the facility's bookings,
// the relational include the facility detail page drives its calendar
// widget from.
func (h *FacilityHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	facility, err := h.Facilities.GetByID(ctx, id)
	if err != nil {
		return writeError(c, err)
	}
	bookings, err := h.Bookings.ListByFacility(ctx, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"facility": facility,
		"bookings": bookings,
	})
}

// Create handles POST /v1/facilities.
func (h *FacilityHandler) Create(c echo.Context) error {
	var body struct {
		Description  string `json:"description"`
		OpeningHours string `json:"openingHours"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Description = strings.TrimSpace(body.Description)
	if body.Description == "" || strings.TrimSpace(body.OpeningHours) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "description and openingHours are required"})
	}

	facility := &model.Facility{Description: body.Description, OpeningHours: body.OpeningHours}
	if err := h.Facilities.Create(c.Request().Context(), facility); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, facility)
}

// Delete handles DELETE /v1/facilities/:id and returns the removed row so
// clients can show what was taken down.
func (h *FacilityHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	facility, err := h.Facilities.GetByID(ctx, id)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.Facilities.Delete(ctx, id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, facility)
}
