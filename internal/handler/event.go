package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/residence-hall-booking/internal/authz"
)

// EventHandler serves event CRUD. Events are collectively owned: any
// member of the organiser set may mutate or delete, and the creating
// resident joins the set whether or not the request lists them.
type EventHandler struct {
	Events   EventStore
	Bookings BookingStore
}

func NewEventHandler(events EventStore, bookings BookingStore) *EventHandler {
	if events == nil || bookings == nil {
		panic("nil store passed to NewEventHandler")
	}
	return &EventHandler{Events: events, Bookings: bookings}
}

// List handles GET /v1/events. Public listing for the notice board.
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.Events.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, events)
}

// Get handles GET /v1/events/:id.
func (h *EventHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	event, err := h.Events.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, event)
}

// Create handles POST /v1/events. A referenced booking, when given, must
// exist; the link is optional and carries no cascade either way.
func (h *EventHandler) Create(c echo.Context) error {
	var in authz.EventInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	event, err := authz.NewEvent(principal(c), in)
	if err != nil {
		return writeError(c, err)
	}

	ctx := c.Request().Context()
	if event.BookingID != nil {
		if _, err := h.Bookings.GetByID(ctx, *event.BookingID); err != nil {
			return writeError(c, err)
		}
	}
	if err := h.Events.Create(ctx, &event); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, event)
}

// Update handles PATCH /v1/events/:id. Same fetch-then-decide ordering as
// bookings; the organiser set itself is not part of the patch surface.
func (h *EventHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	event, err := h.Events.GetByID(ctx, id)
	if err != nil {
		return writeError(c, err)
	}
	if err := authz.CanMutateEvent(principal(c), event); err != nil {
		return writeError(c, err)
	}

	var patch authz.EventPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := patch.Validate(); err != nil {
		return writeError(c, err)
	}

	updated := patch.Apply(*event)
	if err := h.Events.Update(ctx, &updated); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/events/:id and returns the removed event.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	event, err := h.Events.GetByID(ctx, id)
	if err != nil {
		return writeError(c, err)
	}
	if err := authz.CanMutateEvent(principal(c), event); err != nil {
		return writeError(c, err)
	}
	if err := h.Events.Delete(ctx, id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, event)
}
