package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/residence-hall-booking/internal/authz"
	"github.com/iliyamo/residence-hall-booking/internal/model"
	"github.com/iliyamo/residence-hall-booking/internal/queue"
	queuepub "github.com/iliyamo/residence-hall-booking/internal/service"
)

// BookingHandler serves booking CRUD. Creation and every mutation go
// through the authz package; the handler contributes only the fixed
// fetch-then-decide ordering and the status-code mapping.
type BookingHandler struct {
	Bookings   BookingStore
	Facilities FacilityStore
}

func NewBookingHandler(bookings BookingStore, facilities FacilityStore) *BookingHandler {
	if bookings == nil || facilities == nil {
		panic("nil store passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings, Facilities: facilities}
}

// List handles GET /v1/bookings. The listing is public so residents can
// browse existing reservations and find free slots before signing in.
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.Bookings.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// ListMine handles GET /v1/me/bookings for the signed-in resident.
func (h *BookingHandler) ListMine(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookings, err := h.Bookings.ListByUser(c.Request().Context(), uid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// Create handles POST /v1/bookings. The owner of the new booking is the
// authenticated principal; a userId in the request body is ignored by
// construction, since the input type has no such field.
func (h *BookingHandler) Create(c echo.Context) error {
	var in authz.BookingInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	booking, err := authz.NewBooking(principal(c), in)
	if err != nil {
		return writeError(c, err)
	}

	ctx := c.Request().Context()
	facility, err := h.Facilities.GetByID(ctx, booking.FacilityID)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.Bookings.Create(ctx, &booking); err != nil {
		return writeError(c, err)
	}

	go publishBookingCreated(booking, facility)

	return c.JSON(http.StatusCreated, booking)
}

// Update handles PATCH /v1/bookings/:id. Fetch precedes the ownership
// decision so an unknown id is 404 even for callers who would also have
// been forbidden.
func (h *BookingHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	booking, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		return writeError(c, err)
	}
	if err := authz.CanMutateBooking(principal(c), booking); err != nil {
		return writeError(c, err)
	}

	var patch authz.BookingPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := patch.Validate(); err != nil {
		return writeError(c, err)
	}
	if patch.FacilityID != nil {
		if _, err := h.Facilities.GetByID(ctx, *patch.FacilityID); err != nil {
			return writeError(c, err)
		}
	}

	updated := patch.Apply(*booking)
	if err := h.Bookings.Update(ctx, &updated); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/bookings/:id and returns the removed booking.
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	booking, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		return writeError(c, err)
	}
	if err := authz.CanMutateBooking(principal(c), booking); err != nil {
		return writeError(c, err)
	}
	if err := h.Bookings.Delete(ctx, id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, booking)
}

// publishBookingCreated pushes the broker notification for a fresh
// booking. Runs in its own goroutine with a bounded context; a broker
// outage costs only the log line, never the booking.
func publishBookingCreated(b model.Booking, f *model.Facility) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ev := queue.BookingCreatedEvent{
		EventID:      uuid.NewString(),
		BookingID:    b.ID,
		UserID:       b.UserID,
		FacilityID:   b.FacilityID,
		FacilityName: f.Description,
		StartTime:    b.StartTime.UTC().Format(time.RFC3339),
		EndTime:      b.EndTime.UTC().Format(time.RFC3339),
		CreatedAt:    b.CreatedAt.UTC().Format(time.RFC3339),
	}
	if err := queuepub.PublishBookingCreated(ctx, ev); err != nil {
		log.Printf("booking %d: publish booking.created failed: %v", b.ID, err)
	}
}
