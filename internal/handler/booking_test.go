package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/residence-hall-booking/internal/model"
	"github.com/iliyamo/residence-hall-booking/internal/repository"
)

type bookingStoreFake struct {
	nextID   uint64
	bookings map[uint64]model.Booking
}

func newBookingStoreFake(seed ...model.Booking) *bookingStoreFake {
	f := &bookingStoreFake{bookings: map[uint64]model.Booking{}}
	for _, b := range seed {
		f.bookings[b.ID] = b
		if b.ID > f.nextID {
			f.nextID = b.ID
		}
	}
	return f
}

func (f *bookingStoreFake) Create(_ context.Context, b *model.Booking) error {
	f.nextID++
	b.ID = f.nextID
	f.bookings[b.ID] = *b
	return nil
}

func (f *bookingStoreFake) GetByID(_ context.Context, id uint64) (*model.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, repository.ErrBookingNotFound
	}
	return &b, nil
}

func (f *bookingStoreFake) List(_ context.Context) ([]model.Booking, error) {
	out := make([]model.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *bookingStoreFake) ListByFacility(_ context.Context, facilityID uint64) ([]model.Booking, error) {
	out := make([]model.Booking, 0)
	for _, b := range f.bookings {
		if b.FacilityID == facilityID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *bookingStoreFake) ListByUser(_ context.Context, userID uint64) ([]model.Booking, error) {
	out := make([]model.Booking, 0)
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *bookingStoreFake) Update(_ context.Context, b *model.Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return repository.ErrBookingNotFound
	}
	f.bookings[b.ID] = *b
	return nil
}

func (f *bookingStoreFake) Delete(_ context.Context, id uint64) error {
	if _, ok := f.bookings[id]; !ok {
		return repository.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

type facilityStoreFake struct {
	facilities map[uint64]model.Facility
}

func (f *facilityStoreFake) Create(_ context.Context, fac *model.Facility) error {
	f.facilities[fac.ID] = *fac
	return nil
}

func (f *facilityStoreFake) GetByID(_ context.Context, id uint64) (*model.Facility, error) {
	fac, ok := f.facilities[id]
	if !ok {
		return nil, repository.ErrFacilityNotFound
	}
	return &fac, nil
}

func (f *facilityStoreFake) List(_ context.Context) ([]model.Facility, error) {
	out := make([]model.Facility, 0, len(f.facilities))
	for _, fac := range f.facilities {
		out = append(out, fac)
	}
	return out, nil
}

func (f *facilityStoreFake) Delete(_ context.Context, id uint64) error {
	if _, ok := f.facilities[id]; !ok {
		return repository.ErrFacilityNotFound
	}
	delete(f.facilities, id)
	return nil
}

var bookingSlot = time.Date(2025, time.April, 1, 10, 0, 0, 0, time.UTC)

func bookingTestHandler() (*BookingHandler, *bookingStoreFake) {
	store := newBookingStoreFake(model.Booking{
		ID:         1,
		FacilityID: 1,
		UserID:     1,
		StartTime:  bookingSlot,
		EndTime:    bookingSlot.Add(time.Hour),
	})
	facilities := &facilityStoreFake{facilities: map[uint64]model.Facility{
		1: {ID: 1, Description: "Community Hall", OpeningHours: "08:00-22:00"},
	}}
	return NewBookingHandler(store, facilities), store
}

func mutateCtx(e *echo.Echo, method, path, id, body string, userID uint64) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	if userID != 0 {
		c.Set("user_id", userID)
	}
	return c, rec
}

// A mutation against a record that does not exist reports 404 no matter
// who asks: the caller learns nothing about ownership of ids that are not
// there.
func TestBookingUpdateUnknownIDIsNotFound(t *testing.T) {
	h, _ := bookingTestHandler()
	e := echo.New()

	for _, caller := range []uint64{0, 2} {
		c, rec := mutateCtx(e, http.MethodPatch, "/v1/bookings/999", "999", "", caller)
		if err := h.Update(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusNotFound {
			t.Fatalf("caller %d: expected 404 for unknown booking, got %d", caller, rec.Code)
		}
	}
}

func TestBookingUpdateForeignBookingIsForbidden(t *testing.T) {
	h, store := bookingTestHandler()
	e := echo.New()

	c, rec := mutateCtx(e, http.MethodPatch, "/v1/bookings/1", "1",
		`{"endTime":"2025-04-01T12:00:00Z"}`, 2)
	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign booking, got %d", rec.Code)
	}
	if got := store.bookings[1].EndTime; !got.Equal(bookingSlot.Add(time.Hour)) {
		t.Fatalf("forbidden update must not persist, end time now %v", got)
	}
}

func TestBookingUpdateByOwner(t *testing.T) {
	h, store := bookingTestHandler()
	e := echo.New()

	c, rec := mutateCtx(e, http.MethodPatch, "/v1/bookings/1", "1",
		`{"endTime":"2025-04-01T13:00:00Z"}`, 1)
	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got model.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := time.Date(2025, time.April, 1, 13, 0, 0, 0, time.UTC)
	if !got.EndTime.Equal(want) {
		t.Fatalf("expected patched end time %v, got %v", want, got.EndTime)
	}
	if got.UserID != 1 || got.StartTime.IsZero() {
		t.Fatalf("omitted fields must survive the patch: %+v", got)
	}
	if stored := store.bookings[1]; !stored.EndTime.Equal(want) {
		t.Fatalf("expected store to hold the patched booking, got %+v", stored)
	}
}

func TestBookingDeleteOrdering(t *testing.T) {
	h, store := bookingTestHandler()
	e := echo.New()

	t.Run("unknown id is 404 even for strangers", func(t *testing.T) {
		c, rec := mutateCtx(e, http.MethodDelete, "/v1/bookings/999", "999", "", 2)
		if err := h.Delete(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("foreign booking is 403 and survives", func(t *testing.T) {
		c, rec := mutateCtx(e, http.MethodDelete, "/v1/bookings/1", "1", "", 2)
		if err := h.Delete(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		if _, ok := store.bookings[1]; !ok {
			t.Fatal("forbidden delete must not remove the booking")
		}
	})

	t.Run("owner delete returns the removed booking", func(t *testing.T) {
		c, rec := mutateCtx(e, http.MethodDelete, "/v1/bookings/1", "1", "", 1)
		if err := h.Delete(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if _, ok := store.bookings[1]; ok {
			t.Fatal("expected booking to be removed")
		}
	})
}
