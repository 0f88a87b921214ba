package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/residence-hall-booking/internal/model"
	"github.com/iliyamo/residence-hall-booking/internal/repository"
)

type eventStoreFake struct {
	nextID uint64
	events map[uint64]model.Event
}

func newEventStoreFake(seed ...model.Event) *eventStoreFake {
	f := &eventStoreFake{events: map[uint64]model.Event{}}
	for _, ev := range seed {
		f.events[ev.ID] = ev
		if ev.ID > f.nextID {
			f.nextID = ev.ID
		}
	}
	return f
}

func (f *eventStoreFake) Create(_ context.Context, e *model.Event) error {
	f.nextID++
	e.ID = f.nextID
	f.events[e.ID] = *e
	return nil
}

func (f *eventStoreFake) GetByID(_ context.Context, id uint64) (*model.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	return &e, nil
}

func (f *eventStoreFake) List(_ context.Context) ([]model.Event, error) {
	out := make([]model.Event, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e)
	}
	return out, nil
}

func (f *eventStoreFake) Update(_ context.Context, e *model.Event) error {
	if _, ok := f.events[e.ID]; !ok {
		return repository.ErrEventNotFound
	}
	f.events[e.ID] = *e
	return nil
}

func (f *eventStoreFake) Delete(_ context.Context, id uint64) error {
	if _, ok := f.events[id]; !ok {
		return repository.ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}

var eventStart = time.Date(2025, time.May, 10, 18, 0, 0, 0, time.UTC)

func eventTestHandler() (*EventHandler, *eventStoreFake) {
	store := newEventStoreFake(model.Event{
		ID:           1,
		Location:     "Upper Lounge",
		StartTime:    eventStart,
		EndTime:      eventStart.Add(2 * time.Hour),
		Description:  "Board games night",
		SignUpLink:   "https://forms.invalid/games",
		OrganiserIDs: []uint64{1, 3},
	})
	return NewEventHandler(store, newBookingStoreFake()), store
}

// An unknown event id reports 404 before any organiser check: strangers
// and organisers alike get the same answer for ids that are not there.
func TestEventUpdateUnknownIDIsNotFound(t *testing.T) {
	h, _ := eventTestHandler()
	e := echo.New()

	for _, caller := range []uint64{0, 2} {
		c, rec := mutateCtx(e, http.MethodPatch, "/v1/events/999", "999", "", caller)
		if err := h.Update(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusNotFound {
			t.Fatalf("caller %d: expected 404 for unknown event, got %d", caller, rec.Code)
		}
	}
}

func TestEventUpdateByNonOrganiserIsForbidden(t *testing.T) {
	h, store := eventTestHandler()
	e := echo.New()

	c, rec := mutateCtx(e, http.MethodPatch, "/v1/events/1", "1",
		`{"location":"Gym"}`, 2)
	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-organiser, got %d", rec.Code)
	}
	if store.events[1].Location != "Upper Lounge" {
		t.Fatal("forbidden update must not persist")
	}
}

// Any member of the organiser set may mutate, not only the creator.
func TestEventUpdateByCoOrganiser(t *testing.T) {
	h, store := eventTestHandler()
	e := echo.New()

	c, rec := mutateCtx(e, http.MethodPatch, "/v1/events/1", "1",
		`{"description":"Board games night, bring snacks"}`, 3)
	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got model.Event
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Description != "Board games night, bring snacks" {
		t.Fatalf("expected patched description, got %q", got.Description)
	}
	if got.Location != "Upper Lounge" || len(got.OrganiserIDs) != 2 {
		t.Fatalf("omitted fields and organiser set must survive: %+v", got)
	}
	if store.events[1].Description != got.Description {
		t.Fatal("expected store to hold the patched event")
	}
}

func TestEventDeleteOrdering(t *testing.T) {
	h, store := eventTestHandler()
	e := echo.New()

	t.Run("unknown id is 404 even for strangers", func(t *testing.T) {
		c, rec := mutateCtx(e, http.MethodDelete, "/v1/events/999", "999", "", 2)
		if err := h.Delete(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("non-organiser delete is 403 and survives", func(t *testing.T) {
		c, rec := mutateCtx(e, http.MethodDelete, "/v1/events/1", "1", "", 2)
		if err := h.Delete(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		if _, ok := store.events[1]; !ok {
			t.Fatal("forbidden delete must not remove the event")
		}
	})

	t.Run("organiser delete returns the removed event", func(t *testing.T) {
		c, rec := mutateCtx(e, http.MethodDelete, "/v1/events/1", "1", "", 3)
		if err := h.Delete(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if _, ok := store.events[1]; ok {
			t.Fatal("expected event to be removed")
		}
	})
}
