package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/residence-hall-booking/internal/authz"
	"github.com/iliyamo/residence-hall-booking/internal/directory"
	"github.com/iliyamo/residence-hall-booking/internal/repository"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unauthenticated", authz.ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", authz.ErrForbidden, http.StatusForbidden},
		{"validation", fmt.Errorf("%w: endTime must be after startTime", authz.ErrValidation), http.StatusBadRequest},
		{"facility missing", repository.ErrFacilityNotFound, http.StatusNotFound},
		{"booking missing", repository.ErrBookingNotFound, http.StatusNotFound},
		{"event missing", repository.ErrEventNotFound, http.StatusNotFound},
		{"directory missing", directory.ErrNotFound, http.StatusNotFound},
		{"facility duplicate", repository.ErrFacilityExists, http.StatusConflict},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	e := echo.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			if err := writeError(c, tc.err); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestPrincipalFallsBackToAnonymous(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if got := principal(c); got != 0 {
		t.Fatalf("expected anonymous principal, got %d", got)
	}

	c.Set("user_id", uint64(12))
	if got := principal(c); got != 12 {
		t.Fatalf("expected principal 12, got %d", got)
	}
}

func TestPathID(t *testing.T) {
	e := echo.New()
	newCtx := func(raw string) echo.Context {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(raw)
		return c
	}

	if id, err := pathID(newCtx("42")); err != nil || id != 42 {
		t.Fatalf("expected 42, got %d (%v)", id, err)
	}
	for _, raw := range []string{"0", "-1", "abc", ""} {
		if _, err := pathID(newCtx(raw)); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}
