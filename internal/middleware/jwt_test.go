package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/residence-hall-booking/internal/utils"
)

const testSecret = "unit-test-secret"

func protectedEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	g := e.Group("/v1")
	g.Use(JWTAuth(testSecret))
	g.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"user_id": c.Get("user_id"), "role": c.Get("role")})
	})
	return e
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	e := protectedEcho(t)

	at, err := utils.NewAccessToken(testSecret, 7, "MEMBER", 5)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	req.Header.Set("Authorization", "Bearer "+at.Token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestJWTAuthRejects(t *testing.T) {
	e := protectedEcho(t)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	e := protectedEcho(t)

	at, err := utils.NewAccessToken("some-other-secret", 7, "MEMBER", 5)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	req.Header.Set("Authorization", "Bearer "+at.Token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
