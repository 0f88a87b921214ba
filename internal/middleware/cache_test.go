package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/residence-hall-booking/internal/config"
)

func cacheCtx(e *echo.Echo, target, routeTemplate string, paramValue string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(routeTemplate)
	if paramValue != "" {
		c.SetParamNames("id")
		c.SetParamValues(paramValue)
	}
	return c
}

// Two requests that match the same parameterized route must never share a
// cache entry; serving facility 1's body for facility 2 would be a data
// leak, not staleness.
func TestCacheKeyDistinguishesParamValues(t *testing.T) {
	e := echo.New()
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}

	k1 := cacheKeyFrom(cfg, cacheCtx(e, "/v1/facilities/1", "/v1/facilities/:id", "1"))
	k2 := cacheKeyFrom(cfg, cacheCtx(e, "/v1/facilities/2", "/v1/facilities/:id", "2"))
	if k1 == k2 {
		t.Fatalf("different ids must yield different keys, both got %s", k1)
	}
}

func TestCacheKeyStableForSameRequest(t *testing.T) {
	e := echo.New()
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}

	k1 := cacheKeyFrom(cfg, cacheCtx(e, "/v1/events/5", "/v1/events/:id", "5"))
	k2 := cacheKeyFrom(cfg, cacheCtx(e, "/v1/events/5", "/v1/events/:id", "5"))
	if k1 != k2 {
		t.Fatalf("identical requests must share a key, got %s and %s", k1, k2)
	}
}

func TestCacheKeyDistinguishesQueries(t *testing.T) {
	e := echo.New()
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}

	k1 := cacheKeyFrom(cfg, cacheCtx(e, "/v1/bookings?facility=1", "/v1/bookings", ""))
	k2 := cacheKeyFrom(cfg, cacheCtx(e, "/v1/bookings?facility=2", "/v1/bookings", ""))
	if k1 == k2 {
		t.Fatalf("different queries must yield different keys, both got %s", k1)
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": []string{"application/json"}}
	body := []byte(`{"id":1}`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	status, gotHdr, gotBody, ok := decodePayload(bs)
	if !ok {
		t.Fatal("decode reported malformed payload")
	}
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d", status)
	}
	if got := gotHdr.Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type to survive, got %q", got)
	}
	if string(gotBody) != string(body) {
		t.Fatalf("expected body %s, got %s", body, gotBody)
	}
}

func TestDecodePayloadRejectsGarbage(t *testing.T) {
	for _, bs := range [][]byte{nil, {1, 2, 3}} {
		if _, _, _, ok := decodePayload(bs); ok {
			t.Fatalf("expected short payload %v to be rejected", bs)
		}
	}
	// header length pointing past the buffer
	bad, _ := encodePayload(http.StatusOK, http.Header{}, nil)
	bad[7] = 0xFF
	if _, _, _, ok := decodePayload(bad); ok {
		t.Fatal("expected oversized header length to be rejected")
	}
}
