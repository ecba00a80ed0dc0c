package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/spidergroupcm/renthox-car-rent-server/internal/config"
)

func TestCachePayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}}
	body := []byte(`[{"carModel":"Honda Civic"}]`)

	payload, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}
	status, gotHdr, gotBody, ok := decodePayload(payload)
	if !ok {
		t.Fatalf("decodePayload rejected its own encoding")
	}
	if status != http.StatusOK {
		t.Fatalf("status mismatch: %d", status)
	}
	if gotHdr.Get("Content-Type") != "application/json" {
		t.Fatalf("header mismatch: %#v", gotHdr)
	}
	if string(gotBody) != string(body) {
		t.Fatalf("body mismatch: %q", gotBody)
	}
}

func TestDecodePayloadRejectsTruncated(t *testing.T) {
	if _, _, _, ok := decodePayload([]byte{1, 2, 3}); ok {
		t.Fatalf("expected short payload to be rejected")
	}
}

func TestCacheKeyVariesByQuery(t *testing.T) {
	e := echo.New()
	ctxFor := func(target string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath("/cars")
		return c
	}
	k1 := cacheKey("cars", ctxFor("/cars?search=civic"))
	k2 := cacheKey("cars", ctxFor("/cars?search=tesla"))
	k3 := cacheKey("cars", ctxFor("/cars?search=civic"))
	if k1 == k2 {
		t.Fatalf("different queries must not share a key")
	}
	if k1 != k3 {
		t.Fatalf("identical requests must share a key: %q vs %q", k1, k3)
	}
}

func TestNewRedisCachePassThroughWhenDisabled(t *testing.T) {
	mw := NewRedisCache(config.CacheConfig{Enabled: false}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cars", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := mw(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("pass-through broken: %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Cache") != "" {
		t.Fatalf("disabled cache must not set X-Cache")
	}
}
