package server

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

func TestRateLimitMiddleware(t *testing.T) {
	guard := NewClientGuard(nil)
	now := fakeClock(guard)
	handler := RateLimitMiddleware(guard)(okHandler())

	send := func(path, ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	for i := range RequestBurst {
		if rec := send("/api/v1/items", "192.168.1.100"); rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	rec := send("/api/v1/items", "192.168.1.100")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 Too Many Requests, got %d", rec.Code)
	}
	if rec.Header().Get(HeaderRetryAfter) != "1" {
		t.Errorf("expected Retry-After 1, got %q", rec.Header().Get(HeaderRetryAfter))
	}

	if rec := send("/healthz", "192.168.1.100"); rec.Code != http.StatusOK {
		t.Errorf("probes must not be throttled, got %d", rec.Code)
	}
	if rec := send("/api/v1/items", "192.168.1.101"); rec.Code != http.StatusOK {
		t.Errorf("other clients keep their own budget, got %d", rec.Code)
	}

	*now = now.Add(time.Second)
	for i := range RequestsPerSecond {
		if rec := send("/api/v1/items", "192.168.1.100"); rec.Code != http.StatusOK {
			t.Fatalf("refilled request %d failed with status %d", i, rec.Code)
		}
	}
	if rec := send("/api/v1/items", "192.168.1.100"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected refill of %d tokens only, got %d", RequestsPerSecond, rec.Code)
	}
}

func TestClientGuard_DropsIdleClients(t *testing.T) {
	guard := NewClientGuard(nil)
	now := fakeClock(guard)

	for i := range MaxTrackedClients {
		guard.Allow("10.0." + strconv.Itoa(i/256) + "." + strconv.Itoa(i%256))
	}
	guard.FailedAuth("10.0.0.1")

	*now = now.Add(LockoutWindow + time.Second)
	guard.Allow("172.16.0.1")

	guard.mu.Lock()
	tracked := len(guard.clients)
	guard.mu.Unlock()
	if tracked != 1 {
		t.Errorf("expected idle clients to be dropped, %d still tracked", tracked)
	}
}
