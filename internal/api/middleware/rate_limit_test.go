package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	now := time.Unix(1700000000, 0)
	rl := NewRateLimiter(nil)
	rl.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		if !rl.Allow("k", 3) {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("k", 3) {
		t.Error("fourth request should be rejected")
	}

	// 3 per minute refills one token every 20 seconds
	now = now.Add(21 * time.Second)
	if !rl.Allow("k", 3) {
		t.Error("expected a refilled token")
	}

	if !rl.Allow("other", 3) {
		t.Error("keys must not share buckets")
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	now := time.Unix(1700000000, 0)
	rl := NewRateLimiter(nil)
	rl.now = func() time.Time { return now }

	rl.Allow("k", 1)
	now = now.Add(11 * time.Minute)
	rl.cleanup()

	if _, ok := rl.store.Load("k"); ok {
		t.Error("expected idle bucket to be removed")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(map[string]int{LimitExport: 1})
	handler := rl.Handle(LimitExport)(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/qr/download", nil)
	req.RemoteAddr = "203.0.113.7:4321"

	rr := httptest.NewRecorder()
	handler(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("first request: got %d, want %d", rr.Code, http.StatusOK)
	}

	rr = httptest.NewRecorder()
	handler(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("second request: got %d, want %d", rr.Code, http.StatusTooManyRequests)
	}
	if rr.Header().Get("Retry-After") != "60" {
		t.Error("expected Retry-After header")
	}
}
