package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAllowWithinBudget(t *testing.T) {
	l := New(3)
	defer l.Stop()

	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Fatal("fourth request should be rejected")
	}
}

func TestClientsAreIndependent(t *testing.T) {
	l := New(1)
	defer l.Stop()

	if !l.Allow("10.0.0.1") {
		t.Fatal("first client should be allowed")
	}
	if !l.Allow("10.0.0.2") {
		t.Fatal("second client should be allowed")
	}
	if l.Allow("10.0.0.1") {
		t.Fatal("first client should be over budget")
	}
}

func TestWindowResetsAfterAMinute(t *testing.T) {
	l := New(1)
	defer l.Stop()
	current := time.Now()
	l.now = func() time.Time { return current }

	if !l.Allow("10.0.0.1") {
		t.Fatal("first request should be allowed")
	}
	if l.Allow("10.0.0.1") {
		t.Fatal("second request should be rejected")
	}
	current = current.Add(61 * time.Second)
	if !l.Allow("10.0.0.1") {
		t.Fatal("request in fresh window should be allowed")
	}
}

func TestMiddlewareRejectsWith429(t *testing.T) {
	l := New(1)
	defer l.Stop()

	handler := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/homepage", nil)
	req.RemoteAddr = "10.0.0.1:40000"

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, req)
	if first.Code != http.StatusOK {
		t.Fatalf("first request: status %d", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: status %d", second.Code)
	}
	if second.Header().Get("Retry-After") != "60" {
		t.Fatalf("missing Retry-After header")
	}
}

func TestForwardedForTakesPrecedence(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:40000"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := clientAddr(req); got != "203.0.113.7" {
		t.Fatalf("clientAddr = %q", got)
	}
}
