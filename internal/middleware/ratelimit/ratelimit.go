// Package ratelimit throttles HTTP clients with a fixed per-minute
// window keyed by client address.
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

type window struct {
	start    time.Time
	requests int
}

// Limiter tracks request counts per client. The counter resets one
// minute after a client's first request in the current window.
type Limiter struct {
	mu        sync.Mutex
	perMinute int
	clients   map[string]*window

	stop     chan struct{}
	stopOnce sync.Once

	now func() time.Time
}

func New(perMinute int) *Limiter {
	l := &Limiter{
		perMinute: perMinute,
		clients:   make(map[string]*window),
		stop:      make(chan struct{}),
		now:       time.Now,
	}
	go l.cleanupLoop(5 * time.Minute)
	return l
}

// Allow records a request for the client and reports whether it is
// within the per-minute budget.
func (l *Limiter) Allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.clients[client]
	if !ok || now.Sub(w.start) > time.Minute {
		l.clients[client] = &window{start: now, requests: 1}
		return true
	}
	w.requests++
	return w.requests <= l.perMinute
}

// Stop ends the background cleanup goroutine.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Middleware rejects over-limit requests with 429 before they reach
// the wrapped handler.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientAddr(r)) {
			w.Header().Set("Retry-After", "60")
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *Limiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.dropStale()
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) dropStale() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-10 * time.Minute)
	for client, w := range l.clients {
		if w.start.Before(cutoff) {
			delete(l.clients, client)
		}
	}
}

// clientAddr prefers the first X-Forwarded-For hop so limits hold
// behind a reverse proxy.
func clientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first, _, found := strings.Cut(fwd, ","); found || first != "" {
			return strings.TrimSpace(first)
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
