// Package httpapi exposes the reporting operations over HTTP. Each
// request is handled as an independent, stateless unit; records and
// settings are read fresh per request.
package httpapi

import (
	"net/http"
	"time"

	"finview/internal/homepage"
	applog "finview/internal/log"
	"finview/internal/middleware/ratelimit"
	"finview/internal/report"
)

type Server struct {
	assembler *homepage.Assembler
	reports   *report.Service
	logger    *applog.Logger
}

// NewHandler builds the routed handler with request logging attached.
func NewHandler(assembler *homepage.Assembler, reports *report.Service, logger *applog.Logger) http.Handler {
	s := &Server{
		assembler: assembler,
		reports:   reports,
		logger:    logger.WithComponent(applog.ComponentHTTP),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/homepage", s.handleHomepage)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/reports/category", s.handleCategoryReport)

	return applog.Middleware(logger)(mux)
}

// NewServer wraps the handler in an http.Server with conservative
// timeouts. A nil limiter disables throttling.
func NewServer(addr string, assembler *homepage.Assembler, reports *report.Service, limiter *ratelimit.Limiter, logger *applog.Logger) *http.Server {
	handler := NewHandler(assembler, reports, logger)
	if limiter != nil {
		handler = limiter.Middleware(handler)
	}
	return &http.Server{
		Addr:           addr,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}
}
