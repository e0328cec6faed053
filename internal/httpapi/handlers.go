package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"finview/internal/core"
	applog "finview/internal/log"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleHomepage(w http.ResponseWriter, r *http.Request) {
	text, err := s.assembler.Build(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSONText(w, text)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")
	if keyword == "" {
		http.Error(w, "missing q parameter", http.StatusBadRequest)
		return
	}
	text, err := s.reports.Search(r.Context(), keyword)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSONText(w, text)
}

func (s *Server) handleCategoryReport(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		http.Error(w, "missing category parameter", http.StatusBadRequest)
		return
	}
	text, err := s.reports.SpendingByCategory(r.Context(), category, r.URL.Query().Get("date"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSONText(w, text)
}

func writeJSONText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write([]byte(text))
}

// writeError maps domain error kinds onto HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrInvalidDateFormat), errors.Is(err, core.ErrInvalidPattern):
		status = http.StatusBadRequest
	case errors.Is(err, core.ErrSourceUnavailable), errors.Is(err, core.ErrExternalAPI):
		status = http.StatusBadGateway
	case errors.Is(err, core.ErrConfig):
		status = http.StatusInternalServerError
	}
	s.logger.Error("request failed", applog.FieldStatus, status, applog.FieldError, err.Error())
	http.Error(w, err.Error(), status)
}
