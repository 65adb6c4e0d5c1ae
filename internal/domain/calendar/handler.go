package calendar

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, ix *Index) {
	r.Route("/calendar", func(cr chi.Router) {
		cr.Get("/dates", listDatesHandler(ix))
		cr.Get("/{date}", eventsByDateHandler(ix))
	})
}

func listDatesHandler(ix *Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ix.Dates())
	}
}

func eventsByDateHandler(ix *Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := strings.TrimSpace(chi.URLParam(r, "date"))
		if date == "" {
			http.Error(w, "date required", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, ix.EventsByDate(date))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
