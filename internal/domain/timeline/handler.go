package timeline

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"barabom/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/timeline", func(tr chi.Router) {
		tr.Post("/", createRecordHandler(svc))
		tr.Get("/", listRecordsHandler(svc))
		tr.Delete("/{recordID}", deleteRecordHandler(svc))
	})
}

type createRecordRequest struct {
	Type       RecordType `json:"type"`
	Content    string     `json:"content"`
	Date       string     `json:"date"`
	Time       string     `json:"time"`
	Author     string     `json:"author"`
	AuthorKind AuthorKind `json:"author_kind"`
	Photos     []string   `json:"photos"`
}

func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		author := req.Author
		if strings.TrimSpace(author) == "" {
			author = claims.Name
		}

		rec, err := svc.Add(r.Context(), CreateInput{
			Type:       req.Type,
			Content:    req.Content,
			Date:       req.Date,
			Time:       req.Time,
			Author:     author,
			AuthorKind: req.AuthorKind,
			Photos:     req.Photos,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "record type required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, rec)
	}
}

// listRecordsHandler serves both shapes of timeline reads:
// ?date=YYYY-MM-DD for one calendar day, otherwise ?limit=N recent records.
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if date := strings.TrimSpace(r.URL.Query().Get("date")); date != "" {
			items, err := svc.RecordsByDate(r.Context(), date)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, items)
			return
		}

		limit := 5
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}

		items, err := svc.Recent(r.Context(), limit)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id := chi.URLParam(r, "recordID")
		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "record not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "record id required", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
