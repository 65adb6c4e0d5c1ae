package medications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"barabom/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/medications", func(mr chi.Router) {
		mr.Post("/", createHandler(svc))
		mr.Get("/", listHandler(svc))
		mr.Post("/{medicationID}/complete", completeHandler(svc))
	})
}

type createMedicationRequest struct {
	Time            string   `json:"time"`
	Timing          string   `json:"timing"`
	Dosage          string   `json:"dosage"`
	MedicationName  string   `json:"medication_name"`
	MedicationPhoto string   `json:"medication_photo"`
	Instructions    string   `json:"instructions"`
	SpecialNotes    string   `json:"special_notes"`
	AssignedTo      string   `json:"assigned_to"`
	Date            string   `json:"date"`
	Priority        Priority `json:"priority"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createMedicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.Add(r.Context(), CreateInput{
			Time:            req.Time,
			Timing:          req.Timing,
			Dosage:          req.Dosage,
			MedicationName:  req.MedicationName,
			MedicationPhoto: req.MedicationPhoto,
			Instructions:    req.Instructions,
			SpecialNotes:    req.SpecialNotes,
			RequestedBy:     claims.Name,
			AssignedTo:      req.AssignedTo,
			Date:            req.Date,
			Priority:        req.Priority,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "medication name required", http.StatusBadRequest)
			case errors.Is(err, ErrNoPet):
				http.Error(w, "no pet configured", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, m)
	}
}

// listHandler filters by ?status=pending|completed or ?date=YYYY-MM-DD;
// without either it returns the full list.
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var (
			items []Request
			err   error
		)
		switch status := strings.TrimSpace(r.URL.Query().Get("status")); status {
		case "pending":
			items, err = svc.Pending(ctx)
		case "completed":
			items, err = svc.Completed(ctx)
		case "":
			if date := strings.TrimSpace(r.URL.Query().Get("date")); date != "" {
				items, err = svc.ByDate(ctx, date)
			} else {
				items, err = svc.List(ctx)
			}
		default:
			http.Error(w, "unknown status filter", http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

type completeMedicationRequest struct {
	Photo       string `json:"photo"`
	Note        string `json:"note"`
	CompletedBy string `json:"completed_by"`
}

func completeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req completeMedicationRequest
		if r.Body != nil {
			// Empty body is fine, every completion field has a default.
			_ = json.NewDecoder(r.Body).Decode(&req)
		}

		m, err := svc.Complete(r.Context(), chi.URLParam(r, "medicationID"), CompletionInput{
			Photo:       req.Photo,
			Note:        req.Note,
			CompletedBy: req.CompletedBy,
		})
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "medication not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, m)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
