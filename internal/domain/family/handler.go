package family

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/family", func(fr chi.Router) {
		fr.Get("/", getFamilyHandler(svc))
		fr.Get("/members", listMembersHandler(svc))
		fr.Get("/professionals", listProfessionalsHandler(svc))
		fr.Get("/pets", listPetsHandler(svc))
		fr.Get("/pets/default", getDefaultPetHandler(svc))
	})

	r.Get("/professional/stats", getStatsHandler(svc))

	r.Get("/mode", getModeHandler(svc))
	r.Post("/mode/toggle", toggleModeHandler(svc))
}

func getFamilyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Family(r.Context()))
	}
}

func listMembersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Members(r.Context()))
	}
}

func listProfessionalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Professionals(r.Context()))
	}
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Pets(r.Context()))
	}
}

func getDefaultPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.DefaultPet(r.Context())
		if err != nil {
			http.Error(w, "no pet configured", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func getStatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Stats(r.Context()))
	}
}

func getModeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.Mode(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"mode": string(m)})
	}
}

func toggleModeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.ToggleMode(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"mode": string(m)})
	}
}

// writeJSON is duplicated across handler packages on purpose, to avoid
// extracting a shared helpers package too early.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
