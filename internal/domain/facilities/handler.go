package facilities

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"barabom/internal/middleware"
)

var validate = validator.New()

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/facilities", func(fr chi.Router) {
		fr.Get("/regions", regionsHandler(svc))
		fr.Get("/", searchHandler(svc))
		fr.Get("/{facilityID}", getHandler(svc))
	})

	r.Route("/bookings", func(br chi.Router) {
		br.Post("/", createBookingHandler(svc))
		br.Get("/{bookingID}", getBookingHandler(svc))
		br.Post("/{bookingID}/pay", payHandler(svc))
	})
}

func regionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Regions(r.Context()))
	}
}

func searchHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items := svc.Search(r.Context(), q.Get("region"), q.Get("district"), FacilityType(q.Get("type")))
		writeJSON(w, http.StatusOK, items)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := svc.Get(r.Context(), chi.URLParam(r, "facilityID"))
		if err != nil {
			http.Error(w, "facility not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, f)
	}
}

type createBookingRequest struct {
	FacilityID   string `json:"facility_id" validate:"required"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string `json:"time" validate:"required,datetime=15:04"`
	ServiceIndex int    `json:"service_index" validate:"min=0"`
}

func createBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "invalid booking request", http.StatusBadRequest)
			return
		}

		b, err := svc.CreateBooking(r.Context(), BookingInput{
			FacilityID:   req.FacilityID,
			Date:         req.Date,
			Time:         req.Time,
			ServiceIndex: req.ServiceIndex,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "facility not found", http.StatusNotFound)
			case errors.Is(err, ErrSlotTaken):
				http.Error(w, "time slot unavailable", http.StatusConflict)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "invalid booking request", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, b)
	}
}

func getBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.Booking(r.Context(), chi.URLParam(r, "bookingID"))
		if err != nil {
			http.Error(w, "booking not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, b)
	}
}

type payRequest struct {
	Method PaymentMethod `json:"method" validate:"required"`
}

func payHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req payRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "payment method required", http.StatusBadRequest)
			return
		}

		b, err := svc.Pay(r.Context(), chi.URLParam(r, "bookingID"), req.Method)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "booking not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidMethod):
				http.Error(w, "unknown payment method", http.StatusBadRequest)
			case errors.Is(err, ErrAlreadyPaid):
				http.Error(w, "booking already paid", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, b)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
