package facilities

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"barabom/internal/domain/notifications"
	"barabom/internal/platform/logger"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrSlotTaken     = errors.New("time slot unavailable")
	ErrAlreadyPaid   = errors.New("booking already paid")
	ErrInvalidMethod = errors.New("unknown payment method")
)

// Notifier appends to the notification feed. Optional.
type Notifier interface {
	Add(ctx context.Context, message string, typ notifications.Type) (notifications.Notification, error)
}

// Service serves the seeded catalog and the booking/payment flow. Bookings
// live only in this process; restarting drops them, matching the demo
// nature of the whole flow.
type Service struct {
	catalog  []Facility
	regions  map[string][]string
	notifier Notifier // may be nil
	log      logger.Logger
	now      func() time.Time

	// payDelay simulates the payment provider round trip.
	payDelay time.Duration

	mu       sync.RWMutex
	bookings map[string]Booking
}

func NewService(notifier Notifier, payDelay time.Duration, log logger.Logger) *Service {
	return &Service{
		catalog:  Seed(),
		regions:  Regions(),
		notifier: notifier,
		log:      log,
		now:      time.Now,
		payDelay: payDelay,
		bookings: make(map[string]Booking),
	}
}

func (s *Service) Regions(ctx context.Context) map[string][]string {
	return s.regions
}

// Search filters the catalog; empty arguments match everything.
func (s *Service) Search(ctx context.Context, region, district string, ftype FacilityType) []Facility {
	out := make([]Facility, 0)
	for _, f := range s.catalog {
		if region != "" && f.Region != region {
			continue
		}
		if district != "" && f.District != district {
			continue
		}
		if ftype != "" && f.Type != ftype {
			continue
		}
		out = append(out, f)
	}
	return out
}

func (s *Service) Get(ctx context.Context, id string) (Facility, error) {
	for _, f := range s.catalog {
		if f.ID == id {
			return f, nil
		}
	}
	return Facility{}, ErrNotFound
}

type BookingInput struct {
	FacilityID   string
	Date         string
	Time         string
	ServiceIndex int
}

// CreateBooking validates the slot and service against the facility and
// parks the booking awaiting payment.
func (s *Service) CreateBooking(ctx context.Context, in BookingInput) (Booking, error) {
	if strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.Time) == "" {
		return Booking{}, ErrInvalidInput
	}

	f, err := s.Get(ctx, in.FacilityID)
	if err != nil {
		return Booking{}, err
	}
	if in.ServiceIndex < 0 || in.ServiceIndex >= len(f.Services) {
		return Booking{}, ErrInvalidInput
	}

	slotOK := false
	for _, t := range f.AvailableTimes {
		if t == in.Time {
			slotOK = true
			break
		}
	}
	if !slotOK {
		return Booking{}, ErrSlotTaken
	}

	b := Booking{
		ID:           uuid.NewString(),
		FacilityID:   f.ID,
		FacilityName: f.Name,
		Date:         in.Date,
		Time:         in.Time,
		Service:      f.Services[in.ServiceIndex],
		Status:       BookingPendingPayment,
		CreatedAt:    s.now(),
	}

	s.mu.Lock()
	s.bookings[b.ID] = b
	s.mu.Unlock()

	return b, nil
}

func (s *Service) Booking(ctx context.Context, id string) (Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return Booking{}, ErrNotFound
	}
	return b, nil
}

// Pay runs the simulated payment: a fixed provider delay, then the booking
// flips to confirmed and a success notification goes out. The delay honors
// ctx cancellation; an abandoned request leaves the booking pending.
func (s *Service) Pay(ctx context.Context, bookingID string, method PaymentMethod) (Booking, error) {
	if !ValidPaymentMethod(method) {
		return Booking{}, ErrInvalidMethod
	}

	s.mu.RLock()
	b, ok := s.bookings[bookingID]
	s.mu.RUnlock()
	if !ok {
		return Booking{}, ErrNotFound
	}
	if b.Status == BookingConfirmed {
		return Booking{}, ErrAlreadyPaid
	}

	if s.payDelay > 0 {
		select {
		case <-time.After(s.payDelay):
		case <-ctx.Done():
			return Booking{}, ctx.Err()
		}
	}

	now := s.now()
	b.Status = BookingConfirmed
	b.PaymentMethod = method
	b.PaidAt = &now

	s.mu.Lock()
	s.bookings[bookingID] = b
	s.mu.Unlock()

	if s.notifier != nil {
		msg := fmt.Sprintf("%s 예약이 완료되었습니다 (%s %s)", b.FacilityName, b.Date, b.Time)
		if _, err := s.notifier.Add(ctx, msg, notifications.TypeSuccess); err != nil {
			s.log.Warn("facilities: booking notification failed", map[string]any{"err": err.Error()})
		}
	}

	return b, nil
}
