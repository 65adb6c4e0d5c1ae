package facilities

import "time"

// FacilityType categorizes bookable businesses.
type FacilityType string

const (
	TypeDaycare  FacilityType = "daycare"
	TypeHotel    FacilityType = "hotel"
	TypeTraining FacilityType = "training"
)

// ServiceOption is one bookable service of a facility.
type ServiceOption struct {
	Name     string `json:"name"`
	Price    int    `json:"price"` // KRW
	Duration string `json:"duration"`
}

// Facility is a seeded demo business; there is no real facility search
// behind this.
type Facility struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           FacilityType    `json:"type"`
	Region         string          `json:"region"`
	District       string          `json:"district"`
	Address        string          `json:"address"`
	Phone          string          `json:"phone"`
	Rating         float64         `json:"rating"`
	ReviewCount    int             `json:"review_count"`
	Photo          string          `json:"photo"`
	Description    string          `json:"description"`
	Services       []ServiceOption `json:"services"`
	Amenities      []string        `json:"amenities"`
	Hours          string          `json:"hours"`
	AvailableTimes []string        `json:"available_times"`
}

// BookingStatus of a booking in the payment flow.
type BookingStatus string

const (
	BookingPendingPayment BookingStatus = "pending_payment"
	BookingConfirmed      BookingStatus = "confirmed"
)

// PaymentMethod names the simulated providers.
type PaymentMethod string

const (
	PayKakao PaymentMethod = "kakaopay"
	PayNaver PaymentMethod = "naverpay"
	PayCard  PaymentMethod = "card"
)

func ValidPaymentMethod(m PaymentMethod) bool {
	return m == PayKakao || m == PayNaver || m == PayCard
}

// Booking snapshots the facility and service at creation time. Bookings are
// process-local and never persisted.
type Booking struct {
	ID            string        `json:"id"`
	FacilityID    string        `json:"facility_id"`
	FacilityName  string        `json:"facility_name"`
	Date          string        `json:"date"` // YYYY-MM-DD
	Time          string        `json:"time"` // HH:MM slot
	Service       ServiceOption `json:"service"`
	Status        BookingStatus `json:"status"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
}
