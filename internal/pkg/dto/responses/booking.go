package responses

import (
	"time"

	"clinicbook-service/internal/app/models"
)

type BookingReference struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Booking is the populated booking detail: reference IDs resolved to names the
// way the admin dashboard expects.
type Booking struct {
	ID                   string                `json:"id"`
	Patient              BookingReference      `json:"patient"`
	Doctor               BookingReference      `json:"doctor"`
	Clinic               BookingReference      `json:"clinic"`
	Treatment            BookingReference      `json:"treatment"`
	PaymentID            string                `json:"paymentId,omitempty"`
	NoOfSessionBook      int                   `json:"no_of_session_book"`
	SessionStatus        models.BookingStatus  `json:"session_status"`
	SessionDates         []models.Session      `json:"sessionDates"`
	SessionPrescriptions []models.Prescription `json:"session_prescriptions"`
	CancellationReason   string                `json:"cancellationReason,omitempty"`
	CreatedAt            time.Time             `json:"createdAt"`
	UpdatedAt            time.Time             `json:"updatedAt"`
}
