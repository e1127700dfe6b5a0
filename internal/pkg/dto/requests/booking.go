package requests

// CreateBookingRequest is the public booking-creation payload. The payment
// fields reference an already-settled payment; gateway checkout happens outside
// this service.
type CreateBookingRequest struct {
	DoctorID         string  `json:"doctorId" validate:"required"`
	ClinicID         string  `json:"clinicId" validate:"required"`
	TreatmentID      string  `json:"treatmentId" validate:"required"`
	NoOfSessionBook  int     `json:"no_of_session_book" validate:"required,gte=1,lte=50"`
	Amount           float64 `json:"amount" validate:"gte=0"`
	PaymentMethod    string  `json:"payment_method,omitempty"`
	PaymentReference string  `json:"payment_reference,omitempty"`
}

// ChangeSessionInformationRequest mirrors the admin session-transition body.
// Status selects complete/cancel; IsReschedule selects reschedule regardless of
// Status.
type ChangeSessionInformationRequest struct {
	ID            string `json:"_id" validate:"required"`
	SessionNumber int    `json:"sessionNumber" validate:"required,gte=1"`
	Status        string `json:"status" validate:"omitempty,oneof=Pending Confirmed Completed Cancelled Rescheduled No-Show"`
	IsReschedule  bool   `json:"isReschedule,omitempty"`
	NewDate       string `json:"new_date,omitempty" validate:"omitempty,session_date"`
	NewTime       string `json:"new_time,omitempty" validate:"omitempty,session_time"`
	Reason        string `json:"reason,omitempty"`
}

type AddNextSessionRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
	NewDate   string `json:"new_date" validate:"required,session_date"`
	NewTime   string `json:"new_time" validate:"required,session_time"`
}

// UpsertSessionPrescriptionRequest carries the multipart form fields; the file
// itself travels beside it as a multipart.File in the usecase input.
type UpsertSessionPrescriptionRequest struct {
	ID               string `json:"_id" validate:"required"`
	SessionNumber    int    `json:"sessionNumber" validate:"required,gte=1"`
	PrescriptionType string `json:"prescriptionType" validate:"required,oneof=Pre-Treatment Post-Treatment Follow-up Emergency"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}
