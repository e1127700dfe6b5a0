package models

import "time"

// SessionStatus is the per-visit lifecycle state. It is a closed enum; every
// mutation must pass the transition table below.
type SessionStatus string

const (
	SessionPending     SessionStatus = "Pending"
	SessionConfirmed   SessionStatus = "Confirmed"
	SessionCompleted   SessionStatus = "Completed"
	SessionCancelled   SessionStatus = "Cancelled"
	SessionRescheduled SessionStatus = "Rescheduled"
	SessionNoShow      SessionStatus = "No-Show"
)

// BookingStatus is the aggregate status summarizing all sessions of a booking.
type BookingStatus string

const (
	BookingPending            BookingStatus = "Pending"
	BookingConfirmed          BookingStatus = "Confirmed"
	BookingCompleted          BookingStatus = "Completed"
	BookingCancelled          BookingStatus = "Cancelled"
	BookingRescheduled        BookingStatus = "Rescheduled"
	BookingPartiallyCompleted BookingStatus = "Partially Completed"
)

// sessionStatusTransitions is the authoritative from-state -> allowed-to-states
// table. Completed, Cancelled and No-Show are terminal. A session may be
// rescheduled repeatedly.
var sessionStatusTransitions = map[SessionStatus]map[SessionStatus]bool{
	SessionPending: {
		SessionConfirmed:   true,
		SessionRescheduled: true,
		SessionCompleted:   true,
		SessionCancelled:   true,
		SessionNoShow:      true,
	},
	SessionConfirmed: {
		SessionRescheduled: true,
		SessionCompleted:   true,
		SessionCancelled:   true,
		SessionNoShow:      true,
	},
	SessionRescheduled: {
		SessionRescheduled: true,
		SessionCompleted:   true,
		SessionCancelled:   true,
		SessionNoShow:      true,
	},
	SessionCompleted: {},
	SessionCancelled: {},
	SessionNoShow:    {},
}

func ParseSessionStatus(raw string) (SessionStatus, bool) {
	status := SessionStatus(raw)
	_, known := sessionStatusTransitions[status]
	return status, known
}

func (s SessionStatus) CanTransitionTo(next SessionStatus) bool {
	allowed, ok := sessionStatusTransitions[s]
	if !ok {
		return false
	}
	return allowed[next]
}

func (s SessionStatus) IsTerminal() bool {
	allowed, ok := sessionStatusTransitions[s]
	return ok && len(allowed) == 0
}

// PrescriptionType classifies a prescription file attached to a session.
type PrescriptionType string

const (
	PrescriptionPreTreatment  PrescriptionType = "Pre-Treatment"
	PrescriptionPostTreatment PrescriptionType = "Post-Treatment"
	PrescriptionFollowUp      PrescriptionType = "Follow-up"
	PrescriptionEmergency     PrescriptionType = "Emergency"
)

// Session is one scheduled visit within a booking. Sessions are never removed,
// only status-transitioned.
type Session struct {
	SessionNumber int           `json:"sessionNumber" bson:"sessionNumber"`
	Date          string        `json:"date" bson:"date"`
	Time          string        `json:"time" bson:"time"`
	Status        SessionStatus `json:"status" bson:"status"`
	Reason        string        `json:"reason,omitempty" bson:"reason,omitempty"`
}

// Prescription is a file attached to a completed session. ObjectName is the
// storage key used to delete the file when the record is overwritten.
type Prescription struct {
	SessionNumber    int              `json:"sessionNumber" bson:"sessionNumber"`
	PrescriptionType PrescriptionType `json:"prescriptionType" bson:"prescriptionType"`
	URL              string           `json:"url" bson:"url"`
	ObjectName       string           `json:"objectName" bson:"objectName"`
	UploadedAt       time.Time        `json:"uploadedAt" bson:"uploadedAt"`
}

// Booking is one patient's purchase of NoOfSessionBook treatment sessions for a
// treatment at a clinic with a doctor. Reference fields hold hex ObjectIDs.
type Booking struct {
	ID                   string         `json:"id" bson:"_id,omitempty"`
	UserID               string         `json:"userId" bson:"userId"`
	ClinicID             string         `json:"clinicId" bson:"clinicId"`
	DoctorID             string         `json:"doctorId" bson:"doctorId"`
	TreatmentID          string         `json:"treatmentId" bson:"treatmentId"`
	PaymentID            string         `json:"paymentId,omitempty" bson:"paymentId,omitempty"`
	NoOfSessionBook      int            `json:"noOfSessionBook" bson:"noOfSessionBook"`
	SessionStatus        BookingStatus  `json:"sessionStatus" bson:"sessionStatus"`
	SessionDates         []Session      `json:"sessionDates" bson:"sessionDates"`
	SessionPrescriptions []Prescription `json:"sessionPrescriptions" bson:"sessionPrescriptions"`
	CancellationReason   string         `json:"cancellationReason,omitempty" bson:"cancellationReason,omitempty"`
	TimeModel            `bson:",inline"`
}

// IsTerminal reports whether the aggregate status permits no further session
// mutations.
func (b *Booking) IsTerminal() bool {
	return b.SessionStatus == BookingCompleted || b.SessionStatus == BookingCancelled
}

func (b *Booking) SessionByNumber(number int) *Session {
	for i := range b.SessionDates {
		if b.SessionDates[i].SessionNumber == number {
			return &b.SessionDates[i]
		}
	}
	return nil
}

func (b *Booking) PrescriptionBySession(number int) *Prescription {
	for i := range b.SessionPrescriptions {
		if b.SessionPrescriptions[i].SessionNumber == number {
			return &b.SessionPrescriptions[i]
		}
	}
	return nil
}

func (b *Booking) SessionLimitReached() bool {
	return len(b.SessionDates) >= b.NoOfSessionBook
}

func (b *Booking) PrescriptionLimitReached() bool {
	return len(b.SessionPrescriptions) >= b.NoOfSessionBook
}

// PreviousSessionCompleted reports whether the latest session, if any, has been
// completed. The first session needs no predecessor.
func (b *Booking) PreviousSessionCompleted() bool {
	if len(b.SessionDates) == 0 {
		return true
	}
	return b.SessionDates[len(b.SessionDates)-1].Status == SessionCompleted
}

// AppendSession appends the next sequential session as Pending and returns it.
// Callers must have checked SessionLimitReached and PreviousSessionCompleted.
func (b *Booking) AppendSession(date, timeOfDay string) Session {
	session := Session{
		SessionNumber: len(b.SessionDates) + 1,
		Date:          date,
		Time:          timeOfDay,
		Status:        SessionPending,
	}
	b.SessionDates = append(b.SessionDates, session)
	return session
}

// UpsertPrescription replaces the prescription for its session number if one
// exists, otherwise appends. It returns the storage object name of the replaced
// record so the caller can delete the old file, and whether a replace happened.
func (b *Booking) UpsertPrescription(prescription Prescription) (string, bool) {
	for i := range b.SessionPrescriptions {
		if b.SessionPrescriptions[i].SessionNumber == prescription.SessionNumber {
			oldObjectName := b.SessionPrescriptions[i].ObjectName
			b.SessionPrescriptions[i] = prescription
			return oldObjectName, true
		}
	}
	b.SessionPrescriptions = append(b.SessionPrescriptions, prescription)
	return "", false
}

// RecomputeSessionStatus derives the aggregate status from per-session statuses.
// Aggregate Cancelled is never derived here; it is only set by booking-level
// cancellation.
func (b *Booking) RecomputeSessionStatus() {
	if b.SessionStatus == BookingCancelled {
		return
	}

	completed := 0
	anyRescheduled := false
	anyConfirmed := false
	for _, session := range b.SessionDates {
		switch session.Status {
		case SessionCompleted:
			completed++
		case SessionRescheduled:
			anyRescheduled = true
		case SessionConfirmed:
			anyConfirmed = true
		}
	}

	switch {
	case completed >= b.NoOfSessionBook:
		b.SessionStatus = BookingCompleted
	case completed > 0:
		b.SessionStatus = BookingPartiallyCompleted
	case anyRescheduled:
		b.SessionStatus = BookingRescheduled
	case anyConfirmed:
		b.SessionStatus = BookingConfirmed
	default:
		b.SessionStatus = BookingPending
	}
}

// CancelRemainingSessions cancels every non-terminal session with the given
// reason and marks the aggregate Cancelled.
func (b *Booking) CancelRemainingSessions(reason string) {
	for i := range b.SessionDates {
		if !b.SessionDates[i].Status.IsTerminal() {
			b.SessionDates[i].Status = SessionCancelled
			b.SessionDates[i].Reason = reason
		}
	}
	b.SessionStatus = BookingCancelled
	b.CancellationReason = reason
}
