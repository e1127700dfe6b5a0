package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionStatusCanTransitionTo(t *testing.T) {
	t.Run("Pending can move to every non-Pending status", func(t *testing.T) {
		for _, next := range []SessionStatus{SessionConfirmed, SessionRescheduled, SessionCompleted, SessionCancelled, SessionNoShow} {
			assert.True(t, SessionPending.CanTransitionTo(next), "Pending -> %s should be allowed", next)
		}
		assert.False(t, SessionPending.CanTransitionTo(SessionPending), "Pending -> Pending should be rejected")
	})

	t.Run("Confirmed cannot go back to Pending", func(t *testing.T) {
		assert.False(t, SessionConfirmed.CanTransitionTo(SessionPending))
		assert.True(t, SessionConfirmed.CanTransitionTo(SessionCompleted))
	})

	t.Run("Rescheduled may be rescheduled again", func(t *testing.T) {
		assert.True(t, SessionRescheduled.CanTransitionTo(SessionRescheduled))
		assert.False(t, SessionRescheduled.CanTransitionTo(SessionConfirmed), "Rescheduled -> Confirmed should be rejected")
	})

	t.Run("terminal statuses allow nothing", func(t *testing.T) {
		for _, terminal := range []SessionStatus{SessionCompleted, SessionCancelled, SessionNoShow} {
			assert.True(t, terminal.IsTerminal(), "%s should be terminal", terminal)
			for _, next := range []SessionStatus{SessionPending, SessionConfirmed, SessionCompleted, SessionCancelled, SessionRescheduled, SessionNoShow} {
				assert.False(t, terminal.CanTransitionTo(next), "%s -> %s should be rejected", terminal, next)
			}
		}
	})
}

func TestParseSessionStatus(t *testing.T) {
	status, known := ParseSessionStatus("No-Show")
	assert.True(t, known)
	assert.Equal(t, SessionNoShow, status)

	_, known = ParseSessionStatus("Done")
	assert.False(t, known, "unknown raw status should not parse")
}

func TestBookingIsTerminal(t *testing.T) {
	booking := &Booking{SessionStatus: BookingPartiallyCompleted}
	assert.False(t, booking.IsTerminal())

	booking.SessionStatus = BookingCompleted
	assert.True(t, booking.IsTerminal())

	booking.SessionStatus = BookingCancelled
	assert.True(t, booking.IsTerminal())
}

func TestPreviousSessionCompleted(t *testing.T) {
	booking := &Booking{NoOfSessionBook: 3}
	assert.True(t, booking.PreviousSessionCompleted(), "an empty session list needs no predecessor")

	booking.SessionDates = []Session{{SessionNumber: 1, Status: SessionConfirmed}}
	assert.False(t, booking.PreviousSessionCompleted())

	booking.SessionDates[0].Status = SessionCompleted
	assert.True(t, booking.PreviousSessionCompleted())
}

func TestAppendSession(t *testing.T) {
	booking := &Booking{NoOfSessionBook: 3}

	first := booking.AppendSession("2026-09-10", "09:00")
	assert.Equal(t, 1, first.SessionNumber)
	assert.Equal(t, SessionPending, first.Status)

	second := booking.AppendSession("2026-09-17", "09:00")
	assert.Equal(t, 2, second.SessionNumber)
	assert.Len(t, booking.SessionDates, 2)

	assert.False(t, booking.SessionLimitReached())
	booking.AppendSession("2026-09-24", "09:00")
	assert.True(t, booking.SessionLimitReached())
}

func TestUpsertPrescription(t *testing.T) {
	booking := &Booking{NoOfSessionBook: 2}

	old, replaced := booking.UpsertPrescription(Prescription{SessionNumber: 1, ObjectName: "prescriptions/a/session-1-x.pdf"})
	assert.False(t, replaced)
	assert.Empty(t, old)
	assert.Len(t, booking.SessionPrescriptions, 1)

	old, replaced = booking.UpsertPrescription(Prescription{SessionNumber: 1, ObjectName: "prescriptions/a/session-1-y.pdf"})
	assert.True(t, replaced, "same session number should replace, not append")
	assert.Equal(t, "prescriptions/a/session-1-x.pdf", old)
	assert.Len(t, booking.SessionPrescriptions, 1)
	assert.Equal(t, "prescriptions/a/session-1-y.pdf", booking.SessionPrescriptions[0].ObjectName)
}

func TestRecomputeSessionStatus(t *testing.T) {
	newBooking := func(statuses ...SessionStatus) *Booking {
		booking := &Booking{NoOfSessionBook: 3, SessionStatus: BookingPending}
		for i, status := range statuses {
			booking.SessionDates = append(booking.SessionDates, Session{SessionNumber: i + 1, Status: status})
		}
		return booking
	}

	t.Run("all sessions completed marks the booking Completed", func(t *testing.T) {
		booking := newBooking(SessionCompleted, SessionCompleted, SessionCompleted)
		booking.RecomputeSessionStatus()
		assert.Equal(t, BookingCompleted, booking.SessionStatus)
	})

	t.Run("some sessions completed marks the booking Partially Completed", func(t *testing.T) {
		booking := newBooking(SessionCompleted, SessionConfirmed)
		booking.RecomputeSessionStatus()
		assert.Equal(t, BookingPartiallyCompleted, booking.SessionStatus)
	})

	t.Run("a rescheduled session dominates confirmed", func(t *testing.T) {
		booking := newBooking(SessionRescheduled, SessionConfirmed)
		booking.RecomputeSessionStatus()
		assert.Equal(t, BookingRescheduled, booking.SessionStatus)
	})

	t.Run("a confirmed session marks the booking Confirmed", func(t *testing.T) {
		booking := newBooking(SessionConfirmed)
		booking.RecomputeSessionStatus()
		assert.Equal(t, BookingConfirmed, booking.SessionStatus)
	})

	t.Run("no signal leaves the booking Pending", func(t *testing.T) {
		booking := newBooking(SessionPending)
		booking.RecomputeSessionStatus()
		assert.Equal(t, BookingPending, booking.SessionStatus)
	})

	t.Run("a cancelled booking is never recomputed", func(t *testing.T) {
		booking := newBooking(SessionCompleted, SessionCompleted, SessionCompleted)
		booking.SessionStatus = BookingCancelled
		booking.RecomputeSessionStatus()
		assert.Equal(t, BookingCancelled, booking.SessionStatus)
	})
}

func TestCancelRemainingSessions(t *testing.T) {
	booking := &Booking{
		NoOfSessionBook: 3,
		SessionStatus:   BookingPartiallyCompleted,
		SessionDates: []Session{
			{SessionNumber: 1, Status: SessionCompleted},
			{SessionNumber: 2, Status: SessionConfirmed},
			{SessionNumber: 3, Status: SessionPending},
		},
	}

	booking.CancelRemainingSessions("clinic closure")

	assert.Equal(t, BookingCancelled, booking.SessionStatus)
	assert.Equal(t, "clinic closure", booking.CancellationReason)
	assert.Equal(t, SessionCompleted, booking.SessionDates[0].Status, "terminal sessions keep their status")
	assert.Equal(t, SessionCancelled, booking.SessionDates[1].Status)
	assert.Equal(t, SessionCancelled, booking.SessionDates[2].Status)
	assert.Equal(t, "clinic closure", booking.SessionDates[2].Reason)
}
