package constvars

const (
	EmailBookingCreatedSubject     = "[CLINICBOOK] Your booking is confirmed"
	EmailSessionScheduledSubject   = "[CLINICBOOK] Your next session has been scheduled"
	EmailSessionRescheduledSubject = "[CLINICBOOK] Your session has been rescheduled"
	EmailSessionCompletedSubject   = "[CLINICBOOK] Session completed"
	EmailSessionCancelledSubject   = "[CLINICBOOK] Your session has been cancelled"
	EmailBookingCancelledSubject   = "[CLINICBOOK] Your booking has been cancelled"
)

const (
	EmailSendBasicEmailFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailSendHTMLFormat       = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"

	EmailBodyBookingCreated     = "Hi %s, your booking for %s (%d sessions) has been received. Our team will schedule your first session shortly."
	EmailBodySessionScheduled   = "Hi %s, session #%d of your %s treatment has been scheduled on %s at %s."
	EmailBodySessionRescheduled = "Hi %s, session #%d of your %s treatment has been rescheduled to %s at %s."
	EmailBodySessionCompleted   = "Hi %s, session #%d of your %s treatment is now marked as completed."
	EmailBodySessionCancelled   = "Hi %s, session #%d of your %s treatment has been cancelled. Reason: %s"
	EmailBodyBookingCancelled   = "Hi %s, your booking for %s has been cancelled. Reason: %s"
)
