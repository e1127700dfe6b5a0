package constvars

// Client-facing messages. Kept generic for anything that is not the caller's fault.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in or your session has expired"
	ErrClientInvalidUsernameOrPassword     = "Invalid email or password"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again later"

	ErrClientBookingNotFound            = "Booking not found"
	ErrClientSessionNotFound            = "Session not found in this booking"
	ErrClientBookingAlreadyTerminal     = "This booking is already completed or cancelled"
	ErrClientSessionAlreadyTerminal     = "This session is already completed or cancelled"
	ErrClientSessionLimitReached        = "All purchased sessions have already been scheduled"
	ErrClientPrescriptionLimitReached   = "Prescription limit for this booking has been reached"
	ErrClientSessionNotCompleted        = "Prescriptions can only be attached to a completed session"
	ErrClientPreviousSessionNotComplete = "The previous session must be completed before scheduling the next one"
	ErrClientCancelReasonRequired       = "A reason is required to cancel a session"
	ErrClientRescheduleFieldsRequired   = "A new date and time are required to reschedule a session"
	ErrClientInvalidStatusTransition    = "The requested session status change is not allowed"

	ErrClientDoctorNotFound    = "Doctor not found"
	ErrClientTreatmentNotFound = "Treatment not found"
	ErrClientClinicNotFound    = "Clinic not found"
	ErrClientUserNotFound      = "User not found"
	ErrClientEmailAlreadyExist = "An account with this email already exists"

	ErrClientInvalidImageFormat = "Invalid or unsupported file format"
	ErrClientFileTooLarge       = "Uploaded file exceeds the maximum allowed size"
)

// Developer-facing messages, logged but never shown to clients in production.
const (
	ErrDevValidationFailed         = "request validation failed"
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON request body"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form"
	ErrDevCannotParseDate          = "cannot parse date/time field"
	ErrDevServerProcess            = "internal server process failed"
	ErrDevServerDeadlineExceeded   = "request deadline exceeded"
	ErrDevMissingRequestID         = "request id missing from context"

	ErrDevDBFailedToFindDocument    = "mongodb: failed to find document"
	ErrDevDBFailedToInsertDocument  = "mongodb: failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "mongodb: failed to update document"
	ErrDevDBFailedToDeleteDocument  = "mongodb: failed to delete document"
	ErrDevDBFailedToIterateDocument = "mongodb: failed to iterate documents"
	ErrDevDBStringNotObjectID       = "mongodb: string is not a valid ObjectID"
	ErrDevDBTransactionFailed       = "mongodb: transaction aborted"

	ErrDevRedisGetData      = "redis: failed to get data"
	ErrDevRedisSetData      = "redis: failed to set data"
	ErrDevRedisDeleteData   = "redis: failed to delete data"
	ErrDevRedisSetNX        = "redis: failed to acquire lock via SETNX"
	ErrDevRedisUnlock       = "redis: failed to release lock"
	ErrDevLockNotAcquired   = "lock: booking is being modified by another request"
	ErrDevLockOwnershipLost = "lock: not owned by this client"

	ErrDevMinioFailedToCreateObject = "minio: failed to create object in bucket %s"
	ErrDevMinioFailedToDeleteObject = "minio: failed to delete object from bucket %s"

	ErrDevRabbitMQPublish = "rabbitmq: failed to publish message to queue %s"
	ErrDevSMTPSendEmail   = "smtp: failed to send email via %s"

	ErrDevAuthTokenMissing          = "auth: bearer token missing"
	ErrDevAuthTokenInvalidOrExpired = "auth: token invalid or expired"
	ErrDevAuthGenerateToken         = "auth: failed to generate token"
	ErrDevInvalidCredentials        = "auth: invalid credentials"
	ErrDevRoleNotAllowed            = "auth: role not allowed for this endpoint"
	ErrDevFailedToHashPassword      = "auth: failed to hash password"

	ErrDevBookingNotFound            = "booking: document not found"
	ErrDevSessionNotFound            = "booking: session number not present"
	ErrDevBookingAlreadyTerminal     = "booking: aggregate status already terminal"
	ErrDevSessionAlreadyTerminal     = "booking: session status already terminal"
	ErrDevSessionLimitReached        = "booking: session count equals no_of_session_book"
	ErrDevPrescriptionLimitReached   = "booking: prescription count equals no_of_session_book"
	ErrDevSessionNotCompleted        = "booking: target session is not completed"
	ErrDevPreviousSessionNotComplete = "booking: previous sequential session not completed"
	ErrDevInvalidStatusTransition    = "booking: transition not allowed by state machine"
)

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"alphanum":     "must contain only alphanumeric characters",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"numeric":      "must be a number",
	"len":          "must be %s characters long",
	"oneof":        "must be one of [%s]",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"lt":           "must be less than %s",
	"lte":          "must be less than or equal to %s",
	"url":          "must be a valid URL",
	"uuid":         "must be a valid UUID",
	"session_date": "must be a valid date in YYYY-MM-DD format",
	"session_time": "must be a valid time in HH:MM format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}
