package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingBookingIDKey      = "booking_id"
	LoggingSessionNumberKey  = "session_number"
	LoggingSessionStatusKey  = "session_status"
	LoggingSessionCountKey   = "session_count"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingUserIDKey         = "user_id"
	LoggingTreatmentIDKey    = "treatment_id"
	LoggingObjectNameKey     = "object_name"
	LoggingEmailRecipientKey = "email_recipient"
	LoggingQueueKey          = "queue"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
)
