package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_USER_ID_KEY              ContextKey = "user_id"
	CONTEXT_USER_ROLE_KEY            ContextKey = "user_role"
)

const (
	REQUEST_ID_PREFIX = "CLNBK_SVC_"
)

const (
	MongoCollectionBookings   = "bookings"
	MongoCollectionDoctors    = "doctors"
	MongoCollectionTreatments = "treatments"
	MongoCollectionClinics    = "clinics"
	MongoCollectionUsers      = "users"
	MongoCollectionPayments   = "payments"
)

const (
	RoleAdmin   = "admin"
	RoleUser    = "user"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	SessionDateLayout = "2006-01-02"
	SessionTimeLayout = "15:04"
)

const (
	MinioPrescriptionObjectPrefix = "prescriptions"
	MinioDoctorAvatarObjectPrefix = "doctors/avatars"
)

const (
	RedisBookingLockKeyFormat = "booking_lock:%s"
)
