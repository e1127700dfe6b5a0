package constvars

const (
	ResponseUnknown = "unknown"

	// Booking messages
	BookingCreatedSuccess       = "booking created successfully"
	BookingFetchedSuccess       = "bookings fetched successfully"
	BookingDetailSuccess        = "booking detail fetched successfully"
	BookingCancelledSuccess     = "booking cancelled successfully"
	SessionUpdatedSuccess       = "session information updated successfully"
	SessionAddedSuccess         = "next session added successfully"
	PrescriptionUpsertedSuccess = "prescription uploaded successfully"

	// Doctor messages
	DoctorCreatedSuccess = "doctor created successfully"
	DoctorUpdatedSuccess = "doctor updated successfully"
	DoctorDeletedSuccess = "doctor deleted successfully"
	DoctorFetchedSuccess = "doctors fetched successfully"

	// Treatment messages
	TreatmentCreatedSuccess = "treatment created successfully"
	TreatmentUpdatedSuccess = "treatment updated successfully"
	TreatmentFetchedSuccess = "treatments fetched successfully"

	// User messages
	UserFetchedSuccess = "users fetched successfully"
	ProfileGetSuccess  = "get profile successfully"

	// Auth messages
	LoginSuccess    = "successfully login"
	RegisterSuccess = "account registered successfully"
)
