package bookings

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"clinicbook-service/internal/app/config"
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeBookingRepository struct {
	booking   *models.Booking
	updated   *models.Booking
	updateErr error
}

func (f *fakeBookingRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	if f.booking == nil || f.booking.ID != bookingID {
		return nil, nil
	}
	return f.booking, nil
}

func (f *fakeBookingRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Booking, int, error) {
	if f.booking == nil {
		return nil, 0, nil
	}
	return []models.Booking{*f.booking}, 1, nil
}

func (f *fakeBookingRepository) FindByUserID(ctx context.Context, userID string, page, pageSize int) ([]models.Booking, int, error) {
	return f.FindAll(ctx, page, pageSize)
}

func (f *fakeBookingRepository) Insert(ctx context.Context, booking *models.Booking) (string, error) {
	booking.ID = "66a0000000000000000000aa"
	f.booking = booking
	return booking.ID, nil
}

func (f *fakeBookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = booking
	return nil
}

func (f *fakeBookingRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingStorage struct {
	uploads []string
	deletes []string
}

func (f *recordingStorage) UploadFile(ctx context.Context, file io.Reader, size int64, contentType, objectName string) (*contracts.UploadedObject, error) {
	f.uploads = append(f.uploads, objectName)
	return &contracts.UploadedObject{
		URL:        "https://storage.local/clinicbook/" + objectName,
		ObjectName: objectName,
	}, nil
}

func (f *recordingStorage) DeleteFile(ctx context.Context, objectName string) error {
	f.deletes = append(f.deletes, objectName)
	return nil
}

type fakeMailer struct {
	sent []*requests.EmailPayload
}

func (f *fakeMailer) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	f.sent = append(f.sent, request)
	return nil
}

type fakeLocker struct {
	held     bool
	unlocked int
}

func (f *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	if f.held {
		return false, "", nil
	}
	return true, "lock-value", nil
}

func (f *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	f.unlocked++
	return nil
}

type fakeUserRepository struct {
	user *models.User
}

func (f *fakeUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	if f.user == nil || f.user.ID != userID {
		return nil, nil
	}
	return f.user, nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.user, nil
}

func (f *fakeUserRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.User, int, error) {
	return nil, 0, nil
}

func (f *fakeUserRepository) Insert(ctx context.Context, user *models.User) (string, error) {
	f.user = user
	return "66a0000000000000000000bb", nil
}

type fakeDoctorRepository struct {
	doctor *models.Doctor
}

func (f *fakeDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return f.doctor, nil
}

func (f *fakeDoctorRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Doctor, int, error) {
	return nil, 0, nil
}

func (f *fakeDoctorRepository) Insert(ctx context.Context, doctor *models.Doctor) (string, error) {
	return "", nil
}

func (f *fakeDoctorRepository) Update(ctx context.Context, doctor *models.Doctor) error { return nil }

func (f *fakeDoctorRepository) DeleteByID(ctx context.Context, doctorID string) error { return nil }

type fakeClinicRepository struct {
	clinic *models.Clinic
}

func (f *fakeClinicRepository) FindByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	return f.clinic, nil
}

func (f *fakeClinicRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Clinic, int, error) {
	return nil, 0, nil
}

type fakeTreatmentRepository struct {
	treatment *models.Treatment
}

func (f *fakeTreatmentRepository) FindByID(ctx context.Context, treatmentID string) (*models.Treatment, error) {
	return f.treatment, nil
}

func (f *fakeTreatmentRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Treatment, int, error) {
	return nil, 0, nil
}

func (f *fakeTreatmentRepository) Insert(ctx context.Context, treatment *models.Treatment) (string, error) {
	return "", nil
}

func (f *fakeTreatmentRepository) Update(ctx context.Context, treatment *models.Treatment) error {
	return nil
}

func assertCustomErrorCode(t *testing.T, err error, code int) {
	t.Helper()
	var customErr *exceptions.CustomError
	assert.True(t, errors.As(err, &customErr), "error should be a CustomError, got %v", err)
	assert.Equal(t, code, customErr.StatusCode)
}

const (
	testBookingID = "66a0000000000000000000aa"
	testUserID    = "66a0000000000000000000bb"
)

type usecaseFixture struct {
	usecase    *bookingUsecase
	bookings   *fakeBookingRepository
	storage    *recordingStorage
	mailer     *fakeMailer
	locker     *fakeLocker
	users      *fakeUserRepository
	treatments *fakeTreatmentRepository
}

func newFixture(booking *models.Booking) *usecaseFixture {
	bookingRepo := &fakeBookingRepository{booking: booking}
	storage := &recordingStorage{}
	mailerService := &fakeMailer{}
	lockService := &fakeLocker{}
	userRepo := &fakeUserRepository{user: &models.User{ID: testUserID, Name: "Ayu", Email: "ayu@example.com", Role: constvars.RolePatient}}
	doctorRepo := &fakeDoctorRepository{doctor: &models.Doctor{ID: "doc-1", Name: "dr. Sari"}}
	clinicRepo := &fakeClinicRepository{clinic: &models.Clinic{ID: "clinic-1", Name: "Clinic A"}}
	treatmentRepo := &fakeTreatmentRepository{treatment: &models.Treatment{ID: "treat-1", Name: "Physiotherapy", PricePerSession: 150000}}

	uc := &bookingUsecase{
		BookingRepository:   bookingRepo,
		PaymentRepository:   &fakePaymentRepository{},
		UserRepository:      userRepo,
		DoctorRepository:    doctorRepo,
		ClinicRepository:    clinicRepo,
		TreatmentRepository: treatmentRepo,
		Storage:             storage,
		MailerService:       mailerService,
		LockerService:       lockService,
		InternalConfig: &config.InternalConfig{App: config.App{
			LockExpirationInSeconds:       15,
			PrescriptionMaxUploadSizeInMB: 5,
		}},
		Log: zap.NewNop(),
	}

	return &usecaseFixture{
		usecase:    uc,
		bookings:   bookingRepo,
		storage:    storage,
		mailer:     mailerService,
		locker:     lockService,
		users:      userRepo,
		treatments: treatmentRepo,
	}
}

type fakePaymentRepository struct{}

func (f *fakePaymentRepository) FindByID(ctx context.Context, paymentID string) (*models.Payment, error) {
	return nil, nil
}

func (f *fakePaymentRepository) Insert(ctx context.Context, payment *models.Payment) (string, error) {
	return "66a0000000000000000000cc", nil
}

func twoSessionBooking(statuses ...models.SessionStatus) *models.Booking {
	booking := &models.Booking{
		ID:              testBookingID,
		UserID:          testUserID,
		ClinicID:        "clinic-1",
		DoctorID:        "doc-1",
		TreatmentID:     "treat-1",
		NoOfSessionBook: 2,
		SessionStatus:   models.BookingPending,
	}
	for i, status := range statuses {
		booking.SessionDates = append(booking.SessionDates, models.Session{
			SessionNumber: i + 1,
			Date:          "2026-09-10",
			Time:          "09:00",
			Status:        status,
		})
	}
	booking.RecomputeSessionStatus()
	return booking
}

func TestChangeSessionInformation(t *testing.T) {
	t.Run("completing a session recomputes the aggregate", func(t *testing.T) {
		fixture := newFixture(twoSessionBooking(models.SessionConfirmed))

		result, err := fixture.usecase.ChangeSessionInformation(context.Background(), &requests.ChangeSessionInformationRequest{
			ID:            testBookingID,
			SessionNumber: 1,
			Status:        "Completed",
		})

		assert.NoError(t, err)
		assert.Equal(t, models.SessionCompleted, result.SessionDates[0].Status)
		assert.Equal(t, models.BookingPartiallyCompleted, result.SessionStatus)
		assert.NotNil(t, fixture.bookings.updated, "the booking should be persisted")
		assert.Equal(t, 1, fixture.locker.unlocked, "the lock should be released")
		assert.Len(t, fixture.mailer.sent, 1)
		assert.Equal(t, constvars.EmailSessionCompletedSubject, fixture.mailer.sent[0].Subject)
	})

	t.Run("completing the final session completes the booking", func(t *testing.T) {
		fixture := newFixture(twoSessionBooking(models.SessionCompleted, models.SessionConfirmed))

		result, err := fixture.usecase.ChangeSessionInformation(context.Background(), &requests.ChangeSessionInformationRequest{
			ID:            testBookingID,
			SessionNumber: 2,
			Status:        "Completed",
		})

		assert.NoError(t, err)
		assert.Equal(t, models.BookingCompleted, result.SessionStatus)
	})

	t.Run("rescheduling updates date, time and reason", func(t *testing.T) {
		fixture := newFixture(twoSessionBooking(models.SessionConfirmed))

		result, err := fixture.usecase.ChangeSessionInformation(context.Background(), &requests.ChangeSessionInformationRequest{
			ID:            testBookingID,
			SessionNumber: 1,
			IsReschedule:  true,
			NewDate:       "2026-09-20",
			NewTime:       "14:00",
			Reason:        "patient request",
		})

		assert.NoError(t, err)
		session := result.SessionDates[0]
		assert.Equal(t, models.SessionRescheduled, session.Status)
		assert.Equal(t, "2026-09-20", session.Date)
		assert.Equal(t, "14:00", session.Time)
		assert.Equal(t, "patient request", session.Reason)
		assert.Equal(t, models.BookingRescheduled, result.SessionStatus)
	})

	t.Run("rescheduling without new date and time is rejected", func(t *testing.T) {
		fixture := newFixture(twoSessionBooking(models.SessionConfirmed))

		_, err := fixture.usecase.ChangeSessionInformation(context.Background(), &requests.ChangeSessionInformationRequest{
			ID:            testBookingID,
			SessionNumber: 1,
			IsReschedule:  true,
		})

		assertCustomErrorCode(t, err, constvars.StatusBadRequest)
		assert.Nil(t, fixture.bookings.updated, "nothing should be persisted")
	})

	t.Run("cancelling without a reason is rejected", func(t *testing.T) {
		fixture := newFixture(twoSessionBooking(models.SessionConfirmed))

		_, err := fixture.usecase.ChangeSessionInformation(context.Background(), &requests.ChangeSessionInformationRequest{
			ID:            testBookingID,
			SessionNumber: 1,
			Status:        "Cancelled",
		})

		assertCustomErrorCode(t, err, constvars.StatusBadRequest)
	})

	t.Run("a terminal session cannot change again", func(t *testing.T) {
		fixture := newFixture(twoSessionBooking(models.SessionCompleted))

		_, err := fixture.usecase.ChangeSessionInformation(context.Background(), &requests.ChangeSessionInformationRequest{
			ID:            testBookingID,
			SessionNumber: 1,
			Status:        "Cancelled",
		})

		assertCustomErrorCode(t, err, constvars.StatusBadRequest)
	})

	t.Run("a cancelled booking freezes every session", func(t *testing.T) {
		booking := twoSessionBooking(models.SessionConfirmed)
		booking.SessionStatus = models.BookingCancelled
		fixture := newFixture(booking)

		_, err := fixture.usecase.ChangeSessionInformation(context.Background(), &requests.ChangeSessionInformationRequest{
			ID:            testBookingID,
			SessionNumber: 1,
			Status:        "Completed",
		})

		assertCustomErrorCode(t, err, constvars.StatusBadRequest)
	})

	t.Run("unknown session number is a 404", func(t *testing.T) {
		fixture := newFixture(twoSessionBooking(models.SessionConfirmed))

		_, err := fixture.usecase.ChangeSessionInformation(context.Background(), &requests.ChangeSessionInformationRequest{
			ID:            testBookingID,
			SessionNumber: 9,
			Status:        "Completed",
		})

		assertCustomErrorCode(t, err, constvars.StatusNotFound)
	})

	t.Run("unknown booking is a 404", func(t *testing.T) {
		fixture := newFixture(nil)

		_, err := fixture.usecase.ChangeSessionInformation(context.Background(), &requests.ChangeSessionInformationRequest{
			ID:            testBookingID,
			SessionNumber: 1,
			Status:        "Completed",
		})

		assertCustomErrorCode(t, err, constvars.StatusNotFound)
	})

	t.Run("a held lock rejects the mutation with 409", func(t *testing.T) {
		fixture := newFixture(twoSessionBooking(models.SessionConfirmed))
		fixture.locker.held = true

		_, err := fixture.usecase.ChangeSessionInformation(context.Background(), &requests.ChangeSessionInformationRequest{
			ID:            testBookingID,
			SessionNumber: 1,
			Status:        "Completed",
		})

		assertCustomErrorCode(t, err, constvars.StatusConflict)
	})
}

func TestAddNextSession(t *testing.T) {
	t.Run("appends the next session once the previous one is completed", func(t *testing.T) {
		fixture := newFixture(twoSessionBooking(models.SessionCompleted))

		result, err := fixture.usecase.AddNextSession(context.Background(), &requests.AddNextSessionRequest{
			BookingID: testBookingID,
			NewDate:   "2026-09-17",
			NewTime:   "10:00",
		})

		assert.NoError(t, err)
		assert.Len(t, result.SessionDates, 2)
		assert.Equal(t, 2, result.SessionDates[1].SessionNumber)
		assert.Equal(t, models.SessionPending, result.SessionDates[1].Status)
		assert.Len(t, fixture.mailer.sent, 1)
		assert.Equal(t, constvars.EmailSessionScheduledSubject, fixture.mailer.sent[0].Subject)
	})

	t.Run("rejected while the latest session is still open", func(t *testing.T) {
		fixture := newFixture(twoSessionBooking(models.SessionConfirmed))

		_, err := fixture.usecase.AddNextSession(context.Background(), &requests.AddNextSessionRequest{
			BookingID: testBookingID,
			NewDate:   "2026-09-17",
			NewTime:   "10:00",
		})

		assertCustomErrorCode(t, err, constvars.StatusBadRequest)
	})

	t.Run("rejected once the purchased session count is reached", func(t *testing.T) {
		fixture := newFixture(twoSessionBooking(models.SessionCompleted, models.SessionCompleted))

		_, err := fixture.usecase.AddNextSession(context.Background(), &requests.AddNextSessionRequest{
			BookingID: testBookingID,
			NewDate:   "2026-09-17",
			NewTime:   "10:00",
		})

		assertCustomErrorCode(t, err, constvars.StatusBadRequest)
	})
}

func prescriptionInput(sessionNumber int) *contracts.UpsertPrescriptionInput {
	return &contracts.UpsertPrescriptionInput{
		Request: &requests.UpsertSessionPrescriptionRequest{
			ID:               testBookingID,
			SessionNumber:    sessionNumber,
			PrescriptionType: "Post-Treatment",
		},
		File: strings.NewReader("pdf-bytes"),
		FileHeader: &multipart.FileHeader{
			Filename: "rx.pdf",
			Size:     1024,
			Header:   textproto.MIMEHeader{"Content-Type": []string{"application/pdf"}},
		},
	}
}

func TestUpsertSessionPrescription(t *testing.T) {
	t.Run("uploads and attaches a prescription to a completed session", func(t *testing.T) {
		fixture := newFixture(twoSessionBooking(models.SessionCompleted))

		result, err := fixture.usecase.UpsertSessionPrescription(context.Background(), prescriptionInput(1))

		assert.NoError(t, err)
		assert.Len(t, result.SessionPrescriptions, 1)
		assert.Equal(t, models.PrescriptionPostTreatment, result.SessionPrescriptions[0].PrescriptionType)
		assert.Len(t, fixture.storage.uploads, 1)
		assert.Empty(t, fixture.storage.deletes, "a first upload has nothing to delete")
	})

	t.Run("replacing a prescription deletes the old file after commit", func(t *testing.T) {
		booking := twoSessionBooking(models.SessionCompleted)
		booking.SessionPrescriptions = []models.Prescription{{
			SessionNumber: 1,
			ObjectName:    "prescriptions/old-object.pdf",
		}}
		fixture := newFixture(booking)

		result, err := fixture.usecase.UpsertSessionPrescription(context.Background(), prescriptionInput(1))

		assert.NoError(t, err)
		assert.Len(t, result.SessionPrescriptions, 1, "replace must not append a second record")
		assert.Equal(t, []string{"prescriptions/old-object.pdf"}, fixture.storage.deletes)
	})

	t.Run("a session that is not completed rejects the upload", func(t *testing.T) {
		fixture := newFixture(twoSessionBooking(models.SessionConfirmed))

		_, err := fixture.usecase.UpsertSessionPrescription(context.Background(), prescriptionInput(1))

		assertCustomErrorCode(t, err, constvars.StatusBadRequest)
		assert.Empty(t, fixture.storage.uploads, "nothing should be uploaded")
	})

	t.Run("a failed transaction deletes the fresh upload", func(t *testing.T) {
		fixture := newFixture(twoSessionBooking(models.SessionCompleted))
		fixture.bookings.updateErr = exceptions.ErrMongoDBUpdateDocument(errors.New("write conflict"))

		_, err := fixture.usecase.UpsertSessionPrescription(context.Background(), prescriptionInput(1))

		assert.Error(t, err)
		assert.Len(t, fixture.storage.uploads, 1)
		assert.Equal(t, fixture.storage.uploads, fixture.storage.deletes, "the orphaned object must be removed")
	})

	t.Run("an oversized file is rejected before any upload", func(t *testing.T) {
		fixture := newFixture(twoSessionBooking(models.SessionCompleted))
		input := prescriptionInput(1)
		input.FileHeader.Size = 50 * 1024 * 1024

		_, err := fixture.usecase.UpsertSessionPrescription(context.Background(), input)

		assertCustomErrorCode(t, err, constvars.StatusBadRequest)
		assert.Empty(t, fixture.storage.uploads)
	})
}

func TestCancelBooking(t *testing.T) {
	t.Run("cancels every open session and the booking", func(t *testing.T) {
		fixture := newFixture(twoSessionBooking(models.SessionCompleted, models.SessionConfirmed))

		result, err := fixture.usecase.CancelBooking(context.Background(), testBookingID, "moved abroad")

		assert.NoError(t, err)
		assert.Equal(t, models.BookingCancelled, result.SessionStatus)
		assert.Equal(t, models.SessionCompleted, result.SessionDates[0].Status)
		assert.Equal(t, models.SessionCancelled, result.SessionDates[1].Status)
		assert.Equal(t, "moved abroad", result.CancellationReason)
		assert.Len(t, fixture.mailer.sent, 1)
		assert.Equal(t, constvars.EmailBookingCancelledSubject, fixture.mailer.sent[0].Subject)
	})

	t.Run("a terminal booking cannot be cancelled twice", func(t *testing.T) {
		booking := twoSessionBooking(models.SessionConfirmed)
		booking.SessionStatus = models.BookingCancelled
		fixture := newFixture(booking)

		_, err := fixture.usecase.CancelBooking(context.Background(), testBookingID, "again")

		assertCustomErrorCode(t, err, constvars.StatusBadRequest)
	})
}

func TestCreateBooking(t *testing.T) {
	t.Run("creates a payment and an empty booking then emails the patient", func(t *testing.T) {
		fixture := newFixture(nil)

		result, err := fixture.usecase.CreateBooking(context.Background(), testUserID, &requests.CreateBookingRequest{
			DoctorID:        "doc-1",
			ClinicID:        "clinic-1",
			TreatmentID:     "treat-1",
			NoOfSessionBook: 4,
		})

		assert.NoError(t, err)
		assert.Equal(t, 4, result.NoOfSessionBook)
		assert.Equal(t, models.BookingPending, result.SessionStatus)
		assert.Empty(t, result.SessionDates, "sessions are scheduled later by the admin")
		assert.Len(t, fixture.mailer.sent, 1)
		assert.Equal(t, constvars.EmailBookingCreatedSubject, fixture.mailer.sent[0].Subject)
	})
}
