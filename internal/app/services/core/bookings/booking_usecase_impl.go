package bookings

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clinicbook-service/internal/app/config"
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository   contracts.BookingRepository
	PaymentRepository   contracts.PaymentRepository
	UserRepository      contracts.UserRepository
	DoctorRepository    contracts.DoctorRepository
	ClinicRepository    contracts.ClinicRepository
	TreatmentRepository contracts.TreatmentRepository
	Storage             contracts.Storage
	MailerService       contracts.MailerService
	LockerService       contracts.LockerService
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceNewBookingUsecase  sync.Once
)

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	paymentRepository contracts.PaymentRepository,
	userRepository contracts.UserRepository,
	doctorRepository contracts.DoctorRepository,
	clinicRepository contracts.ClinicRepository,
	treatmentRepository contracts.TreatmentRepository,
	storage contracts.Storage,
	mailerService contracts.MailerService,
	lockerService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceNewBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			BookingRepository:   bookingRepository,
			PaymentRepository:   paymentRepository,
			UserRepository:      userRepository,
			DoctorRepository:    doctorRepository,
			ClinicRepository:    clinicRepository,
			TreatmentRepository: treatmentRepository,
			Storage:             storage,
			MailerService:       mailerService,
			LockerService:       lockerService,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
	})
	return bookingUsecaseInstance
}

func (uc *bookingUsecase) CreateBooking(ctx context.Context, userID string, request *requests.CreateBookingRequest) (*responses.Booking, error) {
	log := uc.Log.With(zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)))
	log.Info("CreateBooking called",
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingTreatmentIDKey, request.TreatmentID),
		zap.Int(constvars.LoggingSessionCountKey, request.NoOfSessionBook),
	)

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		log.Error("CreateBooking error finding user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(fmt.Errorf("user %s does not exist", userID))
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		log.Error("CreateBooking error finding doctor", zap.Error(err))
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s does not exist", request.DoctorID))
	}

	treatment, err := uc.TreatmentRepository.FindByID(ctx, request.TreatmentID)
	if err != nil {
		log.Error("CreateBooking error finding treatment", zap.Error(err))
		return nil, err
	}
	if treatment == nil {
		return nil, exceptions.ErrTreatmentNotFound(fmt.Errorf("treatment %s does not exist", request.TreatmentID))
	}

	now := time.Now()

	amount := request.Amount
	if amount == 0 {
		amount = treatment.PricePerSession * float64(request.NoOfSessionBook)
	}
	payment := &models.Payment{
		UserID:    userID,
		Amount:    amount,
		Currency:  "IDR",
		Method:    request.PaymentMethod,
		Reference: request.PaymentReference,
		Status:    models.PaymentPaid,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	paymentID, err := uc.PaymentRepository.Insert(ctx, payment)
	if err != nil {
		log.Error("CreateBooking error inserting payment", zap.Error(err))
		return nil, err
	}

	booking := &models.Booking{
		UserID:               userID,
		ClinicID:             request.ClinicID,
		DoctorID:             request.DoctorID,
		TreatmentID:          request.TreatmentID,
		PaymentID:            paymentID,
		NoOfSessionBook:      request.NoOfSessionBook,
		SessionStatus:        models.BookingPending,
		SessionDates:         []models.Session{},
		SessionPrescriptions: []models.Prescription{},
		TimeModel:            models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	bookingID, err := uc.BookingRepository.Insert(ctx, booking)
	if err != nil {
		log.Error("CreateBooking error inserting booking", zap.Error(err))
		return nil, err
	}
	booking.ID = bookingID

	uc.enqueueEmail(ctx, log, user.Email,
		constvars.EmailBookingCreatedSubject,
		fmt.Sprintf(constvars.EmailBodyBookingCreated, user.Name, treatment.Name, booking.NoOfSessionBook),
	)

	log.Info("CreateBooking succeeded", zap.String(constvars.LoggingBookingIDKey, bookingID))
	return uc.buildBookingResponse(ctx, booking), nil
}

func (uc *bookingUsecase) FindAll(ctx context.Context, pagination *requests.Pagination) ([]responses.Booking, int, error) {
	log := uc.Log.With(zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)))
	log.Info("FindAll bookings called", zap.Any(constvars.LoggingQueryParamsKey, pagination))

	bookings, total, err := uc.BookingRepository.FindAll(ctx, pagination.Page, pagination.PageSize)
	if err != nil {
		log.Error("FindAll bookings error", zap.Error(err))
		return nil, 0, err
	}

	result := make([]responses.Booking, 0, len(bookings))
	for i := range bookings {
		result = append(result, *uc.buildBookingResponse(ctx, &bookings[i]))
	}

	log.Info("FindAll bookings succeeded", zap.Int(constvars.LoggingResponseLengthKey, len(result)))
	return result, total, nil
}

func (uc *bookingUsecase) FindByID(ctx context.Context, bookingID string) (*responses.Booking, error) {
	log := uc.Log.With(zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)))
	log.Info("FindByID booking called", zap.String(constvars.LoggingBookingIDKey, bookingID))

	booking, err := uc.findBooking(ctx, bookingID)
	if err != nil {
		log.Error("FindByID booking error", zap.Error(err))
		return nil, err
	}

	log.Info("FindByID booking succeeded", zap.String(constvars.LoggingBookingIDKey, bookingID))
	return uc.buildBookingResponse(ctx, booking), nil
}

// ChangeSessionInformation applies one admin-driven transition to a single
// session: reschedule when IsReschedule is set, otherwise the transition named
// by Status. The whole mutation runs under the booking's redis lock.
func (uc *bookingUsecase) ChangeSessionInformation(ctx context.Context, request *requests.ChangeSessionInformationRequest) (*responses.Booking, error) {
	log := uc.Log.With(zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)))
	log.Info("ChangeSessionInformation called",
		zap.String(constvars.LoggingBookingIDKey, request.ID),
		zap.Int(constvars.LoggingSessionNumberKey, request.SessionNumber),
		zap.String(constvars.LoggingSessionStatusKey, request.Status),
	)

	release, err := uc.lockBooking(ctx, request.ID)
	if err != nil {
		log.Error("ChangeSessionInformation error acquiring lock", zap.Error(err))
		return nil, err
	}
	defer release()

	booking, err := uc.findBooking(ctx, request.ID)
	if err != nil {
		log.Error("ChangeSessionInformation error finding booking", zap.Error(err))
		return nil, err
	}
	if booking.IsTerminal() {
		return nil, exceptions.ErrBookingAlreadyTerminal(fmt.Errorf("booking %s is %s", booking.ID, booking.SessionStatus))
	}

	session := booking.SessionByNumber(request.SessionNumber)
	if session == nil {
		return nil, exceptions.ErrSessionNotFound(fmt.Errorf("booking %s has no session #%d", booking.ID, request.SessionNumber))
	}

	var emailSubject string
	var emailBody func(patientName string) string
	if request.IsReschedule {
		emailSubject, emailBody, err = uc.rescheduleSession(ctx, booking, session, request)
	} else {
		emailSubject, emailBody, err = uc.transitionSession(ctx, booking, session, request)
	}
	if err != nil {
		log.Error("ChangeSessionInformation error mutating session", zap.Error(err))
		return nil, err
	}

	booking.RecomputeSessionStatus()
	booking.UpdatedAt = time.Now()

	if err := uc.BookingRepository.Update(ctx, booking); err != nil {
		log.Error("ChangeSessionInformation error updating booking", zap.Error(err))
		return nil, err
	}

	uc.enqueueBookingEmail(ctx, log, booking, emailSubject, emailBody)

	log.Info("ChangeSessionInformation succeeded",
		zap.String(constvars.LoggingBookingIDKey, booking.ID),
		zap.Int(constvars.LoggingSessionNumberKey, session.SessionNumber),
		zap.String(constvars.LoggingSessionStatusKey, string(session.Status)),
	)
	return uc.buildBookingResponse(ctx, booking), nil
}

func (uc *bookingUsecase) rescheduleSession(ctx context.Context, booking *models.Booking, session *models.Session, request *requests.ChangeSessionInformationRequest) (string, func(string) string, error) {
	if request.NewDate == "" || request.NewTime == "" {
		return "", nil, exceptions.ErrRescheduleFieldsRequired(fmt.Errorf("reschedule of session #%d is missing new_date or new_time", request.SessionNumber))
	}
	if session.Status.IsTerminal() {
		return "", nil, exceptions.ErrSessionAlreadyTerminal(fmt.Errorf("session #%d is %s", session.SessionNumber, session.Status))
	}
	if !session.Status.CanTransitionTo(models.SessionRescheduled) {
		return "", nil, exceptions.ErrInvalidStatusTransition(fmt.Errorf("session #%d cannot move from %s to %s", session.SessionNumber, session.Status, models.SessionRescheduled))
	}

	session.Date = request.NewDate
	session.Time = request.NewTime
	session.Status = models.SessionRescheduled
	session.Reason = request.Reason

	treatmentName := uc.treatmentName(ctx, booking)
	sessionNumber, date, timeOfDay := session.SessionNumber, session.Date, session.Time
	body := func(patientName string) string {
		return fmt.Sprintf(constvars.EmailBodySessionRescheduled, patientName, sessionNumber, treatmentName, date, timeOfDay)
	}
	return constvars.EmailSessionRescheduledSubject, body, nil
}

func (uc *bookingUsecase) transitionSession(ctx context.Context, booking *models.Booking, session *models.Session, request *requests.ChangeSessionInformationRequest) (string, func(string) string, error) {
	target, known := models.ParseSessionStatus(request.Status)
	if !known {
		return "", nil, exceptions.ErrInvalidStatusTransition(fmt.Errorf("unknown session status %q", request.Status))
	}
	if session.Status.IsTerminal() {
		return "", nil, exceptions.ErrSessionAlreadyTerminal(fmt.Errorf("session #%d is %s", session.SessionNumber, session.Status))
	}
	if target == models.SessionCancelled && request.Reason == "" {
		return "", nil, exceptions.ErrCancelReasonRequired(fmt.Errorf("cancellation of session #%d has no reason", request.SessionNumber))
	}
	if !session.Status.CanTransitionTo(target) {
		return "", nil, exceptions.ErrInvalidStatusTransition(fmt.Errorf("session #%d cannot move from %s to %s", session.SessionNumber, session.Status, target))
	}

	session.Status = target
	if request.Reason != "" {
		session.Reason = request.Reason
	}

	treatmentName := uc.treatmentName(ctx, booking)
	sessionNumber, reason := session.SessionNumber, session.Reason
	switch target {
	case models.SessionCompleted:
		body := func(patientName string) string {
			return fmt.Sprintf(constvars.EmailBodySessionCompleted, patientName, sessionNumber, treatmentName)
		}
		return constvars.EmailSessionCompletedSubject, body, nil
	case models.SessionCancelled, models.SessionNoShow:
		body := func(patientName string) string {
			return fmt.Sprintf(constvars.EmailBodySessionCancelled, patientName, sessionNumber, treatmentName, reason)
		}
		return constvars.EmailSessionCancelledSubject, body, nil
	default:
		// Confirmations are silent.
		return "", nil, nil
	}
}

// AddNextSession appends the next sequential session. It is rejected while the
// latest session is still open and once NoOfSessionBook sessions exist.
func (uc *bookingUsecase) AddNextSession(ctx context.Context, request *requests.AddNextSessionRequest) (*responses.Booking, error) {
	log := uc.Log.With(zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)))
	log.Info("AddNextSession called", zap.String(constvars.LoggingBookingIDKey, request.BookingID))

	release, err := uc.lockBooking(ctx, request.BookingID)
	if err != nil {
		log.Error("AddNextSession error acquiring lock", zap.Error(err))
		return nil, err
	}
	defer release()

	booking, err := uc.findBooking(ctx, request.BookingID)
	if err != nil {
		log.Error("AddNextSession error finding booking", zap.Error(err))
		return nil, err
	}
	if booking.IsTerminal() {
		return nil, exceptions.ErrBookingAlreadyTerminal(fmt.Errorf("booking %s is %s", booking.ID, booking.SessionStatus))
	}
	if booking.SessionLimitReached() {
		return nil, exceptions.ErrSessionLimitReached(fmt.Errorf("booking %s already has all %d sessions", booking.ID, booking.NoOfSessionBook))
	}
	if !booking.PreviousSessionCompleted() {
		return nil, exceptions.ErrPreviousSessionNotComplete(fmt.Errorf("latest session of booking %s is not completed", booking.ID))
	}

	session := booking.AppendSession(request.NewDate, request.NewTime)
	booking.RecomputeSessionStatus()
	booking.UpdatedAt = time.Now()

	if err := uc.BookingRepository.Update(ctx, booking); err != nil {
		log.Error("AddNextSession error updating booking", zap.Error(err))
		return nil, err
	}

	treatmentName := uc.treatmentName(ctx, booking)
	uc.enqueueBookingEmail(ctx, log, booking, constvars.EmailSessionScheduledSubject, func(patientName string) string {
		return fmt.Sprintf(constvars.EmailBodySessionScheduled, patientName, session.SessionNumber, treatmentName, session.Date, session.Time)
	})

	log.Info("AddNextSession succeeded",
		zap.String(constvars.LoggingBookingIDKey, booking.ID),
		zap.Int(constvars.LoggingSessionNumberKey, session.SessionNumber),
	)
	return uc.buildBookingResponse(ctx, booking), nil
}

// UpsertSessionPrescription uploads the new file first, then swaps the
// prescription record inside a mongo transaction, and only deletes the old file
// after the transaction commits. A failed transaction deletes the new upload so
// storage never holds an unreferenced file.
func (uc *bookingUsecase) UpsertSessionPrescription(ctx context.Context, input *contracts.UpsertPrescriptionInput) (*responses.Booking, error) {
	log := uc.Log.With(zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)))
	request := input.Request
	log.Info("UpsertSessionPrescription called",
		zap.String(constvars.LoggingBookingIDKey, request.ID),
		zap.Int(constvars.LoggingSessionNumberKey, request.SessionNumber),
	)

	if input.File == nil || input.FileHeader == nil {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("prescription file is missing"))
	}
	maxSize := uc.InternalConfig.App.PrescriptionMaxUploadSizeInMB * 1024 * 1024
	if input.FileHeader.Size > maxSize {
		return nil, exceptions.ErrFileTooLarge(fmt.Errorf("file is %d bytes, limit is %d", input.FileHeader.Size, maxSize))
	}

	release, err := uc.lockBooking(ctx, request.ID)
	if err != nil {
		log.Error("UpsertSessionPrescription error acquiring lock", zap.Error(err))
		return nil, err
	}
	defer release()

	booking, err := uc.findBooking(ctx, request.ID)
	if err != nil {
		log.Error("UpsertSessionPrescription error finding booking", zap.Error(err))
		return nil, err
	}
	if err := uc.checkPrescriptionPreconditions(booking, request); err != nil {
		return nil, err
	}

	objectName := utils.GeneratePrescriptionObjectName(booking.ID, request.SessionNumber, input.FileHeader.Filename)
	contentType := input.FileHeader.Header.Get(constvars.HeaderContentType)
	uploaded, err := uc.Storage.UploadFile(ctx, input.File, input.FileHeader.Size, contentType, objectName)
	if err != nil {
		log.Error("UpsertSessionPrescription error uploading file", zap.Error(err))
		return nil, err
	}
	log.Info("UpsertSessionPrescription uploaded file", zap.String(constvars.LoggingObjectNameKey, uploaded.ObjectName))

	var oldObjectName string
	var updated *models.Booking
	txErr := uc.BookingRepository.WithTransaction(ctx, func(txCtx context.Context) error {
		current, err := uc.findBooking(txCtx, request.ID)
		if err != nil {
			return err
		}
		if err := uc.checkPrescriptionPreconditions(current, request); err != nil {
			return err
		}

		oldObjectName, _ = current.UpsertPrescription(models.Prescription{
			SessionNumber:    request.SessionNumber,
			PrescriptionType: models.PrescriptionType(request.PrescriptionType),
			URL:              uploaded.URL,
			ObjectName:       uploaded.ObjectName,
			UploadedAt:       time.Now(),
		})
		current.UpdatedAt = time.Now()

		if err := uc.BookingRepository.Update(txCtx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if txErr != nil {
		log.Error("UpsertSessionPrescription transaction failed", zap.Error(txErr))
		if err := uc.Storage.DeleteFile(ctx, uploaded.ObjectName); err != nil {
			log.Error("UpsertSessionPrescription error deleting orphaned upload",
				zap.String(constvars.LoggingObjectNameKey, uploaded.ObjectName), zap.Error(err))
		}
		return nil, txErr
	}

	if oldObjectName != "" {
		if err := uc.Storage.DeleteFile(ctx, oldObjectName); err != nil {
			// The record already points at the new file; leaking the old one
			// is preferable to failing the request.
			log.Error("UpsertSessionPrescription error deleting replaced file",
				zap.String(constvars.LoggingObjectNameKey, oldObjectName), zap.Error(err))
		}
	}

	log.Info("UpsertSessionPrescription succeeded",
		zap.String(constvars.LoggingBookingIDKey, updated.ID),
		zap.Int(constvars.LoggingSessionNumberKey, request.SessionNumber),
	)
	return uc.buildBookingResponse(ctx, updated), nil
}

func (uc *bookingUsecase) checkPrescriptionPreconditions(booking *models.Booking, request *requests.UpsertSessionPrescriptionRequest) error {
	session := booking.SessionByNumber(request.SessionNumber)
	if session == nil {
		return exceptions.ErrSessionNotFound(fmt.Errorf("booking %s has no session #%d", booking.ID, request.SessionNumber))
	}
	if session.Status != models.SessionCompleted {
		return exceptions.ErrSessionNotCompleted(fmt.Errorf("session #%d is %s", session.SessionNumber, session.Status))
	}
	if booking.PrescriptionBySession(request.SessionNumber) == nil && booking.PrescriptionLimitReached() {
		return exceptions.ErrPrescriptionLimitReached(fmt.Errorf("booking %s already has %d prescriptions", booking.ID, len(booking.SessionPrescriptions)))
	}
	return nil
}

func (uc *bookingUsecase) CancelBooking(ctx context.Context, bookingID, reason string) (*responses.Booking, error) {
	log := uc.Log.With(zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)))
	log.Info("CancelBooking called", zap.String(constvars.LoggingBookingIDKey, bookingID))

	release, err := uc.lockBooking(ctx, bookingID)
	if err != nil {
		log.Error("CancelBooking error acquiring lock", zap.Error(err))
		return nil, err
	}
	defer release()

	booking, err := uc.findBooking(ctx, bookingID)
	if err != nil {
		log.Error("CancelBooking error finding booking", zap.Error(err))
		return nil, err
	}
	if booking.IsTerminal() {
		return nil, exceptions.ErrBookingAlreadyTerminal(fmt.Errorf("booking %s is %s", booking.ID, booking.SessionStatus))
	}

	booking.CancelRemainingSessions(reason)
	booking.UpdatedAt = time.Now()

	if err := uc.BookingRepository.Update(ctx, booking); err != nil {
		log.Error("CancelBooking error updating booking", zap.Error(err))
		return nil, err
	}

	treatmentName := uc.treatmentName(ctx, booking)
	uc.enqueueBookingEmail(ctx, log, booking, constvars.EmailBookingCancelledSubject, func(patientName string) string {
		return fmt.Sprintf(constvars.EmailBodyBookingCancelled, patientName, treatmentName, reason)
	})

	log.Info("CancelBooking succeeded", zap.String(constvars.LoggingBookingIDKey, booking.ID))
	return uc.buildBookingResponse(ctx, booking), nil
}

func (uc *bookingUsecase) findBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotFound(fmt.Errorf("booking %s does not exist", bookingID))
	}
	return booking, nil
}

func (uc *bookingUsecase) lockBooking(ctx context.Context, bookingID string) (func(), error) {
	lockKey := fmt.Sprintf(constvars.RedisBookingLockKeyFormat, bookingID)
	expiration := time.Duration(uc.InternalConfig.App.LockExpirationInSeconds) * time.Second

	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, expiration)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrLockNotAcquired(fmt.Errorf("booking %s is being modified by another request", bookingID))
	}

	release := func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Error("release booking lock error",
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}
	return release, nil
}

func (uc *bookingUsecase) treatmentName(ctx context.Context, booking *models.Booking) string {
	treatment, err := uc.TreatmentRepository.FindByID(ctx, booking.TreatmentID)
	if err != nil || treatment == nil {
		return constvars.ResponseUnknown
	}
	return treatment.Name
}

// enqueueBookingEmail resolves the patient's address and renders body with
// their name. Mail failures are logged and swallowed; the booking mutation has
// already been persisted.
func (uc *bookingUsecase) enqueueBookingEmail(ctx context.Context, log *zap.Logger, booking *models.Booking, subject string, body func(patientName string) string) {
	if subject == "" || body == nil {
		return
	}
	user, err := uc.UserRepository.FindByID(ctx, booking.UserID)
	if err != nil || user == nil {
		log.Error("enqueue email error finding recipient",
			zap.String(constvars.LoggingUserIDKey, booking.UserID), zap.Error(err))
		return
	}
	uc.enqueueEmail(ctx, log, user.Email, subject, body(user.Name))
}

func (uc *bookingUsecase) enqueueEmail(ctx context.Context, log *zap.Logger, to, subject, body string) {
	err := uc.MailerService.SendEmail(ctx, &requests.EmailPayload{
		To:      to,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		log.Error("enqueue email error",
			zap.String(constvars.LoggingEmailRecipientKey, to), zap.Error(err))
	}
}

func (uc *bookingUsecase) buildBookingResponse(ctx context.Context, booking *models.Booking) *responses.Booking {
	response := &responses.Booking{
		ID:                   booking.ID,
		Patient:              responses.BookingReference{ID: booking.UserID, Name: constvars.ResponseUnknown},
		Doctor:               responses.BookingReference{ID: booking.DoctorID, Name: constvars.ResponseUnknown},
		Clinic:               responses.BookingReference{ID: booking.ClinicID, Name: constvars.ResponseUnknown},
		Treatment:            responses.BookingReference{ID: booking.TreatmentID, Name: constvars.ResponseUnknown},
		PaymentID:            booking.PaymentID,
		NoOfSessionBook:      booking.NoOfSessionBook,
		SessionStatus:        booking.SessionStatus,
		SessionDates:         booking.SessionDates,
		SessionPrescriptions: booking.SessionPrescriptions,
		CancellationReason:   booking.CancellationReason,
		CreatedAt:            booking.CreatedAt,
		UpdatedAt:            booking.UpdatedAt,
	}

	if user, err := uc.UserRepository.FindByID(ctx, booking.UserID); err == nil && user != nil {
		response.Patient.Name = user.Name
	}
	if doctor, err := uc.DoctorRepository.FindByID(ctx, booking.DoctorID); err == nil && doctor != nil {
		response.Doctor.Name = doctor.Name
	}
	if clinic, err := uc.ClinicRepository.FindByID(ctx, booking.ClinicID); err == nil && clinic != nil {
		response.Clinic.Name = clinic.Name
	}
	if treatment, err := uc.TreatmentRepository.FindByID(ctx, booking.TreatmentID); err == nil && treatment != nil {
		response.Treatment.Name = treatment.Name
	}
	return response
}
