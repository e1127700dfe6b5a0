package doctors

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"sync"
	"time"

	"clinicbook-service/internal/app/config"
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	ClinicRepository contracts.ClinicRepository
	Storage          contracts.Storage
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceNewDoctorUsecase  sync.Once
)

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	clinicRepository contracts.ClinicRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceNewDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository: doctorRepository,
			ClinicRepository: clinicRepository,
			Storage:          storage,
			InternalConfig:   internalConfig,
			Log:              logger,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) FindAll(ctx context.Context, pagination *requests.Pagination) ([]models.Doctor, int, error) {
	log := uc.Log.With(zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)))
	log.Info("FindAll doctors called", zap.Any(constvars.LoggingQueryParamsKey, pagination))

	doctors, total, err := uc.DoctorRepository.FindAll(ctx, pagination.Page, pagination.PageSize)
	if err != nil {
		log.Error("FindAll doctors error", zap.Error(err))
		return nil, 0, err
	}

	log.Info("FindAll doctors succeeded", zap.Int(constvars.LoggingResponseLengthKey, len(doctors)))
	return doctors, total, nil
}

func (uc *doctorUsecase) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	log := uc.Log.With(zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)))
	log.Info("FindByID doctor called", zap.String(constvars.LoggingDoctorIDKey, doctorID))

	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		log.Error("FindByID doctor error", zap.Error(err))
		return nil, err
	}
	return doctor, nil
}

func (uc *doctorUsecase) Create(ctx context.Context, request *requests.CreateDoctorRequest) (*models.Doctor, error) {
	log := uc.Log.With(zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)))
	log.Info("Create doctor called", zap.String("name", request.Name))

	clinic, err := uc.ClinicRepository.FindByID(ctx, request.ClinicID)
	if err != nil {
		log.Error("Create doctor error finding clinic", zap.Error(err))
		return nil, err
	}
	if clinic == nil {
		return nil, exceptions.ErrClinicNotFound(fmt.Errorf("clinic %s does not exist", request.ClinicID))
	}

	now := time.Now()
	doctor := &models.Doctor{
		Name:           request.Name,
		Email:          request.Email,
		Phone:          request.Phone,
		Specialization: request.Specialization,
		ClinicID:       request.ClinicID,
		Treatments:     request.Treatments,
		Active:         true,
		TimeModel:      models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	doctorID, err := uc.DoctorRepository.Insert(ctx, doctor)
	if err != nil {
		log.Error("Create doctor error", zap.Error(err))
		return nil, err
	}
	doctor.ID = doctorID

	log.Info("Create doctor succeeded", zap.String(constvars.LoggingDoctorIDKey, doctorID))
	return doctor, nil
}

func (uc *doctorUsecase) Update(ctx context.Context, doctorID string, request *requests.UpdateDoctorRequest) (*models.Doctor, error) {
	log := uc.Log.With(zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)))
	log.Info("Update doctor called", zap.String(constvars.LoggingDoctorIDKey, doctorID))

	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		log.Error("Update doctor error finding doctor", zap.Error(err))
		return nil, err
	}

	if request.Name != "" {
		doctor.Name = request.Name
	}
	if request.Email != "" {
		doctor.Email = request.Email
	}
	if request.Phone != "" {
		doctor.Phone = request.Phone
	}
	if request.Specialization != "" {
		doctor.Specialization = request.Specialization
	}
	if request.ClinicID != "" {
		doctor.ClinicID = request.ClinicID
	}
	if request.Treatments != nil {
		doctor.Treatments = request.Treatments
	}
	if request.Active != nil {
		doctor.Active = *request.Active
	}
	doctor.UpdatedAt = time.Now()

	if err := uc.DoctorRepository.Update(ctx, doctor); err != nil {
		log.Error("Update doctor error", zap.Error(err))
		return nil, err
	}

	log.Info("Update doctor succeeded", zap.String(constvars.LoggingDoctorIDKey, doctorID))
	return doctor, nil
}

func (uc *doctorUsecase) Delete(ctx context.Context, doctorID string) error {
	log := uc.Log.With(zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)))
	log.Info("Delete doctor called", zap.String(constvars.LoggingDoctorIDKey, doctorID))

	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		log.Error("Delete doctor error finding doctor", zap.Error(err))
		return err
	}

	if err := uc.DoctorRepository.DeleteByID(ctx, doctorID); err != nil {
		log.Error("Delete doctor error", zap.Error(err))
		return err
	}

	if doctor.AvatarObjectName != "" {
		if err := uc.Storage.DeleteFile(ctx, doctor.AvatarObjectName); err != nil {
			log.Error("Delete doctor error deleting avatar",
				zap.String(constvars.LoggingObjectNameKey, doctor.AvatarObjectName), zap.Error(err))
		}
	}

	log.Info("Delete doctor succeeded", zap.String(constvars.LoggingDoctorIDKey, doctorID))
	return nil
}

// UploadAvatar stores the new image, points the doctor at it, then deletes the
// previous image once the record is saved.
func (uc *doctorUsecase) UploadAvatar(ctx context.Context, doctorID string, file io.Reader, fileHeader *multipart.FileHeader) (*models.Doctor, error) {
	log := uc.Log.With(zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)))
	log.Info("UploadAvatar called", zap.String(constvars.LoggingDoctorIDKey, doctorID))

	if file == nil || fileHeader == nil {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("avatar file is missing"))
	}
	contentType := fileHeader.Header.Get(constvars.HeaderContentType)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("unsupported content type %q", contentType))
	}
	maxSize := uc.InternalConfig.App.DoctorAvatarMaxUploadSizeInMB * 1024 * 1024
	if fileHeader.Size > maxSize {
		return nil, exceptions.ErrFileTooLarge(fmt.Errorf("file is %d bytes, limit is %d", fileHeader.Size, maxSize))
	}

	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		log.Error("UploadAvatar error finding doctor", zap.Error(err))
		return nil, err
	}

	objectName := utils.GenerateDoctorAvatarObjectName(doctorID, fileHeader.Filename)
	uploaded, err := uc.Storage.UploadFile(ctx, file, fileHeader.Size, contentType, objectName)
	if err != nil {
		log.Error("UploadAvatar error uploading file", zap.Error(err))
		return nil, err
	}

	oldObjectName := doctor.AvatarObjectName
	doctor.AvatarURL = uploaded.URL
	doctor.AvatarObjectName = uploaded.ObjectName
	doctor.UpdatedAt = time.Now()

	if err := uc.DoctorRepository.Update(ctx, doctor); err != nil {
		log.Error("UploadAvatar error updating doctor", zap.Error(err))
		if deleteErr := uc.Storage.DeleteFile(ctx, uploaded.ObjectName); deleteErr != nil {
			log.Error("UploadAvatar error deleting orphaned upload",
				zap.String(constvars.LoggingObjectNameKey, uploaded.ObjectName), zap.Error(deleteErr))
		}
		return nil, err
	}

	if oldObjectName != "" {
		if err := uc.Storage.DeleteFile(ctx, oldObjectName); err != nil {
			log.Error("UploadAvatar error deleting replaced avatar",
				zap.String(constvars.LoggingObjectNameKey, oldObjectName), zap.Error(err))
		}
	}

	log.Info("UploadAvatar succeeded",
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingObjectNameKey, uploaded.ObjectName),
	)
	return doctor, nil
}

func (uc *doctorUsecase) findDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s does not exist", doctorID))
	}
	return doctor, nil
}
