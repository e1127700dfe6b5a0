package treatments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type treatmentUsecase struct {
	TreatmentRepository contracts.TreatmentRepository
	Log                 *zap.Logger
}

var (
	treatmentUsecaseInstance contracts.TreatmentUsecase
	onceNewTreatmentUsecase  sync.Once
)

func NewTreatmentUsecase(treatmentRepository contracts.TreatmentRepository, logger *zap.Logger) contracts.TreatmentUsecase {
	onceNewTreatmentUsecase.Do(func() {
		treatmentUsecaseInstance = &treatmentUsecase{
			TreatmentRepository: treatmentRepository,
			Log:                 logger,
		}
	})
	return treatmentUsecaseInstance
}

func (uc *treatmentUsecase) FindAll(ctx context.Context, pagination *requests.Pagination) ([]models.Treatment, int, error) {
	log := uc.Log.With(zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)))
	log.Info("FindAll treatments called", zap.Any(constvars.LoggingQueryParamsKey, pagination))

	treatments, total, err := uc.TreatmentRepository.FindAll(ctx, pagination.Page, pagination.PageSize)
	if err != nil {
		log.Error("FindAll treatments error", zap.Error(err))
		return nil, 0, err
	}

	log.Info("FindAll treatments succeeded", zap.Int(constvars.LoggingResponseLengthKey, len(treatments)))
	return treatments, total, nil
}

func (uc *treatmentUsecase) Create(ctx context.Context, request *requests.CreateTreatmentRequest) (*models.Treatment, error) {
	log := uc.Log.With(zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)))
	log.Info("Create treatment called", zap.String("name", request.Name))

	now := time.Now()
	treatment := &models.Treatment{
		Name:            request.Name,
		Description:     request.Description,
		PricePerSession: request.PricePerSession,
		DurationMinutes: request.DurationMinutes,
		Active:          true,
		TimeModel:       models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	treatmentID, err := uc.TreatmentRepository.Insert(ctx, treatment)
	if err != nil {
		log.Error("Create treatment error", zap.Error(err))
		return nil, err
	}
	treatment.ID = treatmentID

	log.Info("Create treatment succeeded", zap.String(constvars.LoggingTreatmentIDKey, treatmentID))
	return treatment, nil
}

func (uc *treatmentUsecase) Update(ctx context.Context, treatmentID string, request *requests.UpdateTreatmentRequest) (*models.Treatment, error) {
	log := uc.Log.With(zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)))
	log.Info("Update treatment called", zap.String(constvars.LoggingTreatmentIDKey, treatmentID))

	treatment, err := uc.TreatmentRepository.FindByID(ctx, treatmentID)
	if err != nil {
		log.Error("Update treatment error finding treatment", zap.Error(err))
		return nil, err
	}
	if treatment == nil {
		return nil, exceptions.ErrTreatmentNotFound(fmt.Errorf("treatment %s does not exist", treatmentID))
	}

	if request.Name != "" {
		treatment.Name = request.Name
	}
	if request.Description != "" {
		treatment.Description = request.Description
	}
	if request.PricePerSession != nil {
		treatment.PricePerSession = *request.PricePerSession
	}
	if request.DurationMinutes != nil {
		treatment.DurationMinutes = *request.DurationMinutes
	}
	if request.Active != nil {
		treatment.Active = *request.Active
	}
	treatment.UpdatedAt = time.Now()

	if err := uc.TreatmentRepository.Update(ctx, treatment); err != nil {
		log.Error("Update treatment error", zap.Error(err))
		return nil, err
	}

	log.Info("Update treatment succeeded", zap.String(constvars.LoggingTreatmentIDKey, treatmentID))
	return treatment, nil
}
