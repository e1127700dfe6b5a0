package contracts

import (
	"context"

	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/dto/requests"
)

type TreatmentRepository interface {
	FindByID(ctx context.Context, treatmentID string) (*models.Treatment, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Treatment, int, error)
	Insert(ctx context.Context, treatment *models.Treatment) (string, error)
	Update(ctx context.Context, treatment *models.Treatment) error
}

type TreatmentUsecase interface {
	FindAll(ctx context.Context, pagination *requests.Pagination) ([]models.Treatment, int, error)
	Create(ctx context.Context, request *requests.CreateTreatmentRequest) (*models.Treatment, error)
	Update(ctx context.Context, treatmentID string, request *requests.UpdateTreatmentRequest) (*models.Treatment, error)
}
