package contracts

import (
	"context"

	"clinicbook-service/internal/app/models"
)

type ClinicRepository interface {
	FindByID(ctx context.Context, clinicID string) (*models.Clinic, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Clinic, int, error)
}
