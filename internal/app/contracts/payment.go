package contracts

import (
	"context"

	"clinicbook-service/internal/app/models"
)

type PaymentRepository interface {
	FindByID(ctx context.Context, paymentID string) (*models.Payment, error)
	Insert(ctx context.Context, payment *models.Payment) (string, error)
}
