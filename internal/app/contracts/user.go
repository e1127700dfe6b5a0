package contracts

import (
	"context"

	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/dto/requests"
)

type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.User, int, error)
	Insert(ctx context.Context, user *models.User) (string, error)
}

type UserUsecase interface {
	FindAll(ctx context.Context, pagination *requests.Pagination) ([]models.User, int, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
}
