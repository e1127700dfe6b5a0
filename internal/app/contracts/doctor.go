package contracts

import (
	"context"
	"io"
	"mime/multipart"

	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/dto/requests"
)

type DoctorRepository interface {
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Doctor, int, error)
	Insert(ctx context.Context, doctor *models.Doctor) (string, error)
	Update(ctx context.Context, doctor *models.Doctor) error
	DeleteByID(ctx context.Context, doctorID string) error
}

type DoctorUsecase interface {
	FindAll(ctx context.Context, pagination *requests.Pagination) ([]models.Doctor, int, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	Create(ctx context.Context, request *requests.CreateDoctorRequest) (*models.Doctor, error)
	Update(ctx context.Context, doctorID string, request *requests.UpdateDoctorRequest) (*models.Doctor, error)
	Delete(ctx context.Context, doctorID string) error
	UploadAvatar(ctx context.Context, doctorID string, file io.Reader, fileHeader *multipart.FileHeader) (*models.Doctor, error)
}
