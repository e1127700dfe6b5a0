package contracts

import (
	"context"
	"io"
	"mime/multipart"

	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
)

type BookingRepository interface {
	// FindByID returns (nil, nil) when no booking matches.
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Booking, int, error)
	FindByUserID(ctx context.Context, userID string, page, pageSize int) ([]models.Booking, int, error)
	Insert(ctx context.Context, booking *models.Booking) (string, error)
	Update(ctx context.Context, booking *models.Booking) error
	// WithTransaction runs fn inside a mongo session transaction; fn must use
	// the ctx it receives for every repository call it makes.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UpsertPrescriptionInput bundles the multipart form fields with the uploaded
// file stream.
type UpsertPrescriptionInput struct {
	Request    *requests.UpsertSessionPrescriptionRequest
	File       io.Reader
	FileHeader *multipart.FileHeader
}

type BookingUsecase interface {
	CreateBooking(ctx context.Context, userID string, request *requests.CreateBookingRequest) (*responses.Booking, error)
	FindAll(ctx context.Context, pagination *requests.Pagination) ([]responses.Booking, int, error)
	FindByID(ctx context.Context, bookingID string) (*responses.Booking, error)
	ChangeSessionInformation(ctx context.Context, request *requests.ChangeSessionInformationRequest) (*responses.Booking, error)
	AddNextSession(ctx context.Context, request *requests.AddNextSessionRequest) (*responses.Booking, error)
	UpsertSessionPrescription(ctx context.Context, input *UpsertPrescriptionInput) (*responses.Booking, error)
	CancelBooking(ctx context.Context, bookingID, reason string) (*responses.Booking, error)
}
