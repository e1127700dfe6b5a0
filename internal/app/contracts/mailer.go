package contracts

import (
	"context"

	"clinicbook-service/internal/pkg/dto/requests"
)

// MailerService enqueues transactional email jobs; delivery happens in the
// background mail worker.
type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
}
