package contracts

import (
	"context"

	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
)

// TokenClaims is the decoded identity carried in a bearer token.
type TokenClaims struct {
	UserID string
	Role   string
}

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.LoginRequest) (*responses.Login, error)
	Register(ctx context.Context, request *requests.RegisterRequest) (*responses.Login, error)
	VerifyToken(ctx context.Context, token string) (*TokenClaims, error)
}
