package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"
)

// Authenticate verifies the bearer token and injects the caller's identity
// into the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := m.verifyBearer(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), claims)))
	})
}

// RequireAdmin is Authenticate plus an admin role check.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := m.verifyBearer(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if claims.Role != constvars.RoleAdmin {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(fmt.Errorf("role %q cannot access %s", claims.Role, r.URL.Path)))
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), claims)))
	})
}

func (m *Middlewares) verifyBearer(r *http.Request) (*contracts.TokenClaims, error) {
	authorization := r.Header.Get(constvars.HeaderAuthorization)
	if authorization == "" {
		return nil, exceptions.ErrTokenMissing(fmt.Errorf("no authorization header"))
	}
	token := strings.TrimPrefix(authorization, "Bearer ")
	if token == authorization || token == "" {
		return nil, exceptions.ErrTokenMissing(fmt.Errorf("authorization header is not a bearer token"))
	}

	return m.AuthUsecase.VerifyToken(r.Context(), token)
}

func withIdentity(ctx context.Context, claims *contracts.TokenClaims) context.Context {
	ctx = context.WithValue(ctx, constvars.CONTEXT_USER_ID_KEY, claims.UserID)
	return context.WithValue(ctx, constvars.CONTEXT_USER_ROLE_KEY, claims.Role)
}
