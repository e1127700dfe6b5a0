package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinicbook-service/internal/app/config"
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
	"clinicbook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubAuthUsecase struct {
	claims *contracts.TokenClaims
	err    error
}

func (s *stubAuthUsecase) Login(ctx context.Context, request *requests.LoginRequest) (*responses.Login, error) {
	return nil, nil
}

func (s *stubAuthUsecase) Register(ctx context.Context, request *requests.RegisterRequest) (*responses.Login, error) {
	return nil, nil
}

func (s *stubAuthUsecase) VerifyToken(ctx context.Context, token string) (*contracts.TokenClaims, error) {
	return s.claims, s.err
}

func newTestMiddlewares(authUsecase contracts.AuthUsecase) *Middlewares {
	return NewMiddlewares(zap.NewNop(), authUsecase, &config.InternalConfig{})
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := newTestMiddlewares(nil)

	t.Run("generates an ID when the client sends none", func(t *testing.T) {
		var seen string
		handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		req := httptest.NewRequest("GET", "/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX), "generated IDs carry the service prefix")
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID), "the ID is echoed back to the client")
	})

	t.Run("keeps a client-supplied ID", func(t *testing.T) {
		var seen string
		handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id-123", seen)
	})
}

func TestErrorHandler(t *testing.T) {
	middlewares := newTestMiddlewares(nil)

	handler := middlewares.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code, "a panic becomes a 500 response")
	assert.Contains(t, rr.Body.String(), `"success":false`)
}

func TestRequireAdmin(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("admin token passes and injects identity", func(t *testing.T) {
		middlewares := newTestMiddlewares(&stubAuthUsecase{claims: &contracts.TokenClaims{UserID: "u1", Role: constvars.RoleAdmin}})

		var userID, role string
		handler := middlewares.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, _ = r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
			role, _ = r.Context().Value(constvars.CONTEXT_USER_ROLE_KEY).(string)
		}))

		req := httptest.NewRequest("POST", "/admin-changes-sessions", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer token")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "u1", userID)
		assert.Equal(t, constvars.RoleAdmin, role)
	})

	t.Run("a non-admin role is a 403", func(t *testing.T) {
		middlewares := newTestMiddlewares(&stubAuthUsecase{claims: &contracts.TokenClaims{UserID: "u2", Role: constvars.RolePatient}})

		req := httptest.NewRequest("POST", "/admin-changes-sessions", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer token")
		rr := httptest.NewRecorder()
		middlewares.RequireAdmin(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("a missing bearer token is a 401", func(t *testing.T) {
		middlewares := newTestMiddlewares(&stubAuthUsecase{})

		req := httptest.NewRequest("POST", "/admin-changes-sessions", nil)
		rr := httptest.NewRecorder()
		middlewares.RequireAdmin(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("an invalid token is a 401", func(t *testing.T) {
		middlewares := newTestMiddlewares(&stubAuthUsecase{err: exceptions.ErrTokenInvalidOrExpired(nil)})

		req := httptest.NewRequest("POST", "/admin-changes-sessions", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer bad-token")
		rr := httptest.NewRecorder()
		middlewares.RequireAdmin(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
