package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clinicbook-service/internal/app/config"
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceNewAuthUsecase  sync.Once
)

func NewAuthUsecase(userRepository contracts.UserRepository, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.AuthUsecase {
	onceNewAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository: userRepository,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginRequest) (*responses.Login, error) {
	log := uc.Log.With(zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)))
	log.Info("Login called", zap.String(constvars.LoggingEmailRecipientKey, request.Email))

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		log.Error("Login error finding user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidUsernameOrPassword(fmt.Errorf("no account for %s", request.Email))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		return nil, exceptions.ErrInvalidUsernameOrPassword(err)
	}

	token, err := uc.generateToken(user)
	if err != nil {
		log.Error("Login error generating token", zap.Error(err))
		return nil, err
	}

	log.Info("Login succeeded", zap.String(constvars.LoggingUserIDKey, user.ID))
	return &responses.Login{Token: token, User: *user}, nil
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterRequest) (*responses.Login, error) {
	log := uc.Log.With(zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)))
	log.Info("Register called", zap.String(constvars.LoggingEmailRecipientKey, request.Email))

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		log.Error("Register error finding user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(fmt.Errorf("email %s is taken", request.Email))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	user := &models.User{
		Name:      request.Name,
		Email:     request.Email,
		Password:  string(hashed),
		Phone:     request.Phone,
		Role:      constvars.RolePatient,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	userID, err := uc.UserRepository.Insert(ctx, user)
	if err != nil {
		log.Error("Register error inserting user", zap.Error(err))
		return nil, err
	}
	user.ID = userID

	token, err := uc.generateToken(user)
	if err != nil {
		log.Error("Register error generating token", zap.Error(err))
		return nil, err
	}

	log.Info("Register succeeded", zap.String(constvars.LoggingUserIDKey, userID))
	return &responses.Login{Token: token, User: *user}, nil
}

func (uc *authUsecase) VerifyToken(ctx context.Context, tokenString string) (*contracts.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(uc.InternalConfig.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, exceptions.ErrTokenInvalidOrExpired(fmt.Errorf("unexpected claims type"))
	}
	userID, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if userID == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(fmt.Errorf("token has no subject"))
	}

	return &contracts.TokenClaims{UserID: userID, Role: role}, nil
}

func (uc *authUsecase) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(uc.InternalConfig.JWT.Secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return signed, nil
}
