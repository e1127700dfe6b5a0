package users

import (
	"context"
	"fmt"
	"sync"

	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceNewUserUsecase  sync.Once
)

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.UserUsecase {
	onceNewUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository: userRepository,
			Log:            logger,
		}
	})
	return userUsecaseInstance
}

func (uc *userUsecase) FindAll(ctx context.Context, pagination *requests.Pagination) ([]models.User, int, error) {
	log := uc.Log.With(zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)))
	log.Info("FindAll users called", zap.Any(constvars.LoggingQueryParamsKey, pagination))

	users, total, err := uc.UserRepository.FindAll(ctx, pagination.Page, pagination.PageSize)
	if err != nil {
		log.Error("FindAll users error", zap.Error(err))
		return nil, 0, err
	}

	log.Info("FindAll users succeeded", zap.Int(constvars.LoggingResponseLengthKey, len(users)))
	return users, total, nil
}

func (uc *userUsecase) Profile(ctx context.Context, userID string) (*models.User, error) {
	log := uc.Log.With(zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)))
	log.Info("Profile called", zap.String(constvars.LoggingUserIDKey, userID))

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		log.Error("Profile error", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(fmt.Errorf("user %s does not exist", userID))
	}

	log.Info("Profile succeeded", zap.String(constvars.LoggingUserIDKey, userID))
	return user, nil
}
