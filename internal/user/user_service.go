package user

import (
	"context"
	"errors"

	usererrors "go-sfm/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	ListMyExecutives(ctx context.Context, managerID string) ([]UserResponse, error)
	SetActive(ctx context.Context, managerID, userID string, isActive bool) (UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) ListMyExecutives(ctx context.Context, managerID string) ([]UserResponse, error) {
	if _, err := uuid.Parse(managerID); err != nil {
		return nil, usererrors.ErrInvalidManagerID
	}

	users, err := s.repo.FindExecutivesByManager(ctx, managerID)
	if err != nil {
		s.logger.Error("list executives failed", zap.String("manager_id", managerID), zap.Error(err))
		return nil, err
	}
	return MapToListResponse(users), nil
}

func (s *service) SetActive(ctx context.Context, managerID, userID string, isActive bool) (UserResponse, error) {
	u, err := s.repo.FindByIDAndManager(ctx, managerID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	u.IsActive = isActive
	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("set active persist failed", zap.String("user_id", userID), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("user active flag updated",
		zap.String("user_id", userID),
		zap.Bool("is_active", isActive),
	)
	return MapToResponse(*u), nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	return MapToResponse(*u), nil
}

func MapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:             u.ID.String(),
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		IsActive:       u.IsActive,
		ProfilePicture: u.ProfilePicture,
	}
	if u.ManagerID != nil {
		v := u.ManagerID.String()
		resp.ManagerID = &v
	}
	if u.TeamID != nil {
		v := u.TeamID.String()
		resp.TeamID = &v
	}
	return resp
}

func MapToListResponse(users []User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = MapToResponse(u)
	}
	return resp
}
