package auth

import (
	"context"
	"errors"
	"os"
	"strings"

	autherrors "go-sfm/internal/auth/errors"
	"go-sfm/internal/domain"
	"go-sfm/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (AuthResponse, error)
	RegisterExecutive(ctx context.Context, managerID string, req RegisterExecutiveRequest) (AuthResponse, error)
}

type service struct {
	users  user.Repository
	logger *zap.Logger
}

func NewService(users user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (string, string, AuthResponse, error) {
	u, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if !u.IsActive {
		s.logger.Warn("login rejected for inactive user", zap.String("user_id", u.ID.String()))
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := generateTokenPair(u.ID.String(), u.Role)
	if err != nil {
		s.logger.Error("login token generation failed", zap.Error(err))
		return "", "", AuthResponse{}, err
	}

	s.logger.Info("login success", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
	return accessToken, refreshToken, mapToAuthResponse(*u), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_REFRESH_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil || !u.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}

	newAccessToken, newRefreshToken, err := generateTokenPair(u.ID.String(), u.Role)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	return newAccessToken, newRefreshToken, mapToAuthResponse(*u), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (AuthResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrUserNotFound
		}
		return AuthResponse{}, err
	}
	return mapToAuthResponse(*u), nil
}

func (s *service) RegisterExecutive(ctx context.Context, managerID string, req RegisterExecutiveRequest) (AuthResponse, error) {
	managerUUID, err := uuid.Parse(managerID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidToken
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	u := &user.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleExecutive,
		ManagerID:    &managerUUID,
		IsActive:     true,
	}
	if req.TeamID != "" {
		teamUUID, err := uuid.Parse(req.TeamID)
		if err != nil {
			return AuthResponse{}, autherrors.ErrInvalidToken
		}
		u.TeamID = &teamUUID
	}

	if err := s.users.Create(ctx, u); err != nil {
		s.logger.Error("register executive persist failed", zap.Error(err))
		return AuthResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("executive registered",
		zap.String("user_id", u.ID.String()),
		zap.String("manager_id", managerID),
	)
	return mapToAuthResponse(*u), nil
}

func mapToAuthResponse(u user.User) AuthResponse {
	resp := AuthResponse{
		ID:             u.ID.String(),
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
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
