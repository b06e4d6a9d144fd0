package user

import (
	"context"

	"go-sfm/internal/domain"
	"go-sfm/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindExecutivesByManager(ctx context.Context, managerID string) ([]User, error)
	FindActiveExecutives(ctx context.Context) ([]User, error)
	FindByIDAndManager(ctx context.Context, managerID, id string) (*User, error)
	Update(ctx context.Context, u *User) error
	AssignTeam(ctx context.Context, userIDs []string, teamID *string) error
	ClearTeam(ctx context.Context, teamID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *repository) FindExecutivesByManager(ctx context.Context, managerID string) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Scopes(scope.ByManager(managerID)).
		Where("role = ?", domain.RoleExecutive).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) FindActiveExecutives(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Where("role = ?", domain.RoleExecutive).
		Where("is_active = ?", true).
		Find(&users).Error
	return users, err
}

func (r *repository) FindByIDAndManager(ctx context.Context, managerID, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Scopes(scope.ByManager(managerID)).
		First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *repository) AssignTeam(ctx context.Context, userIDs []string, teamID *string) error {
	if len(userIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("id IN ?", userIDs).
		Update("team_id", teamID).Error
}

func (r *repository) ClearTeam(ctx context.Context, teamID string) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("team_id = ?", teamID).
		Update("team_id", nil).Error
}
