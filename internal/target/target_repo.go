package target

import (
	"context"
	"time"

	"go-sfm/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=target_repo.go -destination=mock/target_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, t *Target) error
	// FindOverlapping returns targets for the executive whose inclusive
	// period intersects [start, end], optionally excluding one id.
	FindOverlapping(ctx context.Context, executiveID string, start, end time.Time, excludeID *string) ([]Target, error)
	FindByExecutive(ctx context.Context, executiveID string) ([]Target, error)
	FindByManager(ctx context.Context, managerID string) ([]Target, error)
	FindByManagerStartingIn(ctx context.Context, managerID string, monthStart, monthEnd time.Time) ([]Target, error)
	FindByIDAndManager(ctx context.Context, managerID, id string) (*Target, error)
	Update(ctx context.Context, t *Target) error
	Delete(ctx context.Context, t *Target) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Target) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindOverlapping(ctx context.Context, executiveID string, start, end time.Time, excludeID *string) ([]Target, error) {
	db := r.db.WithContext(ctx).
		Scopes(scope.ByExecutive(executiveID)).
		Where("start_date <= ? AND end_date >= ?", end, start)
	if excludeID != nil {
		db = db.Where("id <> ?", *excludeID)
	}

	var rows []Target
	err := db.Find(&rows).Error
	return rows, err
}

func (r *repository) FindByExecutive(ctx context.Context, executiveID string) ([]Target, error) {
	var rows []Target
	err := r.db.WithContext(ctx).
		Scopes(scope.ByExecutive(executiveID)).
		Order("start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByManager(ctx context.Context, managerID string) ([]Target, error) {
	var rows []Target
	err := r.db.WithContext(ctx).
		Scopes(scope.ByManager(managerID)).
		Order("start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByManagerStartingIn(ctx context.Context, managerID string, monthStart, monthEnd time.Time) ([]Target, error) {
	var rows []Target
	err := r.db.WithContext(ctx).
		Scopes(scope.ByManager(managerID)).
		Where("start_date >= ? AND start_date < ?", monthStart, monthEnd).
		Order("start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByIDAndManager(ctx context.Context, managerID, id string) (*Target, error) {
	var t Target
	err := r.db.WithContext(ctx).
		Where("id = ? AND manager_id = ?", id, managerID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Update(ctx context.Context, t *Target) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, t *Target) error {
	return r.db.WithContext(ctx).Delete(t).Error
}
