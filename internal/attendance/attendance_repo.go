package attendance

import (
	"context"
	"time"

	"go-sfm/internal/shared/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	// Upsert inserts or, on a (executive_id, attendance_date) collision,
	// overwrites status and reason for that day.
	Upsert(ctx context.Context, a *Attendance) error
	// Create inserts without conflict handling; a 23505 on
	// uq_attendance_executive_date surfaces to the caller.
	Create(ctx context.Context, a *Attendance) error
	FindByExecutiveAndDate(ctx context.Context, executiveID string, date time.Time) (*Attendance, error)
	FindByExecutiveBetween(ctx context.Context, executiveID string, start, end time.Time) ([]Attendance, error)
	ListExecutiveIDsForDate(ctx context.Context, date time.Time) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "executive_id"}, {Name: "attendance_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "reason", "updated_at"}),
		}).
		Create(a).Error
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByExecutiveAndDate(ctx context.Context, executiveID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Scopes(scope.ByExecutive(executiveID)).
		Where("attendance_date = ?", date).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByExecutiveBetween(ctx context.Context, executiveID string, start, end time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Scopes(scope.ByExecutive(executiveID)).
		Where("attendance_date >= ? AND attendance_date < ?", start, end).
		Order("attendance_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListExecutiveIDsForDate(ctx context.Context, date time.Time) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("attendance_date = ?", date).
		Pluck("executive_id", &ids).Error
	return ids, err
}
