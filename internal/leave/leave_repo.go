package leave

import (
	"context"
	"database/sql"

	"go-sfm/internal/shared/scope"

	"gorm.io/gorm"
)

// TeamLeave carries the executive's name alongside the leave row for the
// manager's review queue.
type TeamLeave struct {
	Leave
	ExecutiveName string
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindByExecutive(ctx context.Context, executiveID string) ([]Leave, error)
	FindByManager(ctx context.Context, managerID string) ([]TeamLeave, error)
	FindByIDAndManager(ctx context.Context, managerID, id string) (*Leave, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	if r.tx != nil {
		query := `
			INSERT INTO leaves (id, executive_id, manager_id, start_date, end_date, reason, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		`
		_, err := r.tx.ExecContext(ctx, query,
			l.ID, l.ExecutiveID, l.ManagerID, l.StartDate, l.EndDate, l.Reason, l.Status)
		return err
	}
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByExecutive(ctx context.Context, executiveID string) ([]Leave, error) {
	var rows []Leave
	err := r.db.WithContext(ctx).
		Scopes(scope.ByExecutive(executiveID)).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByManager(ctx context.Context, managerID string) ([]TeamLeave, error) {
	var rows []TeamLeave
	err := r.db.WithContext(ctx).
		Table("leaves").
		Select("leaves.*, users.name AS executive_name").
		Joins("JOIN users ON users.id = leaves.executive_id").
		Where("leaves.manager_id = ?", managerID).
		Order("leaves.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByIDAndManager(ctx context.Context, managerID, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Where("id = ? AND manager_id = ?", id, managerID).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx,
			`UPDATE leaves SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
		return err
	}
	return r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("id = ?", id).
		Update("status", status).Error
}
