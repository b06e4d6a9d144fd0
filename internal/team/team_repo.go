package team

import (
	"context"
	"database/sql"

	"go-sfm/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=team_repo.go -destination=mock/team_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Team) error
	FindByManager(ctx context.Context, managerID string) ([]Team, error)
	FindByIDAndManager(ctx context.Context, managerID, id string) (*Team, error)
	Delete(ctx context.Context, t *Team) error
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

func (r *repository) Create(ctx context.Context, t *Team) error {
	if r.tx != nil {
		query := `
			INSERT INTO teams (id, name, manager_id, created_at, updated_at)
			VALUES ($1, $2, $3, NOW(), NOW())
		`
		_, err := r.tx.ExecContext(ctx, query, t.ID, t.Name, t.ManagerID)
		return err
	}
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindByManager(ctx context.Context, managerID string) ([]Team, error) {
	var rows []Team
	err := r.db.WithContext(ctx).
		Scopes(scope.ByManager(managerID)).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByIDAndManager(ctx context.Context, managerID, id string) (*Team, error) {
	var t Team
	err := r.db.WithContext(ctx).
		Where("id = ? AND manager_id = ?", id, managerID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Delete(ctx context.Context, t *Team) error {
	return r.db.WithContext(ctx).Delete(t).Error
}
