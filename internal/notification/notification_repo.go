package notification

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, n *Notification) error
	FindByUser(ctx context.Context, userID string, from, to *time.Time, limit int) ([]Notification, error)
	MarkAllRead(ctx context.Context, userID string) error
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

func (r *repository) Create(ctx context.Context, n *Notification) error {
	if r.tx != nil {
		query := `
			INSERT INTO notifications (id, user_id, message, link, type, is_read, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		`
		_, err := r.tx.ExecContext(ctx, query, n.ID, n.UserID, n.Message, n.Link, n.Type, n.IsRead)
		return err
	}
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) FindByUser(ctx context.Context, userID string, from, to *time.Time, limit int) ([]Notification, error) {
	db := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if from != nil {
		db = db.Where("created_at >= ?", *from)
	}
	if to != nil {
		db = db.Where("created_at < ?", *to)
	}

	var rows []Notification
	err := db.Order("created_at DESC").Limit(limit).Find(&rows).Error
	return rows, err
}

func (r *repository) MarkAllRead(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("user_id = ?", userID).
		Where("is_read = ?", false).
		Update("is_read", true).Error
}
