package sales

import (
	"context"
	"time"

	"go-sfm/internal/shared/scope"

	"gorm.io/gorm"
)

// TeamSale carries the executive's name alongside the sale for manager views.
type TeamSale struct {
	Sale
	ExecutiveName string
}

//go:generate mockgen -source=sales_repo.go -destination=mock/sales_repo_mock.go -package=mock
type Repository interface {
	// Create persists the sale and its items together.
	Create(ctx context.Context, s *Sale) error
	FindByExecutiveBetween(ctx context.Context, executiveID string, start, end time.Time) ([]Sale, error)
	// FindByManagerBetween returns the manager's team sales in [start, end),
	// optionally narrowed to one team via users.team_id.
	FindByManagerBetween(ctx context.Context, managerID string, teamID *string, start, end time.Time) ([]TeamSale, error)
	// SumAmountBetween totals sale amounts for the executive in [start, end).
	SumAmountBetween(ctx context.Context, executiveID string, start, end time.Time) (float64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Sale) error {
	// gorm cascades Items in the same transaction as the sale row.
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByExecutiveBetween(ctx context.Context, executiveID string, start, end time.Time) ([]Sale, error) {
	var rows []Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		Scopes(scope.ByExecutive(executiveID)).
		Where("sale_date >= ? AND sale_date < ?", start, end).
		Order("sale_date DESC, created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByManagerBetween(ctx context.Context, managerID string, teamID *string, start, end time.Time) ([]TeamSale, error) {
	db := r.db.WithContext(ctx).
		Table("sales").
		Select("sales.*, users.name AS executive_name").
		Joins("JOIN users ON users.id = sales.executive_id").
		Where("sales.manager_id = ?", managerID).
		Where("sales.sale_date >= ? AND sales.sale_date < ?", start, end)
	if teamID != nil {
		db = db.Where("users.team_id = ?", *teamID)
	}

	var rows []TeamSale
	if err := db.Order("sales.sale_date DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	// Scan does not hydrate associations; load items for the page in one query.
	if len(rows) > 0 {
		ids := make([]string, 0, len(rows))
		index := make(map[string]int, len(rows))
		for i, s := range rows {
			ids = append(ids, s.ID.String())
			index[s.ID.String()] = i
		}

		var items []SaleItem
		if err := r.db.WithContext(ctx).Where("sale_id IN ?", ids).Find(&items).Error; err != nil {
			return nil, err
		}
		for _, item := range items {
			if i, ok := index[item.SaleID.String()]; ok {
				rows[i].Items = append(rows[i].Items, item)
			}
		}
	}
	return rows, nil
}

func (r *repository) SumAmountBetween(ctx context.Context, executiveID string, start, end time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&Sale{}).
		Scopes(scope.ByExecutive(executiveID)).
		Where("sale_date >= ? AND sale_date < ?", start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
