package product

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=product_repo.go -destination=mock/product_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, p *Product) error
	FindAll(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id string) (*Product, error)
	FindByIDAndCreator(ctx context.Context, creatorID, id string) (*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, p *Product) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Product, error) {
	var rows []Product
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Product, error) {
	var p Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByIDAndCreator(ctx context.Context, creatorID, id string) (*Product, error) {
	var p Product
	err := r.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, creatorID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, p *Product) error {
	return r.db.WithContext(ctx).Delete(p).Error
}
