package product

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	producterrors "go-sfm/internal/product/errors"
)

// OptionsKey caches the full product list; every executive recording a sale
// pulls it, so it is the hottest read in the system.
const OptionsKey = "products:options"

//go:generate mockgen -source=product_service.go -destination=mock/product_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, managerID string, req CreateProductRequest) (ProductResponse, error)
	GetOptions(ctx context.Context) ([]ProductResponse, error)
	GetByID(ctx context.Context, id string) (ProductResponse, error)
	Update(ctx context.Context, managerID, id string, req UpdateProductRequest) (ProductResponse, error)
	Delete(ctx context.Context, managerID, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("product.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("product.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, managerID string, req CreateProductRequest) (ProductResponse, error) {
	p := &Product{
		ID:        uuid.New(),
		Name:      req.Name,
		SKU:       skuPtr(req.SKU),
		Price:     req.Price,
		Category:  req.Category,
		CreatedBy: uuid.MustParse(managerID),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create product persist failed", zap.String("manager_id", managerID), zap.Error(err))
		return ProductResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)
	s.logger.Info("product created",
		zap.String("manager_id", managerID),
		zap.String("product_id", p.ID.String()),
	)
	return mapToResponse(*p), nil
}

func (s *service) GetOptions(ctx context.Context) ([]ProductResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsKey).Result(); err == nil {
			var resp []ProductResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsKey, func() (interface{}, error) {
		products, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(products)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, OptionsKey, jsonData, 1*time.Hour)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]ProductResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ProductResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, managerID, id string, req UpdateProductRequest) (ProductResponse, error) {
	p, err := s.repo.FindByIDAndCreator(ctx, managerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProductResponse{}, producterrors.ErrProductNotFound
		}
		return ProductResponse{}, err
	}

	p.Name = req.Name
	p.SKU = skuPtr(req.SKU)
	p.Price = req.Price
	p.Category = req.Category

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("update product persist failed", zap.String("product_id", id), zap.Error(err))
		return ProductResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)
	s.logger.Info("product updated", zap.String("manager_id", managerID), zap.String("product_id", id))
	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, managerID, id string) error {
	p, err := s.repo.FindByIDAndCreator(ctx, managerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return producterrors.ErrProductNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, p); err != nil {
		s.logger.Error("delete product failed", zap.String("product_id", id), zap.Error(err))
		return err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("product deleted", zap.String("manager_id", managerID), zap.String("product_id", id))
	return nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate product options cache",
			zap.Error(err),
			zap.String("key", OptionsKey),
		)
	}
}

func skuPtr(sku string) *string {
	if sku == "" {
		return nil
	}
	return &sku
}

func mapToResponse(p Product) ProductResponse {
	return ProductResponse{
		ID:       p.ID.String(),
		Name:     p.Name,
		SKU:      p.SKU,
		Price:    p.Price,
		Category: p.Category,
	}
}

func mapToListResponse(products []Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, mapToResponse(p))
	}
	return out
}
