package product

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	producterrors "go-sfm/internal/product/errors"
)

type fakeRepo struct {
	createFn    func(ctx context.Context, p *Product) error
	findAllFn   func(ctx context.Context) ([]Product, error)
	byIDFn      func(ctx context.Context, id string) (*Product, error)
	byCreatorFn func(ctx context.Context, creatorID, id string) (*Product, error)
	updateFn    func(ctx context.Context, p *Product) error
	deleteFn    func(ctx context.Context, p *Product) error
}

func (f *fakeRepo) Create(ctx context.Context, p *Product) error { return f.createFn(ctx, p) }
func (f *fakeRepo) FindAll(ctx context.Context) ([]Product, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Product, error) {
	return f.byIDFn(ctx, id)
}
func (f *fakeRepo) FindByIDAndCreator(ctx context.Context, creatorID, id string) (*Product, error) {
	return f.byCreatorFn(ctx, creatorID, id)
}
func (f *fakeRepo) Update(ctx context.Context, p *Product) error { return f.updateFn(ctx, p) }
func (f *fakeRepo) Delete(ctx context.Context, p *Product) error { return f.deleteFn(ctx, p) }

func TestService_GetOptions_CacheHit(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	cached := []ProductResponse{{ID: uuid.New().String(), Name: "Widget", Price: 50}}
	payload, _ := json.Marshal(cached)
	mock.ExpectGet(OptionsKey).SetVal(string(payload))

	repoCalled := false
	repo := &fakeRepo{
		findAllFn: func(ctx context.Context) ([]Product, error) { repoCalled = true; return nil, nil },
	}

	svc := NewService(repo, rdb)
	resp, err := svc.GetOptions(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, cached, resp)
	assert.False(t, repoCalled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetOptions_CacheMissFillsRedis(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	p := Product{ID: uuid.New(), Name: "Widget", Price: 50}
	expected := mapToListResponse([]Product{p})
	payload, _ := json.Marshal(expected)

	mock.ExpectGet(OptionsKey).RedisNil()
	mock.ExpectSet(OptionsKey, payload, 1*time.Hour).SetVal("OK")

	repo := &fakeRepo{
		findAllFn: func(ctx context.Context) ([]Product, error) { return []Product{p}, nil },
	}

	svc := NewService(repo, rdb)
	resp, err := svc.GetOptions(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, resp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_InvalidatesOptionsCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel(OptionsKey).SetVal(1)

	var saved Product
	repo := &fakeRepo{
		createFn: func(ctx context.Context, p *Product) error { saved = *p; return nil },
	}

	managerID := uuid.New().String()
	svc := NewService(repo, rdb)
	resp, err := svc.Create(context.Background(), managerID, CreateProductRequest{
		Name:  "Widget",
		SKU:   "WID-1",
		Price: 50,
	})

	assert.NoError(t, err)
	assert.Equal(t, managerID, saved.CreatedBy.String())
	assert.Equal(t, "WID-1", *resp.SKU)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_EmptySKUStoredAsNull(t *testing.T) {
	var saved Product
	repo := &fakeRepo{
		createFn: func(ctx context.Context, p *Product) error { saved = *p; return nil },
	}

	svc := NewService(repo, nil)
	_, err := svc.Create(context.Background(), uuid.New().String(), CreateProductRequest{
		Name:  "Widget",
		Price: 50,
	})

	assert.NoError(t, err)
	assert.Nil(t, saved.SKU)
}

func TestService_Update_OwnerScoped(t *testing.T) {
	repo := &fakeRepo{
		byCreatorFn: func(ctx context.Context, creatorID, id string) (*Product, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(repo, nil)
	_, err := svc.Update(context.Background(), uuid.New().String(), uuid.New().String(), UpdateProductRequest{
		Name:  "Widget",
		Price: 75,
	})
	assert.ErrorIs(t, err, producterrors.ErrProductNotFound)
}

func TestService_Delete_InvalidatesOptionsCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel(OptionsKey).SetVal(1)

	managerID := uuid.New()
	p := Product{ID: uuid.New(), Name: "Widget", CreatedBy: managerID}
	deleted := false
	repo := &fakeRepo{
		byCreatorFn: func(ctx context.Context, creatorID, id string) (*Product, error) { return &p, nil },
		deleteFn:    func(ctx context.Context, p *Product) error { deleted = true; return nil },
	}

	svc := NewService(repo, rdb)
	assert.NoError(t, svc.Delete(context.Background(), managerID.String(), p.ID.String()))
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
