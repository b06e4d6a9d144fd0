package sales

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"go-sfm/internal/product"
	saleserrors "go-sfm/internal/sales/errors"
	"go-sfm/internal/team"
	"go-sfm/internal/user"
)

type fakeRepo struct {
	createFn    func(ctx context.Context, s *Sale) error
	byExecutive func(ctx context.Context, executiveID string, start, end time.Time) ([]Sale, error)
	byManager   func(ctx context.Context, managerID string, teamID *string, start, end time.Time) ([]TeamSale, error)
	sumFn       func(ctx context.Context, executiveID string, start, end time.Time) (float64, error)
}

func (f *fakeRepo) Create(ctx context.Context, s *Sale) error { return f.createFn(ctx, s) }
func (f *fakeRepo) FindByExecutiveBetween(ctx context.Context, executiveID string, start, end time.Time) ([]Sale, error) {
	return f.byExecutive(ctx, executiveID, start, end)
}
func (f *fakeRepo) FindByManagerBetween(ctx context.Context, managerID string, teamID *string, start, end time.Time) ([]TeamSale, error) {
	return f.byManager(ctx, managerID, teamID, start, end)
}
func (f *fakeRepo) SumAmountBetween(ctx context.Context, executiveID string, start, end time.Time) (float64, error) {
	return f.sumFn(ctx, executiveID, start, end)
}

type fakeUserRepo struct {
	byID map[string]*user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) FindExecutivesByManager(ctx context.Context, managerID string) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindActiveExecutives(ctx context.Context) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindByIDAndManager(ctx context.Context, managerID, id string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) AssignTeam(ctx context.Context, userIDs []string, teamID *string) error {
	return nil
}
func (f *fakeUserRepo) ClearTeam(ctx context.Context, teamID string) error { return nil }

type fakeProducts struct {
	byID map[string]*product.Product
}

func (f *fakeProducts) FindByID(ctx context.Context, id string) (*product.Product, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeTeams struct {
	owned map[string]bool
}

func (f *fakeTeams) FindByIDAndManager(ctx context.Context, managerID, id string) (*team.Team, error) {
	if f.owned[id] {
		return &team.Team{ID: uuid.MustParse(id)}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeCounter struct {
	next int64
}

func (f *fakeCounter) GetNextValue(ctx context.Context, managerID string, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

func TestService_Record_ComputesAmountFromCapturedPrices(t *testing.T) {
	managerID := uuid.New()
	executive := &user.User{ID: uuid.New(), ManagerID: &managerID}

	widget := &product.Product{ID: uuid.New(), Name: "Widget", Price: 50}
	gadget := &product.Product{ID: uuid.New(), Name: "Gadget", Price: 20}

	var saved Sale
	repo := &fakeRepo{createFn: func(ctx context.Context, s *Sale) error { saved = *s; return nil }}
	users := &fakeUserRepo{byID: map[string]*user.User{executive.ID.String(): executive}}
	products := &fakeProducts{byID: map[string]*product.Product{
		widget.ID.String(): widget,
		gadget.ID.String(): gadget,
	}}

	svc := NewService(repo, users, products, &fakeTeams{}, &fakeCounter{})
	resp, err := svc.Record(context.Background(), executive.ID.String(), RecordSaleRequest{
		Date:     "2026-03-15",
		Location: "Springfield",
		Items: []SaleItemRequest{
			{ProductID: widget.ID.String(), Quantity: 10},
			{ProductID: gadget.ID.String(), Quantity: 5},
		},
	})

	assert.NoError(t, err)
	// 10x50 + 5x20
	assert.Equal(t, 600.0, resp.Amount)
	assert.Equal(t, "SLS-000001", resp.ReceiptNo)
	assert.Equal(t, managerID, saved.ManagerID)
	assert.Len(t, saved.Items, 2)
	assert.Equal(t, 50.0, saved.Items[0].PricePerUnit)
}

func TestService_Record_PriceChangesDoNotAffectRecordedSales(t *testing.T) {
	managerID := uuid.New()
	executive := &user.User{ID: uuid.New(), ManagerID: &managerID}
	widget := &product.Product{ID: uuid.New(), Name: "Widget", Price: 50}

	var saved Sale
	repo := &fakeRepo{createFn: func(ctx context.Context, s *Sale) error { saved = *s; return nil }}
	users := &fakeUserRepo{byID: map[string]*user.User{executive.ID.String(): executive}}
	products := &fakeProducts{byID: map[string]*product.Product{widget.ID.String(): widget}}

	svc := NewService(repo, users, products, &fakeTeams{}, &fakeCounter{})
	_, err := svc.Record(context.Background(), executive.ID.String(), RecordSaleRequest{
		Date:     "2026-03-15",
		Location: "Springfield",
		Items:    []SaleItemRequest{{ProductID: widget.ID.String(), Quantity: 2}},
	})
	assert.NoError(t, err)

	// the catalog price moves afterwards; the stored item keeps the old one
	widget.Price = 90
	assert.Equal(t, 50.0, saved.Items[0].PricePerUnit)
	assert.Equal(t, 100.0, saved.Amount)
}

func TestService_Record_Validation(t *testing.T) {
	managerID := uuid.New()
	executive := &user.User{ID: uuid.New(), ManagerID: &managerID}
	users := &fakeUserRepo{byID: map[string]*user.User{executive.ID.String(): executive}}

	svc := NewService(&fakeRepo{}, users, &fakeProducts{}, &fakeTeams{}, &fakeCounter{})

	_, err := svc.Record(context.Background(), executive.ID.String(), RecordSaleRequest{
		Date: "2026-03-15", Location: "Springfield",
	})
	assert.ErrorIs(t, err, saleserrors.ErrEmptyItems)

	_, err = svc.Record(context.Background(), executive.ID.String(), RecordSaleRequest{
		Date: "2026-03-15", Location: "  ",
		Items: []SaleItemRequest{{ProductID: uuid.New().String(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, saleserrors.ErrMissingLocation)

	_, err = svc.Record(context.Background(), executive.ID.String(), RecordSaleRequest{
		Date: "bad-date", Location: "Springfield",
		Items: []SaleItemRequest{{ProductID: uuid.New().String(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, saleserrors.ErrInvalidDate)

	_, err = svc.Record(context.Background(), executive.ID.String(), RecordSaleRequest{
		Date: "2026-03-15", Location: "Springfield",
		Items: []SaleItemRequest{{ProductID: uuid.New().String(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, saleserrors.ErrUnknownProduct)
}

func TestService_MySales_WindowShapes(t *testing.T) {
	executiveID := uuid.New().String()

	var gotStart, gotEnd time.Time
	repo := &fakeRepo{
		byExecutive: func(ctx context.Context, eid string, start, end time.Time) ([]Sale, error) {
			gotStart, gotEnd = start, end
			return nil, nil
		},
	}
	svc := NewService(repo, &fakeUserRepo{}, &fakeProducts{}, &fakeTeams{}, &fakeCounter{})

	t.Run("single day", func(t *testing.T) {
		_, err := svc.MySales(context.Background(), executiveID, SalesFilterRequest{Date: "2026-03-15"})
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), gotStart)
		assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), gotEnd)
	})

	t.Run("month", func(t *testing.T) {
		_, err := svc.MySales(context.Background(), executiveID, SalesFilterRequest{Year: 2026, Month: 3})
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), gotStart)
		assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), gotEnd)
	})
}

func TestService_TeamSales_ForeignTeamForbidden(t *testing.T) {
	repo := &fakeRepo{
		byManager: func(ctx context.Context, mid string, teamID *string, start, end time.Time) ([]TeamSale, error) {
			t.Fatal("query should not run for a foreign team")
			return nil, nil
		},
	}
	svc := NewService(repo, &fakeUserRepo{}, &fakeProducts{}, &fakeTeams{owned: map[string]bool{}}, &fakeCounter{})

	_, err := svc.TeamSales(context.Background(), uuid.New().String(), TeamSalesFilterRequest{
		Year: 2026, Month: 3, TeamID: uuid.New().String(),
	})
	assert.ErrorIs(t, err, saleserrors.ErrTeamNotManaged)
}

func TestService_TeamSales_OwnTeamNarrowsQuery(t *testing.T) {
	managerID := uuid.New().String()
	teamID := uuid.New().String()

	var gotTeam *string
	repo := &fakeRepo{
		byManager: func(ctx context.Context, mid string, tid *string, start, end time.Time) ([]TeamSale, error) {
			gotTeam = tid
			return []TeamSale{{Sale: Sale{ID: uuid.New()}, ExecutiveName: "Rita"}}, nil
		},
	}
	svc := NewService(repo, &fakeUserRepo{}, &fakeProducts{}, &fakeTeams{owned: map[string]bool{teamID: true}}, &fakeCounter{})

	resp, err := svc.TeamSales(context.Background(), managerID, TeamSalesFilterRequest{
		Year: 2026, Month: 3, TeamID: teamID,
	})

	assert.NoError(t, err)
	assert.NotNil(t, gotTeam)
	assert.Equal(t, teamID, *gotTeam)
	assert.Equal(t, "Rita", resp[0].ExecutiveName)
}

func TestService_SumForExecutiveBetween_InclusiveBounds(t *testing.T) {
	executiveID := uuid.New().String()

	var gotStart, gotEnd time.Time
	repo := &fakeRepo{
		sumFn: func(ctx context.Context, eid string, start, end time.Time) (float64, error) {
			gotStart, gotEnd = start, end
			return 600, nil
		},
	}
	svc := NewService(repo, &fakeUserRepo{}, &fakeProducts{}, &fakeTeams{}, &fakeCounter{})

	sum, err := svc.SumForExecutiveBetween(context.Background(), executiveID,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	)

	assert.NoError(t, err)
	assert.Equal(t, 600.0, sum)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), gotStart)
	// end day itself is included
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), gotEnd)
}
