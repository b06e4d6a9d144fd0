package target

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	targeterrors "go-sfm/internal/target/errors"
	"go-sfm/internal/user"
)

type fakeRepo struct {
	createFn      func(ctx context.Context, t *Target) error
	overlappingFn func(ctx context.Context, executiveID string, start, end time.Time, excludeID *string) ([]Target, error)
	byExecutiveFn func(ctx context.Context, executiveID string) ([]Target, error)
	byManagerFn   func(ctx context.Context, managerID string) ([]Target, error)
	startingInFn  func(ctx context.Context, managerID string, monthStart, monthEnd time.Time) ([]Target, error)
	byIDFn        func(ctx context.Context, managerID, id string) (*Target, error)
	updateFn      func(ctx context.Context, t *Target) error
	deleteFn      func(ctx context.Context, t *Target) error
}

func (f *fakeRepo) Create(ctx context.Context, t *Target) error { return f.createFn(ctx, t) }
func (f *fakeRepo) FindOverlapping(ctx context.Context, executiveID string, start, end time.Time, excludeID *string) ([]Target, error) {
	return f.overlappingFn(ctx, executiveID, start, end, excludeID)
}
func (f *fakeRepo) FindByExecutive(ctx context.Context, executiveID string) ([]Target, error) {
	return f.byExecutiveFn(ctx, executiveID)
}
func (f *fakeRepo) FindByManager(ctx context.Context, managerID string) ([]Target, error) {
	return f.byManagerFn(ctx, managerID)
}
func (f *fakeRepo) FindByManagerStartingIn(ctx context.Context, managerID string, monthStart, monthEnd time.Time) ([]Target, error) {
	return f.startingInFn(ctx, managerID, monthStart, monthEnd)
}
func (f *fakeRepo) FindByIDAndManager(ctx context.Context, managerID, id string) (*Target, error) {
	return f.byIDFn(ctx, managerID, id)
}
func (f *fakeRepo) Update(ctx context.Context, t *Target) error { return f.updateFn(ctx, t) }
func (f *fakeRepo) Delete(ctx context.Context, t *Target) error { return f.deleteFn(ctx, t) }

type fakeUserRepo struct {
	managed map[string]bool
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
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
	if f.managed[id] {
		return &user.User{ID: uuid.MustParse(id)}, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) AssignTeam(ctx context.Context, userIDs []string, teamID *string) error {
	return nil
}
func (f *fakeUserRepo) ClearTeam(ctx context.Context, teamID string) error { return nil }

type fakeSales struct {
	sum float64
	err error
}

func (f *fakeSales) SumForExecutiveBetween(ctx context.Context, executiveID string, start, end time.Time) (float64, error) {
	return f.sum, f.err
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTargetService(repo *fakeRepo, users *fakeUserRepo, sales *fakeSales, now time.Time) *service {
	svc := NewService(repo, users, sales).(*service)
	svc.now = func() time.Time { return now }
	return svc
}

func TestTarget_Overlaps(t *testing.T) {
	existing := Target{StartDate: day(2026, 3, 10), EndDate: day(2026, 3, 20)}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"fully before", day(2026, 3, 1), day(2026, 3, 9), false},
		{"fully after", day(2026, 3, 21), day(2026, 3, 31), false},
		{"touching start boundary", day(2026, 3, 1), day(2026, 3, 10), true},
		{"touching end boundary", day(2026, 3, 20), day(2026, 3, 31), true},
		{"contained", day(2026, 3, 12), day(2026, 3, 15), true},
		{"containing", day(2026, 3, 1), day(2026, 3, 31), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, existing.Overlaps(tc.start, tc.end))
		})
	}
}

func TestProgressStatus_Priority(t *testing.T) {
	end := day(2026, 3, 31)
	before := day(2026, 3, 15)
	after := day(2026, 4, 1)

	// achievement wins over expiry
	assert.Equal(t, ProgressAchieved, ProgressStatus(600, 600, end, after))
	assert.Equal(t, ProgressAchieved, ProgressStatus(600, 750, end, before))
	assert.Equal(t, ProgressNotAchieved, ProgressStatus(600, 599.99, end, after))
	assert.Equal(t, ProgressInProgress, ProgressStatus(600, 100, end, before))
	// zero amount is trivially achieved
	assert.Equal(t, ProgressAchieved, ProgressStatus(0, 0, end, before))
}

func TestService_Set_Success(t *testing.T) {
	managerID := uuid.New().String()
	executiveID := uuid.New().String()

	var saved Target
	repo := &fakeRepo{
		createFn:      func(ctx context.Context, tg *Target) error { saved = *tg; return nil },
		overlappingFn: func(ctx context.Context, eid string, s, e time.Time, x *string) ([]Target, error) { return nil, nil },
	}
	users := &fakeUserRepo{managed: map[string]bool{executiveID: true}}
	sales := &fakeSales{sum: 150}

	svc := newTargetService(repo, users, sales, day(2026, 3, 15))
	resp, err := svc.Set(context.Background(), managerID, SetTargetRequest{
		ExecutiveID: executiveID,
		Amount:      600,
		StartDate:   "2026-03-01",
		EndDate:     "2026-03-31",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Mar 1, 2026 - Mar 31, 2026", saved.Period)
	assert.Equal(t, 150.0, resp.AchievedAmount)
	assert.Equal(t, ProgressInProgress, resp.Status)
}

func TestService_Set_OverlapConflict(t *testing.T) {
	managerID := uuid.New().String()
	executiveID := uuid.New().String()

	existing := Target{ID: uuid.New(), StartDate: day(2026, 3, 10), EndDate: day(2026, 3, 20)}
	repo := &fakeRepo{
		overlappingFn: func(ctx context.Context, eid string, s, e time.Time, x *string) ([]Target, error) {
			return []Target{existing}, nil
		},
	}
	users := &fakeUserRepo{managed: map[string]bool{executiveID: true}}

	svc := newTargetService(repo, users, &fakeSales{}, day(2026, 3, 15))
	_, err := svc.Set(context.Background(), managerID, SetTargetRequest{
		ExecutiveID: executiveID,
		Amount:      600,
		StartDate:   "2026-03-20",
		EndDate:     "2026-03-25",
	})
	assert.ErrorIs(t, err, targeterrors.ErrOverlappingTarget)
}

func TestService_Set_UniqueViolationBackstop(t *testing.T) {
	managerID := uuid.New().String()
	executiveID := uuid.New().String()

	calls := 0
	repo := &fakeRepo{
		createFn: func(ctx context.Context, tg *Target) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_targets_executive_period"}
		},
		overlappingFn: func(ctx context.Context, eid string, s, e time.Time, x *string) ([]Target, error) {
			calls++
			if calls == 1 {
				// raced insert: nothing visible at pre-check time
				return nil, nil
			}
			return []Target{{ID: uuid.New(), StartDate: day(2026, 3, 1), EndDate: day(2026, 3, 31)}}, nil
		},
	}
	users := &fakeUserRepo{managed: map[string]bool{executiveID: true}}

	svc := newTargetService(repo, users, &fakeSales{}, day(2026, 3, 15))
	_, err := svc.Set(context.Background(), managerID, SetTargetRequest{
		ExecutiveID: executiveID,
		Amount:      600,
		StartDate:   "2026-03-01",
		EndDate:     "2026-03-31",
	})
	assert.ErrorIs(t, err, targeterrors.ErrOverlappingTarget)
	assert.Equal(t, 2, calls)
}

func TestService_Set_ForeignExecutiveRejected(t *testing.T) {
	svc := newTargetService(&fakeRepo{}, &fakeUserRepo{managed: map[string]bool{}}, &fakeSales{}, day(2026, 3, 15))
	_, err := svc.Set(context.Background(), uuid.New().String(), SetTargetRequest{
		ExecutiveID: uuid.New().String(),
		Amount:      600,
		StartDate:   "2026-03-01",
		EndDate:     "2026-03-31",
	})
	assert.ErrorIs(t, err, targeterrors.ErrExecutiveNotManaged)
}

func TestService_TeamTargets_MonthFilter(t *testing.T) {
	managerID := uuid.New().String()

	var gotStart, gotEnd time.Time
	repo := &fakeRepo{
		startingInFn: func(ctx context.Context, mid string, monthStart, monthEnd time.Time) ([]Target, error) {
			gotStart, gotEnd = monthStart, monthEnd
			return nil, nil
		},
	}

	svc := newTargetService(repo, &fakeUserRepo{}, &fakeSales{}, day(2026, 3, 15))
	_, err := svc.TeamTargets(context.Background(), managerID, TeamFilterRequest{Year: 2026, Month: 3})

	assert.NoError(t, err)
	assert.Equal(t, day(2026, 3, 1), gotStart)
	assert.Equal(t, day(2026, 4, 1), gotEnd)
}

func TestService_MyTargets_ProgressIncluded(t *testing.T) {
	executiveID := uuid.New()

	repo := &fakeRepo{
		byExecutiveFn: func(ctx context.Context, eid string) ([]Target, error) {
			return []Target{{
				ID:          uuid.New(),
				ExecutiveID: executiveID,
				Amount:      600,
				StartDate:   day(2026, 3, 1),
				EndDate:     day(2026, 3, 31),
				Period:      "Mar 1, 2026 - Mar 31, 2026",
			}}, nil
		},
	}
	sales := &fakeSales{sum: 600}

	svc := newTargetService(repo, &fakeUserRepo{}, sales, day(2026, 4, 10))
	resp, err := svc.MyTargets(context.Background(), executiveID.String())

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, 600.0, resp[0].AchievedAmount)
	assert.Equal(t, ProgressAchieved, resp[0].Status)
}

func TestService_Update_ExcludesSelfFromOverlapCheck(t *testing.T) {
	managerID := uuid.New().String()
	existing := &Target{
		ID:          uuid.New(),
		ExecutiveID: uuid.New(),
		ManagerID:   uuid.MustParse(managerID),
		Amount:      600,
		StartDate:   day(2026, 3, 1),
		EndDate:     day(2026, 3, 31),
	}

	var gotExclude *string
	repo := &fakeRepo{
		byIDFn: func(ctx context.Context, mid, id string) (*Target, error) { return existing, nil },
		overlappingFn: func(ctx context.Context, eid string, s, e time.Time, excludeID *string) ([]Target, error) {
			gotExclude = excludeID
			return nil, nil
		},
		updateFn: func(ctx context.Context, tg *Target) error { return nil },
	}

	svc := newTargetService(repo, &fakeUserRepo{}, &fakeSales{}, day(2026, 3, 15))
	resp, err := svc.Update(context.Background(), managerID, existing.ID.String(), UpdateTargetRequest{
		Amount:    800,
		StartDate: "2026-03-05",
		EndDate:   "2026-04-05",
	})

	assert.NoError(t, err)
	assert.NotNil(t, gotExclude)
	assert.Equal(t, existing.ID.String(), *gotExclude)
	assert.Equal(t, "Mar 5, 2026 - Apr 5, 2026", resp.Period)
}

func TestService_Delete_OwnerScoped(t *testing.T) {
	repo := &fakeRepo{
		byIDFn: func(ctx context.Context, mid, id string) (*Target, error) { return nil, gorm.ErrRecordNotFound },
	}
	svc := newTargetService(repo, &fakeUserRepo{}, &fakeSales{}, day(2026, 3, 15))
	err := svc.Delete(context.Background(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, targeterrors.ErrTargetNotFound)
}
